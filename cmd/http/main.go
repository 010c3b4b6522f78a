package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"passwordless-service/internal/app/config"
	"passwordless-service/internal/app/contracts"
	"passwordless-service/internal/app/delivery/http/controllers"
	"passwordless-service/internal/app/delivery/http/middlewares"
	"passwordless-service/internal/app/delivery/http/routers"
	"passwordless-service/internal/app/drivers/database"
	"passwordless-service/internal/app/drivers/logger"
	smtpDriver "passwordless-service/internal/app/drivers/mailer"
	"passwordless-service/internal/app/drivers/messaging"
	"passwordless-service/internal/app/services/core/auth"
	"passwordless-service/internal/app/services/core/challenges"
	"passwordless-service/internal/app/services/core/passcode"
	"passwordless-service/internal/app/services/shared/deeplink"
	"passwordless-service/internal/app/services/shared/identity"
	"passwordless-service/internal/app/services/shared/mailer"
	"passwordless-service/internal/app/services/shared/notification"
	"passwordless-service/internal/app/services/shared/whatsapp"
	"passwordless-service/internal/pkg/constvars"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig, err := config.NewInternalConfig()
	if err != nil {
		log.Fatalf("Error loading internal config: %v", err)
	}

	logger := logger.NewZapLogger(driverConfig, internalConfig)

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         logger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	switch internalConfig.App.IdentityStore {
	case constvars.IdentityStoreMongoDB:
		bootstrap.MongoDB = database.NewMongoDB(driverConfig, logger)
	case constvars.IdentityStoreRedis:
		bootstrap.Redis = database.NewRedisClient(driverConfig, logger)
	}
	if internalConfig.App.MailerTransport == constvars.MailerTransportRabbitMQ {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig, logger)
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		logger.Fatal("Error while bootstraping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		logger.Info("Server started", zap.String("port", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error while closing connections: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	internalConfig := bootstrap.InternalConfig
	ttl := time.Duration(internalConfig.Passcode.TimeoutInMillis) * time.Millisecond

	// Identity
	identityRepository, err := identity.NewIdentityRepository(bootstrap)
	if err != nil {
		return err
	}
	challengeStore := challenges.NewChallengeStore(identityRepository, ttl, internalConfig.Passcode.ConditionalWrite, bootstrap.Logger)

	// Deep links
	deepLinks := deeplink.NewRegistry(
		internalConfig.DeepLink.DefaultLinkType,
		deeplink.NewFirebaseProvider(internalConfig, bootstrap.Logger),
		deeplink.NewBranchProvider(internalConfig, bootstrap.Logger),
	)

	// Notifications
	emailTransport, err := newEmailTransport(bootstrap)
	if err != nil {
		return err
	}
	whatsAppService := whatsapp.NewWhatsAppService(internalConfig.WhatsApp, bootstrap.Logger)
	notifications := notification.NewRegistry(
		notification.NewEmailDispatcher(emailTransport, internalConfig.Email, bootstrap.Logger),
		notification.NewWhatsAppDispatcher(whatsAppService, internalConfig.WhatsApp, bootstrap.Logger),
	)

	// Auth
	authUsecase := auth.NewAuthUsecase(
		challengeStore,
		passcode.NewPasscodeGenerator(),
		deepLinks,
		notifications,
		internalConfig,
		bootstrap.Logger,
	)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase, internalConfig)
	healthController := controllers.NewHealthController(internalConfig)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, internalConfig)

	routers.SetupRoutes(bootstrap.Router, internalConfig, middlewares, authController, healthController)
	return nil
}

func newEmailTransport(bootstrap *config.Bootstrap) (contracts.EmailTransport, error) {
	if bootstrap.InternalConfig.App.MailerTransport == constvars.MailerTransportRabbitMQ {
		return mailer.NewQueueTransport(bootstrap.RabbitMQ, bootstrap.InternalConfig.RabbitMQ.MailerQueue, bootstrap.Logger)
	}
	smtpClient := smtpDriver.NewSMTPClient(bootstrap.DriverConfig, bootstrap.Logger)
	return mailer.NewSMTPTransport(smtpClient, bootstrap.Logger), nil
}
