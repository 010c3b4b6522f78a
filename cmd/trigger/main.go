package main

import (
	"context"
	"log"
	"os"
	"passwordless-service/internal/app/config"
	"passwordless-service/internal/app/delivery/trigger"
	"passwordless-service/internal/app/drivers/database"
	"passwordless-service/internal/app/drivers/logger"
	"passwordless-service/internal/app/services/core/challenges"
	"passwordless-service/internal/app/services/core/triggers"
	"passwordless-service/internal/app/services/shared/identity"
	"passwordless-service/internal/pkg/constvars"
	"passwordless-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

// The trigger entrypoint handles one identity provider event per run: the
// event is read from stdin and the answered event is written to stdout.
func main() {
	driverConfig := config.NewDriverConfig()
	driverConfig.Logger.ConsoleOutput = "stderr"

	internalConfig, err := config.NewInternalConfig()
	if err != nil {
		log.Fatalf("Error loading internal config: %v", err)
	}

	logger := logger.NewZapLogger(driverConfig, internalConfig)

	bootstrap := &config.Bootstrap{
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

	identityRepository, err := identity.NewIdentityRepository(bootstrap)
	if err != nil {
		logger.Fatal("Error while creating identity repository", zap.Error(err))
	}

	ttl := time.Duration(internalConfig.Passcode.TimeoutInMillis) * time.Millisecond
	challengeStore := challenges.NewChallengeStore(identityRepository, ttl, internalConfig.Passcode.ConditionalWrite, logger)
	triggerUsecase := triggers.NewTriggerUsecase(challengeStore, identityRepository, internalConfig, logger)
	handler := trigger.NewHandler(logger, triggerUsecase)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(internalConfig.App.RequestTimeoutInSeconds)*time.Second)
	ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, utils.GenerateRequestID())

	err = handler.Handle(ctx, os.Stdin, os.Stdout)
	cancel()

	if shutdownErr := bootstrap.Shutdown(context.Background()); shutdownErr != nil {
		log.Printf("Error while closing connections: %v", shutdownErr)
	}
	if err != nil {
		os.Exit(1)
	}
}
