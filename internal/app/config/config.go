package config

import (
	"errors"
	"fmt"
	"passwordless-service/internal/pkg/constvars"
	"passwordless-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

const defaultAppID = constvars.DefaultAppID

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "passwordless"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
			ConsoleOutput:       utils.GetEnvString("LOGGER_CONSOLE_OUTPUT", "stdout"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		SMTP: SMTP{
			Host:     utils.GetEnvString("SMTP_HOST", "smtp_host"),
			Port:     utils.GetEnvInt("SMTP_PORT", 2525),
			Username: utils.GetEnvString("SMTP_USERNAME", ""),
			Password: utils.GetEnvString("SMTP_PASSWORD", ""),
		},
	}
}

// NewInternalConfig reads the application settings once at start up. The
// returned value is treated as immutable and handed to every constructor.
func NewInternalConfig() (*InternalConfig, error) {
	internalConfig := &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", constvars.APP_ENV_DEVELOPMENT),
			Port:                      utils.GetEnvString("APP_PORT", ":8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1.0"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", ""),
			AuthenticationCode:        utils.GetEnvString("AUTHENTICATION_CODE", ""),
			IdentityStore:             utils.GetEnvString("APP_IDENTITY_STORE", constvars.IdentityStoreMongoDB),
			MailerTransport:           utils.GetEnvString("APP_MAILER_TRANSPORT", constvars.MailerTransportSMTP),
			AppLinksConfigFile:        utils.GetEnvString("APP_LINKS_CONFIG_FILE", ""),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeoutInSeconds:  utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:   utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			MaxTimeRequestsPerSeconds: utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 10),
			ExposeDevMessage:          utils.GetEnvBool("APP_EXPOSE_DEV_MESSAGE", false),
		},
		Passcode: AppPasscode{
			TimeoutInMillis:             utils.GetEnvInt64("PASSCODE_TIMEOUT", constvars.PASSCODE_DEFAULT_TIMEOUT_MILLIS),
			ChallengeMode:               utils.GetEnvString("APP_CHALLENGE_MODE", constvars.ChallengeModeMulti),
			ConditionalWrite:            utils.GetEnvBool("APP_CHALLENGE_CONDITIONAL_WRITE", true),
			ConditionalWriteMaxAttempts: utils.GetEnvInt("APP_CHALLENGE_CONDITIONAL_WRITE_MAX_ATTEMPTS", 3),
			ConsumeOnVerify:             utils.GetEnvBool("APP_CONSUME_ON_VERIFY", false),
		},
		Email: AppEmail{
			FromAddress: utils.GetEnvString("SES_FROM_ADDRESS", ""),
			SenderName:  utils.GetEnvString("EMAIL_SENDER_NAME", "Bookbot"),
		},
		WhatsApp: AppWhatsApp{
			BaseUrl:              utils.GetEnvString("WHATSAPP_BASE_URL", "https://graph.facebook.com/v17.0"),
			AppID:                utils.GetEnvString("WHATSAPP_APP_ID", ""),
			AppKey:               utils.GetEnvString("WHATSAPP_APP_KEY", ""),
			SignInTemplateName:   utils.GetEnvString("WHATSAPP_TEMPLATE_NAME", ""),
			InviteTemplateName:   utils.GetEnvString("WHATSAPP_INVITE_TEMPLATE_NAME", ""),
			HTTPTimeoutInSeconds: utils.GetEnvInt("WHATSAPP_HTTP_TIMEOUT_IN_SECONDS", 10),
		},
		DeepLink: AppDeepLink{
			DefaultLinkType:      utils.GetEnvString("APP_DEEPLINK_DEFAULT_LINK_TYPE", constvars.LinkTypeFirebase),
			FirebaseApiUrl:       utils.GetEnvString("FIREBASE_DYNAMIC_LINK_API_URL", "https://firebasedynamiclinks.googleapis.com/v1/shortLinks"),
			BranchApiUrl:         utils.GetEnvString("BRANCH_API_URL", "https://api2.branch.io/v1/url"),
			BranchKey:            utils.GetEnvString("BRANCH_KEY", ""),
			FallbackToLongUrl:    utils.GetEnvBool("APP_DEEPLINK_FALLBACK_TO_LONG_URL", false),
			HTTPTimeoutInSeconds: utils.GetEnvInt("APP_DEEPLINK_HTTP_TIMEOUT_IN_SECONDS", 10),
		},
		RabbitMQ: AppRabbitMQ{
			MailerQueue: utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "passwordless.mailer"),
		},
		MongoDB: AppMongoDB{
			IdentityCollection: utils.GetEnvString("MONGODB_IDENTITY_COLLECTION", "identities"),
		},
		Redis: AppRedis{
			IdentityKeyPrefix: utils.GetEnvString("REDIS_IDENTITY_KEY_PREFIX", "identity:"),
		},
		Trigger: AppTrigger{
			DefineAuthMaxAttempts: utils.GetEnvInt("APP_DEFINE_AUTH_MAX_ATTEMPTS", 3),
		},
		AppLinks: appLinksFromEnv(),
	}

	if internalConfig.App.AppLinksConfigFile != "" {
		bundles, err := LoadAppLinks(internalConfig.App.AppLinksConfigFile)
		if err != nil {
			return nil, err
		}
		internalConfig.AppLinks = bundles
	}

	if err := internalConfig.Validate(); err != nil {
		return nil, err
	}
	return internalConfig, nil
}

// Validate rejects configurations the service cannot run with.
func (c *InternalConfig) Validate() error {
	if c.App.AuthenticationCode == "" {
		return errors.New("config: AUTHENTICATION_CODE must be set")
	}
	if c.App.ExposeDevMessage && c.App.Env == constvars.APP_ENV_PRODUCTION {
		return errors.New("config: APP_EXPOSE_DEV_MESSAGE cannot be enabled in production")
	}
	if c.Passcode.TimeoutInMillis <= 0 {
		return errors.New("config: PASSCODE_TIMEOUT must be a positive number of milliseconds")
	}
	switch c.Passcode.ChallengeMode {
	case constvars.ChallengeModeMulti, constvars.ChallengeModeSingle:
	default:
		return fmt.Errorf("config: APP_CHALLENGE_MODE must be %q or %q, got %q", constvars.ChallengeModeMulti, constvars.ChallengeModeSingle, c.Passcode.ChallengeMode)
	}
	if c.Passcode.ConditionalWriteMaxAttempts < 1 {
		return errors.New("config: APP_CHALLENGE_CONDITIONAL_WRITE_MAX_ATTEMPTS must be at least 1")
	}
	switch c.App.IdentityStore {
	case constvars.IdentityStoreMongoDB, constvars.IdentityStoreRedis:
	default:
		return fmt.Errorf("config: unknown APP_IDENTITY_STORE %q", c.App.IdentityStore)
	}
	switch c.App.MailerTransport {
	case constvars.MailerTransportSMTP, constvars.MailerTransportRabbitMQ:
	default:
		return fmt.Errorf("config: unknown APP_MAILER_TRANSPORT %q", c.App.MailerTransport)
	}
	switch c.DeepLink.DefaultLinkType {
	case constvars.LinkTypeFirebase, constvars.LinkTypeBranch:
	default:
		return fmt.Errorf("config: unknown APP_DEEPLINK_DEFAULT_LINK_TYPE %q", c.DeepLink.DefaultLinkType)
	}
	if _, ok := c.AppLinks[defaultAppID]; !ok {
		return fmt.Errorf("config: app link bundle %q is required", defaultAppID)
	}
	if c.Trigger.DefineAuthMaxAttempts < 1 {
		return errors.New("config: APP_DEFINE_AUTH_MAX_ATTEMPTS must be at least 1")
	}
	return nil
}
