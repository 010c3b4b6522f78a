package config

type InternalConfig struct {
	App      App                      `mapstructure:"app"`
	Passcode AppPasscode              `mapstructure:"passcode"`
	Email    AppEmail                 `mapstructure:"email"`
	WhatsApp AppWhatsApp              `mapstructure:"whatsapp"`
	DeepLink AppDeepLink              `mapstructure:"deep_link"`
	RabbitMQ AppRabbitMQ              `mapstructure:"rabbitmq"`
	MongoDB  AppMongoDB               `mapstructure:"mongodb"`
	Redis    AppRedis                 `mapstructure:"redis"`
	Trigger  AppTrigger               `mapstructure:"trigger"`
	AppLinks map[string]AppLinkBundle `mapstructure:"app_links"`
}

type App struct {
	Env                       string `mapstructure:"env"`
	Port                      string `mapstructure:"port"`
	Version                   string `mapstructure:"version"`
	EndpointPrefix            string `mapstructure:"endpoint_prefix"`
	AuthenticationCode        string `mapstructure:"authentication_code"`
	IdentityStore             string `mapstructure:"identity_store"`
	MailerTransport           string `mapstructure:"mailer_transport"`
	AppLinksConfigFile        string `mapstructure:"app_links_config_file"`
	MaxRequests               int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds  int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestTimeoutInSeconds   int    `mapstructure:"request_timeout_in_seconds"`
	MaxTimeRequestsPerSeconds int    `mapstructure:"max_time_requests_per_seconds"`
	// ExposeDevMessage echoes the internal error detail in error bodies.
	// Off unless explicitly enabled for local debugging.
	ExposeDevMessage bool `mapstructure:"expose_dev_message"`
}

// AppPasscode controls how challenges are issued, stored and redeemed.
type AppPasscode struct {
	// TimeoutInMillis is the TTL of a challenge, counted from issuance.
	TimeoutInMillis int64 `mapstructure:"timeout_in_millis"`
	// ChallengeMode is "multi" (prune and append) or "single" (overwrite).
	ChallengeMode string `mapstructure:"challenge_mode"`
	// ConditionalWrite turns the load-prune-append-save cycle into a compare-and-swap.
	ConditionalWrite            bool `mapstructure:"conditional_write"`
	ConditionalWriteMaxAttempts int  `mapstructure:"conditional_write_max_attempts"`
	// ConsumeOnVerify removes a challenge once it was redeemed through /verify.
	ConsumeOnVerify bool `mapstructure:"consume_on_verify"`
}

type AppEmail struct {
	FromAddress string `mapstructure:"from_address"`
	SenderName  string `mapstructure:"sender_name"`
}

type AppWhatsApp struct {
	BaseUrl              string `mapstructure:"base_url"`
	AppID                string `mapstructure:"app_id"`
	AppKey               string `mapstructure:"app_key"`
	SignInTemplateName   string `mapstructure:"sign_in_template_name"`
	InviteTemplateName   string `mapstructure:"invite_template_name"`
	HTTPTimeoutInSeconds int    `mapstructure:"http_timeout_in_seconds"`
}

type AppDeepLink struct {
	DefaultLinkType      string `mapstructure:"default_link_type"`
	FirebaseApiUrl       string `mapstructure:"firebase_api_url"`
	BranchApiUrl         string `mapstructure:"branch_api_url"`
	BranchKey            string `mapstructure:"branch_key"`
	FallbackToLongUrl    bool   `mapstructure:"fallback_to_long_url"`
	HTTPTimeoutInSeconds int    `mapstructure:"http_timeout_in_seconds"`
}

type AppRabbitMQ struct {
	MailerQueue string `mapstructure:"mailer_queue"`
}

type AppMongoDB struct {
	IdentityCollection string `mapstructure:"identity_collection"`
}

type AppRedis struct {
	IdentityKeyPrefix string `mapstructure:"identity_key_prefix"`
}

type AppTrigger struct {
	DefineAuthMaxAttempts int `mapstructure:"define_auth_max_attempts"`
}

// AppLinkBundle is the per-application branding and store metadata used to
// build deep links. Bundles are keyed by the caller supplied app_id.
type AppLinkBundle struct {
	AppName                 string `mapstructure:"app_name"`
	BaseUrl                 string `mapstructure:"base_url"`
	SubDomain               string `mapstructure:"sub_domain"`
	AndroidPackageName      string `mapstructure:"android_package_name"`
	IOSBundleID             string `mapstructure:"ios_bundle_id"`
	IOSAppStoreID           string `mapstructure:"ios_app_store_id"`
	FirebaseDomainUriPrefix string `mapstructure:"firebase_domain_uri_prefix"`
	FirebaseApiKey          string `mapstructure:"firebase_api_key"`
}

// Bundle returns the bundle registered for appID, falling back to the default bundle.
func (c *InternalConfig) Bundle(appID string) AppLinkBundle {
	if bundle, ok := c.AppLinks[appID]; ok && appID != "" {
		return bundle
	}
	return c.AppLinks[defaultAppID]
}
