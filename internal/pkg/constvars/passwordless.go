package constvars

// Identity attributes, named as the identity provider names them.
const (
	AttributeAuthChallenge = "custom:authChallenge"
	AttributeEmail         = "email"
	AttributeEmailVerified = "email_verified"
)

const (
	// ChallengeDelimiter separates challenges inside the serialized attribute.
	ChallengeDelimiter = ";"
	// ChallengeFieldDelimiter separates code and issued-at inside one challenge.
	ChallengeFieldDelimiter = ","
)

const (
	ChallengeModeMulti  = "multi"
	ChallengeModeSingle = "single"
)

const (
	ChannelEmail    = "email"
	ChannelWhatsApp = "whatsapp"
)

const (
	LinkTypeFirebase = "firebase"
	LinkTypeBranch   = "branch"
)

const (
	IdentityStoreMongoDB = "mongodb"
	IdentityStoreRedis   = "redis"
)

const (
	MailerTransportSMTP     = "smtp"
	MailerTransportRabbitMQ = "rabbitmq"
)

const (
	DefaultLanguage = "en"
	DefaultAppID    = "default"
	GroupNew        = "new"
)

const (
	TriggerSourcePreSignUp           = "PreSignUp_SignUp"
	TriggerSourceDefineAuthChallenge = "DefineAuthChallenge_Authentication"
	TriggerSourceCreateAuthChallenge = "CreateAuthChallenge_Authentication"
	TriggerSourceVerifyAuthChallenge = "VerifyAuthChallengeResponse_Authentication"
	TriggerSourcePostAuthentication  = "PostAuthentication_Authentication"

	ChallengeNameCustom       = "CUSTOM_CHALLENGE"
	ChallengeMetadataPasscode = "PASSCODE"
	ChallengeParameterKey     = "challenge"
	ChallengeParameterEmail   = "email"
)
