package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":        "is required",
	"email":           "must be a valid email",
	"alphanum":        "must contain only alphanumeric characters",
	"min":             "must be at least %s characters long",
	"max":             "maximum at %s characters long",
	"numeric":         "must be a number",
	"len":             "must be %s characters long",
	"oneof":           "must be one of [%s]",
	"url":             "must be a valid URL",
	"required_if":     "is required when %s is %s",
	"channel":         "must be either 'email' or 'whatsapp'",
	"link_type":       "must be either 'firebase' or 'branch'",
	"phone_intl":      "must be an international phone number without '+' (10-15 digits)",
	"passcode_digits": "must contain exactly 6 digits",
	"single_line":     "must not contain line breaks or control characters",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":         true,
	"max":         true,
	"len":         true,
	"oneof":       true,
	"required_if": true,
}

// Error messages for clients
const (
	ErrClientAuthenticationCodeInvalid = "Authentication code is invalid"
	ErrClientMissingEmail              = "Missing email"
	ErrClientMissingPhone              = "Missing phone number"
	ErrClientMissingCode               = "Missing code"
	ErrClientNoAuthenticationFound     = "No authentication found"
	ErrClientPasscodeExpired           = "Passcode is expired"
	ErrClientPasscodeInvalid           = "Passcode is invalid"
	ErrClientCannotProcessRequest      = "Couldn't process the request. Please try after some time."
	ErrClientServerLongRespond         = "the app taking too long to respond"
	ErrClientTooManyRequests           = "too many requests, please slow down"
	ErrClientRouteNotFound             = "route not found"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevInvalidRequestPayload    = "invalid request payload"
	ErrDevValidationFailed         = "validation failed"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded"
	ErrDevAuthenticationCodeFailed = "authentication code in request does not match configured secret"
	ErrDevPanicRecovered           = "recovered from panic: %v"
	ErrDevServerProcess            = "server failed to process the request"
	ErrDevRateLimited              = "request rate limit exceeded"
	ErrDevRouteNotFound            = "no route matches the request"
	ErrDevChallengeValidation      = "challenge validation failed"

	// Identity store messages
	ErrDevIdentityNotFound       = "identity with email %s not found"
	ErrDevIdentityLookupFailed   = "failed to look up identity"
	ErrDevChallengeSaveFailed    = "failed to persist challenges"
	ErrDevChallengeConflict      = "challenge attribute changed concurrently after %d attempts"
	ErrDevIdentityUpdateFailed   = "failed to update identity attributes"
	ErrDevIdentityGroupAddFailed = "failed to add identity to group %s"

	// Collaborator messages
	ErrDevPasscodeGenerationFailed = "failed to generate passcode"
	ErrDevLinkGenerationFailed     = "failed to generate deep link with provider %s"
	ErrDevDeliveryFailed           = "failed to deliver notification through channel %s"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevSendHTTPRequest          = "failed to send HTTP request"
	ErrDevUnexpectedHTTPStatus     = "unexpected HTTP status %d from %s: %s"
	ErrDevUnknownChannel           = "unknown notification channel %s"
	ErrDevUnknownLinkType          = "unknown deep link type %s"
	ErrDevTemplateRender           = "failed to render %s template"

	// SMTP
	ErrDevSMTPSendEmail = "failed to send email via SMTP client hostname %s"

	// RabbitMQ
	ErrDevRabbitMQPublishMessage = "failed to publish message to queue %s"

	// Redis messages
	ErrDevRedisGetData = "failed to GET data from redis"
	ErrDevRedisSetData = "failed to SET data into redis"

	// Database messages
	ErrDevDBFailedToFindDocument   = "failed when do find document on database"
	ErrDevDBFailedToUpdateDocument = "failed to update document into database"

	// Trigger messages
	ErrDevUnknownTriggerSource = "unsupported trigger source %s"
)
