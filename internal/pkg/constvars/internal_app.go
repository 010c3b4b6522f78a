package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_REQUEST_LOG_FIELDS_KEY   ContextKey = "request_log_fields"
)

const (
	REQUEST_ID_PREFIX = "PWLS_SVC_"
)

const (
	APP_ENV_DEVELOPMENT = "development"
	APP_ENV_PRODUCTION  = "production"
)

const (
	PASSCODE_LENGTH = 6

	// PASSCODE_DEFAULT_TIMEOUT_MILLIS is 30 minutes.
	PASSCODE_DEFAULT_TIMEOUT_MILLIS = 1800000
)
