package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingEmailKey          = "email"
	LoggingPhoneKey          = "phone"
	LoggingIdentityIDKey     = "identity_id"
	LoggingChannelKey        = "channel"
	LoggingLinkTypeKey       = "link_type"
	LoggingAppIDKey          = "app_id"
	LoggingLanguageKey       = "language"
	LoggingTemplateKey       = "template"
	LoggingQueueNameKey      = "queue_name"
	LoggingRedisKey          = "redis_key"
	LoggingCollectionKey     = "collection"
	LoggingChallengeCountKey = "challenge_count"
	LoggingAttemptKey        = "attempt"
	LoggingTriggerSourceKey  = "trigger_source"
	LoggingReasonKey         = "reason"
	LoggingURLKey            = "url"
	LoggingRouteKey          = "route"
	LoggingOutcomeKey        = "outcome"
	LoggingResponseBytesKey  = "response_bytes"
)

// Outcomes reported on the request completed log line.
const (
	OutcomeOK          = "ok"
	OutcomeRejected    = "rejected"
	OutcomeInvalid     = "invalid"
	OutcomeRateLimited = "rate_limited"
	OutcomeTimeout     = "timeout"
	OutcomeFailed      = "failed"
)
