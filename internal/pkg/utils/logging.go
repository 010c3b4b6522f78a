package utils

import (
	"context"
	"passwordless-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}

// RequestIDField is the request_id field every service log line carries.
func RequestIDField(ctx context.Context) zap.Field {
	return zap.String(constvars.LoggingRequestIDKey, GetRequestID(ctx))
}

// RequestLogFields gathers fields that handlers attach to the request
// completed log line. It is owned by a single request goroutine.
type RequestLogFields struct {
	fields []zap.Field
}

func (f *RequestLogFields) Fields() []zap.Field {
	return f.fields
}

func WithRequestLogFields(ctx context.Context) (context.Context, *RequestLogFields) {
	fields := &RequestLogFields{}
	return context.WithValue(ctx, constvars.CONTEXT_REQUEST_LOG_FIELDS_KEY, fields), fields
}

// AddRequestLogFields is a no-op when ctx was not prepared by the logging
// middleware, as in the trigger path.
func AddRequestLogFields(ctx context.Context, fields ...zap.Field) {
	if holder, ok := ctx.Value(constvars.CONTEXT_REQUEST_LOG_FIELDS_KEY).(*RequestLogFields); ok {
		holder.fields = append(holder.fields, fields...)
	}
}

// MaskEmail keeps the first character of the local part and the domain.
func MaskEmail(email string) string {
	for i := 0; i < len(email); i++ {
		if email[i] == '@' {
			if i <= 1 {
				return "*" + email[i:]
			}
			return email[:1] + "***" + email[i:]
		}
	}
	return "***"
}
