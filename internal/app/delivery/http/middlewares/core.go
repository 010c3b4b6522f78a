package middlewares

import (
	"context"
	"net/http"
	"passwordless-service/internal/pkg/constvars"
	"passwordless-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	bytes      int
}

func (rec *responseRecorder) WriteHeader(code int) {
	rec.statusCode = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *responseRecorder) Write(b []byte) (int, error) {
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += n
	return n, err
}

// Logging writes a started and a completed line per request. Handlers add
// request scoped fields (channel, app_id, link_type) to the completed line
// through utils.AddRequestLogFields.
func (m *Middlewares) Logging(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()
			requestID := utils.GetRequestID(ctx)
			isClientRequestID, _ := ctx.Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)

			logger.Info("API request started",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Bool("is_client_request_id", isClientRequestID),
				zap.String(constvars.LoggingMethodKey, r.Method),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
				zap.String(constvars.LoggingUserAgentKey, r.UserAgent()),
			)

			ctx, extra := utils.WithRequestLogFields(ctx)
			rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rec, r.WithContext(ctx))

			fields := []zap.Field{
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingMethodKey, r.Method),
				zap.String(constvars.LoggingRouteKey, routePattern(r)),
				zap.Int(constvars.LoggingStatusCodeKey, rec.statusCode),
				zap.String(constvars.LoggingOutcomeKey, requestOutcome(rec.statusCode)),
				zap.Int(constvars.LoggingResponseBytesKey, rec.bytes),
				zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			}
			logger.Info("API request completed", append(fields, extra.Fields()...)...)
		})
	}
}

// routePattern reports the matched chi pattern so prefixed and unprefixed
// deployments aggregate the same way. Unmatched paths fall back to the raw path.
func routePattern(r *http.Request) string {
	if routeContext := chi.RouteContext(r.Context()); routeContext != nil {
		if pattern := routeContext.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}

func requestOutcome(statusCode int) string {
	switch {
	case statusCode < http.StatusBadRequest:
		return constvars.OutcomeOK
	case statusCode == http.StatusUnauthorized:
		return constvars.OutcomeRejected
	case statusCode == http.StatusTooManyRequests:
		return constvars.OutcomeRateLimited
	case statusCode == http.StatusGatewayTimeout:
		return constvars.OutcomeTimeout
	case statusCode < http.StatusInternalServerError:
		return constvars.OutcomeInvalid
	default:
		return constvars.OutcomeFailed
	}
}

// RequestIDMiddleware reuses the caller's X-Request-Id or mints one, and
// echoes it back so callers can correlate sign-in and verify calls.
func (m *Middlewares) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constvars.HeaderXRequestID)
		isClientRequestID := true

		if requestID == "" {
			requestID = utils.GenerateRequestID()
			isClientRequestID = false
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY, isClientRequestID)

		w.Header().Set(constvars.HeaderXRequestID, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
