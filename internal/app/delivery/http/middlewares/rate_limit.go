package middlewares

import (
	"net/http"
	"passwordless-service/internal/pkg/exceptions"
	"passwordless-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/httprate"
)

// RateLimit limits requests per client IP. The window defaults to one second
// when MaxTimeRequestsPerSeconds is not configured.
func (m *Middlewares) RateLimit() func(next http.Handler) http.Handler {
	window := time.Second
	if seconds := m.InternalConfig.App.MaxTimeRequestsPerSeconds; seconds > 0 {
		window = time.Duration(seconds) * time.Second
	}

	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil), m.exposeDevMessage())
		}),
	)
}
