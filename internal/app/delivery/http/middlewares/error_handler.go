package middlewares

import (
	"fmt"
	"net/http"
	"passwordless-service/internal/pkg/constvars"
	"passwordless-service/internal/pkg/exceptions"
	"passwordless-service/internal/pkg/utils"
)

func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				err := fmt.Errorf(constvars.ErrDevPanicRecovered, rec)
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerProcess(err), m.exposeDevMessage())
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (m *Middlewares) NotFound(w http.ResponseWriter, r *http.Request) {
	utils.BuildErrorResponse(m.Log, w, exceptions.ErrRouteNotFound(nil), m.exposeDevMessage())
}
