package routers

import (
	"net/http"
	"passwordless-service/internal/app/config"
	"passwordless-service/internal/app/delivery/http/controllers"
	"passwordless-service/internal/app/delivery/http/middlewares"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	healthController *controllers.HealthController,
) {

	corsOptions := cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	router.NotFound(middlewares.NotFound)

	router.Get("/healthz", healthController.Health)
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	endpointPrefix := strings.Trim(internalConfig.App.EndpointPrefix, "/")
	if endpointPrefix == "" {
		router.Group(func(r chi.Router) {
			attachAuthRoutes(r, middlewares, authController)
		})
		return
	}

	router.Route("/"+endpointPrefix, func(r chi.Router) {
		attachAuthRoutes(r, middlewares, authController)
	})
}
