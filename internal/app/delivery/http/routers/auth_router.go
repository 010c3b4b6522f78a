package routers

import (
	"passwordless-service/internal/app/delivery/http/controllers"
	"passwordless-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.With(middlewares.RateLimit()).Post("/signIn", authController.SignIn)
	router.With(middlewares.RateLimit()).Post("/sendInviteMessage", authController.SendInvite)
	router.Post("/verify", authController.Verify)
}
