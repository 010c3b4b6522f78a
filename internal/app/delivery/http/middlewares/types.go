package middlewares

import (
	"passwordless-service/internal/app/config"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}
}

func (m *Middlewares) exposeDevMessage() bool {
	return m.InternalConfig != nil && m.InternalConfig.App.ExposeDevMessage
}
