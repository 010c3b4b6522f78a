package controllers

import (
	"net/http"
	"passwordless-service/internal/app/config"
	"passwordless-service/internal/pkg/constvars"
	"passwordless-service/internal/pkg/dto/responses"
	"passwordless-service/internal/pkg/utils"
)

type HealthController struct {
	InternalConfig *config.InternalConfig
}

func NewHealthController(internalConfig *config.InternalConfig) *HealthController {
	return &HealthController{InternalConfig: internalConfig}
}

func (ctrl *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	utils.BuildJSONResponse(w, constvars.StatusOK, responses.Health{
		Status:  constvars.HealthOKMessage,
		Version: ctrl.InternalConfig.App.Version,
	})
}
