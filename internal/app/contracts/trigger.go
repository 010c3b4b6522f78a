package contracts

import (
	"context"
	"passwordless-service/internal/app/models"
)

// TriggerUsecase implements the identity provider's custom authentication
// hooks. Each method fills event.Response in place.
type TriggerUsecase interface {
	DefineAuthChallenge(ctx context.Context, event *models.TriggerEvent) error
	CreateAuthChallenge(ctx context.Context, event *models.TriggerEvent) error
	VerifyAuthChallenge(ctx context.Context, event *models.TriggerEvent) error
	PostAuthentication(ctx context.Context, event *models.TriggerEvent) error
	PreSignUp(ctx context.Context, event *models.TriggerEvent) error
}
