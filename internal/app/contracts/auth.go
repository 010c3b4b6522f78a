package contracts

import (
	"context"
	"passwordless-service/internal/pkg/dto/requests"
	"passwordless-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	SignIn(ctx context.Context, request *requests.SignIn) (*responses.SignIn, error)
	SendInvite(ctx context.Context, request *requests.SendInvite) (string, error)
	Verify(ctx context.Context, request *requests.Verify) error
}
