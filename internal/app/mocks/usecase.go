package mocks

import (
	"context"
	"passwordless-service/internal/app/models"
	"passwordless-service/internal/pkg/dto/requests"
	"passwordless-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) SignIn(ctx context.Context, request *requests.SignIn) (*responses.SignIn, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.SignIn)
	return response, args.Error(1)
}

func (m *MockAuthUsecase) SendInvite(ctx context.Context, request *requests.SendInvite) (string, error) {
	args := m.Called(ctx, request)
	return args.String(0), args.Error(1)
}

func (m *MockAuthUsecase) Verify(ctx context.Context, request *requests.Verify) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

type MockTriggerUsecase struct {
	mock.Mock
}

func (m *MockTriggerUsecase) DefineAuthChallenge(ctx context.Context, event *models.TriggerEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockTriggerUsecase) CreateAuthChallenge(ctx context.Context, event *models.TriggerEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockTriggerUsecase) VerifyAuthChallenge(ctx context.Context, event *models.TriggerEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockTriggerUsecase) PostAuthentication(ctx context.Context, event *models.TriggerEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockTriggerUsecase) PreSignUp(ctx context.Context, event *models.TriggerEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
