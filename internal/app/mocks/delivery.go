package mocks

import (
	"context"
	"passwordless-service/internal/app/contracts"
	"passwordless-service/internal/app/models"
	"passwordless-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/mock"
)

type MockDeepLinkProvider struct {
	mock.Mock
}

func (m *MockDeepLinkProvider) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockDeepLinkProvider) CreateLink(ctx context.Context, appContext, identityID, email, code string) (string, error) {
	args := m.Called(ctx, appContext, identityID, email, code)
	return args.String(0), args.Error(1)
}

func (m *MockDeepLinkProvider) LongLink(appContext, identityID, email, code string) (string, error) {
	args := m.Called(appContext, identityID, email, code)
	return args.String(0), args.Error(1)
}

type MockDeepLinkRegistry struct {
	mock.Mock
}

func (m *MockDeepLinkRegistry) Provider(linkType string) (contracts.DeepLinkProvider, error) {
	args := m.Called(linkType)
	provider, _ := args.Get(0).(contracts.DeepLinkProvider)
	return provider, args.Error(1)
}

type MockNotificationDispatcher struct {
	mock.Mock
}

func (m *MockNotificationDispatcher) Channel() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockNotificationDispatcher) Send(ctx context.Context, notification *models.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

type MockNotificationRegistry struct {
	mock.Mock
}

func (m *MockNotificationRegistry) Dispatcher(channel string) (contracts.NotificationDispatcher, error) {
	args := m.Called(channel)
	dispatcher, _ := args.Get(0).(contracts.NotificationDispatcher)
	return dispatcher, args.Error(1)
}

type MockEmailTransport struct {
	mock.Mock
}

func (m *MockEmailTransport) SendEmail(ctx context.Context, message *models.EmailMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

type MockWhatsAppService struct {
	mock.Mock
}

func (m *MockWhatsAppService) SendTemplateMessage(ctx context.Context, message *requests.WhatsAppTemplateMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}
