package notification

import (
	"context"
	"errors"
	"passwordless-service/internal/app/config"
	"passwordless-service/internal/app/mocks"
	"passwordless-service/internal/app/models"
	"passwordless-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testEmailConfig = config.AppEmail{FromAddress: "no-reply@example.com", SenderName: "Bookbot"}

func TestMatchLanguage(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", "en"},
		{"en", "en"},
		{"id", "id"},
		{"sw", "sw"},
		{"sw-KE", "sw"},
		{"en_US", "en"},
		{"fr", "en"},
		{"not a tag", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, MatchLanguage(tt.input))
		})
	}
}

func TestEmailDispatcherSend(t *testing.T) {
	ctx := context.Background()

	t.Run("Invite Is Localized", func(t *testing.T) {
		transport := new(mocks.MockEmailTransport)
		var sent *models.EmailMessage
		transport.On("SendEmail", ctx, mock.Anything).Run(func(args mock.Arguments) {
			sent = args.Get(1).(*models.EmailMessage)
		}).Return(nil)
		dispatcher := NewEmailDispatcher(transport, testEmailConfig, zap.NewNop())

		err := dispatcher.Send(ctx, &models.Notification{
			Channel:     "email",
			Recipient:   "a@b.com",
			TemplateKey: models.TemplateInvite,
			Language:    "id",
			Variables:   models.NotificationVariables{Name: "Budi", Link: "https://example.page.link/abc"},
		})

		require.NoError(t, err)
		require.NotNil(t, sent)
		assert.Equal(t, "Tim Bookbot <no-reply@example.com>", sent.From)
		assert.Equal(t, []string{"a@b.com"}, sent.To)
		assert.Equal(t, "Guru Budi telah mengundang Anda ke Bookbot", sent.Subject)
		assert.Contains(t, sent.HTMLBody, `href="https://example.page.link/abc"`)
	})

	t.Run("Unknown Language Falls Back To English", func(t *testing.T) {
		transport := new(mocks.MockEmailTransport)
		var sent *models.EmailMessage
		transport.On("SendEmail", ctx, mock.Anything).Run(func(args mock.Arguments) {
			sent = args.Get(1).(*models.EmailMessage)
		}).Return(nil)
		dispatcher := NewEmailDispatcher(transport, testEmailConfig, zap.NewNop())

		err := dispatcher.Send(ctx, &models.Notification{
			Recipient:   "a@b.com",
			TemplateKey: models.TemplateSignIn,
			Language:    "de",
			Variables:   models.NotificationVariables{Code: "012345", Link: "https://app.example.com/verify"},
		})

		require.NoError(t, err)
		assert.Equal(t, "Team Bookbot <no-reply@example.com>", sent.From)
		assert.Contains(t, sent.TextBody, "012345")
		assert.Contains(t, sent.HTMLBody, "a@b.com")
	})

	t.Run("Transport Failure", func(t *testing.T) {
		transport := new(mocks.MockEmailTransport)
		transport.On("SendEmail", ctx, mock.Anything).Return(errors.New("smtp down"))
		dispatcher := NewEmailDispatcher(transport, testEmailConfig, zap.NewNop())

		err := dispatcher.Send(ctx, &models.Notification{Recipient: "a@b.com", TemplateKey: models.TemplateSignIn})

		assert.ErrorIs(t, err, ErrDeliveryFailed)
	})

	t.Run("Unknown Template", func(t *testing.T) {
		transport := new(mocks.MockEmailTransport)
		dispatcher := NewEmailDispatcher(transport, testEmailConfig, zap.NewNop())

		err := dispatcher.Send(ctx, &models.Notification{Recipient: "a@b.com", TemplateKey: "welcome"})

		assert.ErrorIs(t, err, ErrDeliveryFailed)
		transport.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything)
	})
}

func TestWhatsAppDispatcherSend(t *testing.T) {
	ctx := context.Background()
	cfg := config.AppWhatsApp{SignInTemplateName: "otp_sign_in", InviteTemplateName: "teacher_invite"}

	t.Run("Invite Uses Link Suffix As Button Parameter", func(t *testing.T) {
		service := new(mocks.MockWhatsAppService)
		var sent *requests.WhatsAppTemplateMessage
		service.On("SendTemplateMessage", ctx, mock.Anything).Run(func(args mock.Arguments) {
			sent = args.Get(1).(*requests.WhatsAppTemplateMessage)
		}).Return(nil)
		dispatcher := NewWhatsAppDispatcher(service, cfg, zap.NewNop())

		err := dispatcher.Send(ctx, &models.Notification{
			Recipient:   "+62 812 3456 7890",
			TemplateKey: models.TemplateInvite,
			Language:    "sw",
			Variables:   models.NotificationVariables{Name: "Amani", Link: "https://example.page.link/Xy12"},
		})

		require.NoError(t, err)
		assert.Equal(t, "6281234567890", sent.To)
		assert.Equal(t, "teacher_invite", sent.Template.Name)
		assert.Equal(t, "sw", sent.Template.Language.Code)
		require.Len(t, sent.Template.Components, 3)
		assert.Equal(t, "header", sent.Template.Components[0].Type)
		assert.Equal(t, "Amani", sent.Template.Components[1].Parameters[0].Text)
		assert.Equal(t, "url", sent.Template.Components[2].SubType)
		assert.Equal(t, "0", sent.Template.Components[2].Index)
		assert.Equal(t, "Xy12", sent.Template.Components[2].Parameters[0].Text)
	})

	t.Run("Sign In Carries Code", func(t *testing.T) {
		service := new(mocks.MockWhatsAppService)
		var sent *requests.WhatsAppTemplateMessage
		service.On("SendTemplateMessage", ctx, mock.Anything).Run(func(args mock.Arguments) {
			sent = args.Get(1).(*requests.WhatsAppTemplateMessage)
		}).Return(nil)
		dispatcher := NewWhatsAppDispatcher(service, cfg, zap.NewNop())

		err := dispatcher.Send(ctx, &models.Notification{
			Recipient:   "6281234567890",
			TemplateKey: models.TemplateSignIn,
			Variables:   models.NotificationVariables{Code: "654321"},
		})

		require.NoError(t, err)
		assert.Equal(t, "otp_sign_in", sent.Template.Name)
		assert.Equal(t, "en", sent.Template.Language.Code)
		assert.Equal(t, "654321", sent.Template.Components[0].Parameters[0].Text)
	})

	t.Run("Service Failure", func(t *testing.T) {
		service := new(mocks.MockWhatsAppService)
		service.On("SendTemplateMessage", ctx, mock.Anything).Return(errors.New("status 500"))
		dispatcher := NewWhatsAppDispatcher(service, cfg, zap.NewNop())

		err := dispatcher.Send(ctx, &models.Notification{Recipient: "6281234567890", TemplateKey: models.TemplateSignIn})

		assert.ErrorIs(t, err, ErrDeliveryFailed)
	})
}

func TestRegistry(t *testing.T) {
	email := NewEmailDispatcher(new(mocks.MockEmailTransport), testEmailConfig, zap.NewNop())
	whatsApp := NewWhatsAppDispatcher(new(mocks.MockWhatsAppService), config.AppWhatsApp{}, zap.NewNop())
	registry := NewRegistry(email, whatsApp)

	dispatcher, err := registry.Dispatcher("")
	require.NoError(t, err)
	assert.Equal(t, "email", dispatcher.Channel())

	dispatcher, err = registry.Dispatcher("whatsapp")
	require.NoError(t, err)
	assert.Equal(t, "whatsapp", dispatcher.Channel())

	_, err = registry.Dispatcher("sms")
	assert.ErrorIs(t, err, ErrUnknownChannel)
}
