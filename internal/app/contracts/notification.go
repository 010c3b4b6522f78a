package contracts

import (
	"context"
	"passwordless-service/internal/app/models"
	"passwordless-service/internal/pkg/dto/requests"
)

type NotificationDispatcher interface {
	Channel() string
	Send(ctx context.Context, notification *models.Notification) error
}

type NotificationRegistry interface {
	Dispatcher(channel string) (NotificationDispatcher, error)
}

// EmailTransport hands a rendered email to a mail system.
type EmailTransport interface {
	SendEmail(ctx context.Context, message *models.EmailMessage) error
}

type WhatsAppService interface {
	SendTemplateMessage(ctx context.Context, message *requests.WhatsAppTemplateMessage) error
}
