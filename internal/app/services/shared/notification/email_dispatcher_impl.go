package notification

import (
	"context"
	"fmt"
	"passwordless-service/internal/app/config"
	"passwordless-service/internal/app/contracts"
	"passwordless-service/internal/app/models"
	"passwordless-service/internal/app/services/shared/metrics"
	"passwordless-service/internal/pkg/constvars"
	"passwordless-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type emailDispatcher struct {
	transport contracts.EmailTransport
	cfg       config.AppEmail
	Log       *zap.Logger
}

// NewEmailDispatcher renders localized email templates and hands the result
// to transport. The From display name follows the message language.
func NewEmailDispatcher(transport contracts.EmailTransport, cfg config.AppEmail, logger *zap.Logger) contracts.NotificationDispatcher {
	return &emailDispatcher{
		transport: transport,
		cfg:       cfg,
		Log:       logger,
	}
}

func (d *emailDispatcher) Channel() string {
	return constvars.ChannelEmail
}

func (d *emailDispatcher) Send(ctx context.Context, notification *models.Notification) error {
	requestID := utils.GetRequestID(ctx)
	lang := MatchLanguage(notification.Language)

	d.Log.Info("emailDispatcher.Send called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, utils.MaskEmail(notification.Recipient)),
		zap.String(constvars.LoggingTemplateKey, notification.TemplateKey),
		zap.String(constvars.LoggingLanguageKey, lang),
	)

	variables := notification.Variables
	if variables.AppName == "" {
		variables.AppName = d.cfg.SenderName
	}
	if variables.Email == "" {
		variables.Email = notification.Recipient
	}

	rendered, err := renderEmail(notification.TemplateKey, lang, variables)
	if err != nil {
		metrics.RecordDispatch(d.Channel(), notification.TemplateKey, false)
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	message := &models.EmailMessage{
		From:     fmt.Sprintf(constvars.EmailFromAddressFormat, rendered.FromName, d.cfg.FromAddress),
		To:       []string{notification.Recipient},
		Subject:  rendered.Subject,
		HTMLBody: rendered.HTML,
		TextBody: rendered.Text,
	}

	if err := d.transport.SendEmail(ctx, message); err != nil {
		metrics.RecordDispatch(d.Channel(), notification.TemplateKey, false)
		d.Log.Error("emailDispatcher.Send error calling transport.SendEmail",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	metrics.RecordDispatch(d.Channel(), notification.TemplateKey, true)
	d.Log.Info("emailDispatcher.Send succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}
