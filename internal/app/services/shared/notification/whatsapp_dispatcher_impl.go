package notification

import (
	"context"
	"fmt"
	"passwordless-service/internal/app/config"
	"passwordless-service/internal/app/contracts"
	"passwordless-service/internal/app/models"
	"passwordless-service/internal/app/services/shared/metrics"
	"passwordless-service/internal/pkg/constvars"
	"passwordless-service/internal/pkg/dto/requests"
	"passwordless-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const (
	whatsAppMessagingProduct = "whatsapp"
	whatsAppRecipientType    = "individual"
	whatsAppMessageType      = "template"
	whatsAppParameterText    = "text"
	whatsAppComponentHeader  = "header"
	whatsAppComponentBody    = "body"
	whatsAppComponentButton  = "button"
	whatsAppButtonSubTypeURL = "url"
	whatsAppFirstButtonIndex = "0"
)

type whatsAppDispatcher struct {
	service contracts.WhatsAppService
	cfg     config.AppWhatsApp
	Log     *zap.Logger
}

// NewWhatsAppDispatcher maps notifications onto the remote message templates
// configured for sign-in and invite.
func NewWhatsAppDispatcher(service contracts.WhatsAppService, cfg config.AppWhatsApp, logger *zap.Logger) contracts.NotificationDispatcher {
	return &whatsAppDispatcher{
		service: service,
		cfg:     cfg,
		Log:     logger,
	}
}

func (d *whatsAppDispatcher) Channel() string {
	return constvars.ChannelWhatsApp
}

func (d *whatsAppDispatcher) Send(ctx context.Context, notification *models.Notification) error {
	requestID := utils.GetRequestID(ctx)
	d.Log.Info("whatsAppDispatcher.Send called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTemplateKey, notification.TemplateKey),
	)

	message, err := d.buildMessage(notification)
	if err != nil {
		metrics.RecordDispatch(d.Channel(), notification.TemplateKey, false)
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	if err := d.service.SendTemplateMessage(ctx, message); err != nil {
		metrics.RecordDispatch(d.Channel(), notification.TemplateKey, false)
		d.Log.Error("whatsAppDispatcher.Send error calling service.SendTemplateMessage",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	metrics.RecordDispatch(d.Channel(), notification.TemplateKey, true)
	d.Log.Info("whatsAppDispatcher.Send succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (d *whatsAppDispatcher) buildMessage(notification *models.Notification) (*requests.WhatsAppTemplateMessage, error) {
	variables := notification.Variables

	var templateName string
	var components []requests.WhatsAppTemplateComponent
	switch notification.TemplateKey {
	case models.TemplateSignIn:
		templateName = d.cfg.SignInTemplateName
		components = []requests.WhatsAppTemplateComponent{
			textComponent(whatsAppComponentBody, variables.Code),
			urlButton(variables.Code),
		}
	case models.TemplateInvite:
		templateName = d.cfg.InviteTemplateName
		components = []requests.WhatsAppTemplateComponent{
			textComponent(whatsAppComponentHeader, variables.Name),
			textComponent(whatsAppComponentBody, variables.Name),
			urlButton(utils.LastPathSegment(variables.Link)),
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTemplate, notification.TemplateKey)
	}

	return &requests.WhatsAppTemplateMessage{
		MessagingProduct: whatsAppMessagingProduct,
		RecipientType:    whatsAppRecipientType,
		To:               utils.NormalizePhoneDigits(notification.Recipient),
		Type:             whatsAppMessageType,
		Template: requests.WhatsAppTemplate{
			Name:       templateName,
			Language:   requests.WhatsAppTemplateLanguage{Code: MatchLanguage(notification.Language)},
			Components: components,
		},
	}, nil
}

func textComponent(componentType, text string) requests.WhatsAppTemplateComponent {
	return requests.WhatsAppTemplateComponent{
		Type:       componentType,
		Parameters: []requests.WhatsAppTemplateParameter{{Type: whatsAppParameterText, Text: text}},
	}
}

func urlButton(text string) requests.WhatsAppTemplateComponent {
	return requests.WhatsAppTemplateComponent{
		Type:       whatsAppComponentButton,
		SubType:    whatsAppButtonSubTypeURL,
		Index:      whatsAppFirstButtonIndex,
		Parameters: []requests.WhatsAppTemplateParameter{{Type: whatsAppParameterText, Text: text}},
	}
}
