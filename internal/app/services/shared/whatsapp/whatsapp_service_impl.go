package whatsapp

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"passwordless-service/internal/app/config"
	"passwordless-service/internal/app/contracts"
	"passwordless-service/internal/pkg/constvars"
	"passwordless-service/internal/pkg/dto/requests"
	"passwordless-service/internal/pkg/utils"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const maxErrorBodyBytes = 4096

type whatsAppService struct {
	cfg        config.AppWhatsApp
	httpClient *http.Client
	Log        *zap.Logger
}

// NewWhatsAppService sends template messages through the WhatsApp Business
// Cloud API: POST {base}/{app id}/messages with the app key as bearer token.
func NewWhatsAppService(cfg config.AppWhatsApp, logger *zap.Logger) contracts.WhatsAppService {
	timeoutSeconds := 10
	if cfg.HTTPTimeoutInSeconds > 0 {
		timeoutSeconds = cfg.HTTPTimeoutInSeconds
	}
	return &whatsAppService{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: time.Duration(timeoutSeconds) * time.Second},
		Log:        logger,
	}
}

func (s *whatsAppService) SendTemplateMessage(ctx context.Context, request *requests.WhatsAppTemplateMessage) error {
	requestID := utils.GetRequestID(ctx)

	s.Log.Info("whatsAppService.SendTemplateMessage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTemplateKey, request.Template.Name),
	)

	body, err := json.Marshal(request)
	if err != nil {
		s.Log.Error("whatsAppService.SendTemplateMessage error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	targetURL := fmt.Sprintf("%s/%s/messages", strings.TrimRight(s.cfg.BaseUrl, "/"), s.cfg.AppID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, targetURL, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("%s: %w", constvars.ErrDevCreateHTTPRequest, err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSONCharsetUTF8)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+s.cfg.AppKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.Log.Error("whatsAppService.SendTemplateMessage error sending request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return fmt.Errorf("%s: %w", constvars.ErrDevSendHTTPRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		err := fmt.Errorf(constvars.ErrDevUnexpectedHTTPStatus, resp.StatusCode, req.URL.Host, string(respBody))
		s.Log.Error("whatsAppService.SendTemplateMessage unexpected status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(err),
		)
		return err
	}

	s.Log.Info("whatsAppService.SendTemplateMessage succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}
