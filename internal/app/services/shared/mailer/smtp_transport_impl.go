package mailer

import (
	"context"
	"fmt"
	"mime"
	"net/mail"
	"net/smtp"
	"passwordless-service/internal/app/contracts"
	"passwordless-service/internal/app/drivers/mailer"
	"passwordless-service/internal/app/models"
	"passwordless-service/internal/pkg/constvars"
	"passwordless-service/internal/pkg/utils"
	"strings"
	"unicode"

	"go.uber.org/zap"
)

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type smtpTransport struct {
	Client   *mailer.SMTPClient
	Log      *zap.Logger
	sendMail sendMailFunc
}

func NewSMTPTransport(client *mailer.SMTPClient, logger *zap.Logger) contracts.EmailTransport {
	return &smtpTransport{
		Client:   client,
		Log:      logger,
		sendMail: smtp.SendMail,
	}
}

func (t *smtpTransport) SendEmail(ctx context.Context, message *models.EmailMessage) error {
	requestID := utils.GetRequestID(ctx)
	t.Log.Info("smtpTransport.SendEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("recipients", len(message.To)),
	)

	if err := ctx.Err(); err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", t.Client.Host, t.Client.Port)
	err := t.sendMail(addr, t.Client.Auth, envelopeSender(message.From), message.To, BuildMIMEMessage(message))
	if err != nil {
		t.Log.Error("smtpTransport.SendEmail error sending email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return fmt.Errorf(constvars.ErrDevSMTPSendEmail+": %w", t.Client.Host, err)
	}

	t.Log.Info("smtpTransport.SendEmail succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

// BuildMIMEMessage renders a multipart/alternative message with a plain text
// part followed by the HTML part.
func BuildMIMEMessage(message *models.EmailMessage) []byte {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf(constvars.EmailHeaderFormat,
		encodeAddress(message.From),
		singleLine(strings.Join(message.To, ", ")),
		mime.QEncoding.Encode(constvars.EmailHeaderCharset, singleLine(message.Subject)),
	))
	builder.WriteString(fmt.Sprintf(constvars.EmailMultipartHeader, constvars.EmailMultipartBoundary))
	builder.WriteString(fmt.Sprintf(constvars.EmailPartHeaderFormat, constvars.EmailMultipartBoundary, constvars.MIMETextPlainCharsetUTF8, message.TextBody))
	builder.WriteString(fmt.Sprintf(constvars.EmailPartHeaderFormat, constvars.EmailMultipartBoundary, constvars.MIMETextHTMLCharsetUTF8, message.HTMLBody))
	builder.WriteString(fmt.Sprintf(constvars.EmailClosingBoundary, constvars.EmailMultipartBoundary))
	return []byte(builder.String())
}

// encodeAddress renders a "Name <addr>" value with the display name quoted
// or RFC 2047 encoded as needed.
func encodeAddress(from string) string {
	start := strings.LastIndex(from, "<")
	name := strings.TrimSpace(from[:max(start, 0)])
	if start < 0 || name == "" {
		return singleLine(from)
	}
	return (&mail.Address{Name: singleLine(name), Address: singleLine(envelopeSender(from))}).String()
}

// singleLine replaces control characters with spaces so a value cannot break
// out of its header line.
func singleLine(value string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, value)
}

// envelopeSender extracts the bare address from a "Name <addr>" header value.
func envelopeSender(from string) string {
	start := strings.LastIndex(from, "<")
	end := strings.LastIndex(from, ">")
	if start >= 0 && end > start {
		return from[start+1 : end]
	}
	return from
}
