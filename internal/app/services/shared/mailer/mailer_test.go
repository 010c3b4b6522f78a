package mailer

import (
	"context"
	"errors"
	"mime"
	"net/smtp"
	"passwordless-service/internal/app/drivers/mailer"
	"passwordless-service/internal/app/models"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testMessage() *models.EmailMessage {
	return &models.EmailMessage{
		From:     "Team Bookbot <no-reply@example.com>",
		To:       []string{"a@b.com"},
		Subject:  "Sign in",
		HTMLBody: "<p>123456</p>",
		TextBody: "123456",
	}
}

func TestSMTPTransportSendEmail(t *testing.T) {
	client := &mailer.SMTPClient{Host: "smtp.example.com", Port: 587}

	t.Run("Sends Multipart Message", func(t *testing.T) {
		var gotAddr, gotFrom string
		var gotTo []string
		var gotMsg []byte
		transport := &smtpTransport{
			Client: client,
			Log:    zap.NewNop(),
			sendMail: func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
				gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
				return nil
			},
		}

		err := transport.SendEmail(context.Background(), testMessage())

		require.NoError(t, err)
		assert.Equal(t, "smtp.example.com:587", gotAddr)
		assert.Equal(t, "no-reply@example.com", gotFrom)
		assert.Equal(t, []string{"a@b.com"}, gotTo)
		assert.Contains(t, string(gotMsg), "Subject: Sign in\r\n")
		assert.Contains(t, string(gotMsg), "text/html; charset=utf-8")
		assert.Contains(t, string(gotMsg), "<p>123456</p>")
	})

	t.Run("Send Failure", func(t *testing.T) {
		sendErr := errors.New("connection refused")
		transport := &smtpTransport{
			Client: client,
			Log:    zap.NewNop(),
			sendMail: func(string, smtp.Auth, string, []string, []byte) error {
				return sendErr
			},
		}

		err := transport.SendEmail(context.Background(), testMessage())

		assert.ErrorIs(t, err, sendErr)
		assert.Contains(t, err.Error(), "smtp.example.com")
	})
}

func messageHeaders(t *testing.T, msg []byte) []string {
	t.Helper()
	head, _, found := strings.Cut(string(msg), "\r\n\r\n")
	require.True(t, found)
	return strings.Split(head, "\r\n")
}

func TestBuildMIMEMessage(t *testing.T) {
	t.Run("Line Breaks In Subject Stay On One Header", func(t *testing.T) {
		message := testMessage()
		message.Subject = "Bob\r\nBcc: evil@x.com\r\nX-Injected: yes's teacher has invited you to Bookbot"

		headers := messageHeaders(t, BuildMIMEMessage(message))

		assert.Len(t, headers, 5)
		for _, header := range headers {
			assert.False(t, strings.HasPrefix(header, "Bcc:"), header)
			assert.False(t, strings.HasPrefix(header, "X-Injected:"), header)
		}
		assert.Contains(t, headers, "Subject: Bob  Bcc: evil@x.com  X-Injected: yes's teacher has invited you to Bookbot")
	})

	t.Run("Line Breaks In From Name Are Contained", func(t *testing.T) {
		message := testMessage()
		message.From = "Team\r\nBcc: evil@x.com <no-reply@example.com>"

		headers := messageHeaders(t, BuildMIMEMessage(message))

		assert.Len(t, headers, 5)
		assert.Equal(t, `From: "Team  Bcc: evil@x.com" <no-reply@example.com>`, headers[0])
	})

	t.Run("Non ASCII Subject Is Encoded", func(t *testing.T) {
		message := testMessage()
		message.Subject = "Mwalimu wa Zoë amekualika kwenye Bookbot"

		headers := messageHeaders(t, BuildMIMEMessage(message))

		subject := strings.TrimPrefix(headers[2], "Subject: ")
		assert.True(t, strings.HasPrefix(subject, "=?utf-8?q?"), subject)
		decoded, err := new(mime.WordDecoder).DecodeHeader(subject)
		require.NoError(t, err)
		assert.Equal(t, message.Subject, decoded)
	})

	t.Run("ASCII Headers Are Unchanged", func(t *testing.T) {
		headers := messageHeaders(t, BuildMIMEMessage(testMessage()))

		assert.Equal(t, []string{
			`From: "Team Bookbot" <no-reply@example.com>`,
			"To: a@b.com",
			"Subject: Sign in",
			"MIME-Version: 1.0",
			`Content-Type: multipart/alternative; boundary="pwls-alternative-boundary"`,
		}, headers)
	})
}

type fakePublisher struct {
	queue string
	msg   amqp091.Publishing
	err   error
}

func (p *fakePublisher) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	p.queue = key
	p.msg = msg
	return p.err
}

func TestQueueTransportSendEmail(t *testing.T) {
	t.Run("Publishes Json", func(t *testing.T) {
		channel := &fakePublisher{}
		transport := newQueueTransport(channel, "mailer", zap.NewNop())

		err := transport.SendEmail(context.Background(), testMessage())

		require.NoError(t, err)
		assert.Equal(t, "mailer", channel.queue)
		assert.Equal(t, amqp091.Persistent, channel.msg.DeliveryMode)
		assert.Equal(t, "DROP", channel.msg.Headers["requeue_strategy"])

		var published models.EmailMessage
		require.NoError(t, json.Unmarshal(channel.msg.Body, &published))
		assert.Equal(t, *testMessage(), published)
	})

	t.Run("Publish Failure", func(t *testing.T) {
		publishErr := errors.New("channel closed")
		transport := newQueueTransport(&fakePublisher{err: publishErr}, "mailer", zap.NewNop())

		err := transport.SendEmail(context.Background(), testMessage())

		assert.ErrorIs(t, err, publishErr)
	})
}
