package whatsapp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"passwordless-service/internal/app/config"
	"passwordless-service/internal/pkg/dto/requests"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWhatsAppServiceSendTemplateMessage(t *testing.T) {
	message := &requests.WhatsAppTemplateMessage{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               "6281234567890",
		Type:             "template",
		Template: requests.WhatsAppTemplate{
			Name:     "otp",
			Language: requests.WhatsAppTemplateLanguage{Code: "en"},
		},
	}

	t.Run("Posts To App Messages Endpoint", func(t *testing.T) {
		var path, authorization string
		var received requests.WhatsAppTemplateMessage
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path = r.URL.Path
			authorization = r.Header.Get("Authorization")
			_ = json.NewDecoder(r.Body).Decode(&received)
			_, _ = w.Write([]byte(`{"messages":[{"id":"wamid.1"}]}`))
		}))
		defer server.Close()

		service := NewWhatsAppService(config.AppWhatsApp{BaseUrl: server.URL + "/", AppID: "42", AppKey: "token"}, zap.NewNop())
		err := service.SendTemplateMessage(context.Background(), message)

		require.NoError(t, err)
		assert.Equal(t, "/42/messages", path)
		assert.Equal(t, "Bearer token", authorization)
		assert.Equal(t, *message, received)
	})

	t.Run("Non Success Status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"message":"invalid token"}}`))
		}))
		defer server.Close()

		service := NewWhatsAppService(config.AppWhatsApp{BaseUrl: server.URL, AppID: "42", AppKey: "bad"}, zap.NewNop())
		err := service.SendTemplateMessage(context.Background(), message)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
	})
}
