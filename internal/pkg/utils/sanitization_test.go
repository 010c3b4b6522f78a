package utils

import (
	"passwordless-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeSignInRequest(t *testing.T) {
	t.Run("Email Sanitization", func(t *testing.T) {
		request := &requests.SignIn{
			Email: "  TEST@EXAMPLE.COM  ",
		}

		SanitizeSignInRequest(request)

		assert.Equal(t, "test@example.com", request.Email, "email should be lowercase and trimmed")
	})

	t.Run("Phone Sanitization", func(t *testing.T) {
		request := &requests.SignIn{
			Email: "test@example.com",
			Phone: " +62 812 3456 7890 ",
		}

		SanitizeSignInRequest(request)

		assert.Equal(t, "6281234567890", request.Phone, "phone should be digits only")
	})

	t.Run("Selectors Sanitization", func(t *testing.T) {
		request := &requests.SignIn{
			Email:      "test@example.com",
			SenderType: " WhatsApp ",
			LinkType:   "Branch",
			Language:   " ID ",
		}

		SanitizeSignInRequest(request)

		assert.Equal(t, "whatsapp", request.SenderType)
		assert.Equal(t, "branch", request.LinkType)
		assert.Equal(t, "id", request.Language)
	})

	t.Run("Shared Secret Untouched", func(t *testing.T) {
		request := &requests.SignIn{
			Email: "test@example.com",
			Code:  " Secret ",
		}

		SanitizeSignInRequest(request)

		assert.Equal(t, " Secret ", request.Code, "shared secret must be compared as sent")
	})
}

func TestSanitizeVerifyRequest(t *testing.T) {
	request := &requests.Verify{
		Email:    "  A@B.COM ",
		Passcode: " 123456 ",
	}

	SanitizeVerifyRequest(request)

	assert.Equal(t, "a@b.com", request.Email)
	assert.Equal(t, "123456", request.Passcode)
}

func TestSanitizeSendInviteRequest(t *testing.T) {
	request := &requests.SendInvite{
		Email: " Parent@School.ORG ",
		Name:  " Ayu ",
		Link:  " https://bookbot.page.link/abc ",
	}

	SanitizeSendInviteRequest(request)

	assert.Equal(t, "parent@school.org", request.Email)
	assert.Equal(t, "Ayu", request.Name)
	assert.Equal(t, "https://bookbot.page.link/abc", request.Link)
}
