package utils

import (
	"net/url"
	"os"
	"passwordless-service/internal/pkg/dto/requests"
	"regexp"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTP(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9]{6}$`)
	for i := 0; i < 100; i++ {
		otp, err := GenerateOTP(6)
		require.NoError(t, err)
		assert.Regexp(t, pattern, otp)
	}
}

func TestGenerateRequestID(t *testing.T) {
	first := GenerateRequestID()
	second := GenerateRequestID()

	assert.True(t, strings.HasPrefix(first, "PWLS_SVC_"))
	assert.NotEqual(t, first, second)
}

func TestSharedSecretMatches(t *testing.T) {
	assert.True(t, SharedSecretMatches("s3cret", "s3cret"))
	assert.False(t, SharedSecretMatches("s3cret", "other"))
	assert.False(t, SharedSecretMatches("", "s3cret"))
	assert.False(t, SharedSecretMatches("", ""))
}

func TestLastPathSegment(t *testing.T) {
	assert.Equal(t, "abc123", LastPathSegment("https://bookbot.page.link/abc123"))
	assert.Equal(t, "abc123", LastPathSegment("https://bookbot.page.link/abc123/"))
	assert.Equal(t, "plain", LastPathSegment("plain"))
}

func TestAppendQuery(t *testing.T) {
	link, err := AppendQuery("https://app.example.com/verify?utm=mail", url.Values{
		"email": {"a+b@c.com"},
		"code":  {"012345"},
	})
	require.NoError(t, err)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "a+b@c.com", parsed.Query().Get("email"))
	assert.Equal(t, "012345", parsed.Query().Get("code"))
	assert.Equal(t, "mail", parsed.Query().Get("utm"))
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "j***@example.com", MaskEmail("john@example.com"))
	assert.Equal(t, "*@b.com", MaskEmail("a@b.com"))
	assert.Equal(t, "***", MaskEmail("not-an-email"))
}

func TestValidateStruct(t *testing.T) {
	t.Run("Missing Email Reports JSON Name", func(t *testing.T) {
		err := ValidateStruct(&requests.Verify{Passcode: "123456"})
		require.Error(t, err)

		validationErrors, ok := err.(validator.ValidationErrors)
		require.True(t, ok)
		assert.Equal(t, "email", validationErrors[0].Field())
		assert.Equal(t, "required", validationErrors[0].Tag())
	})

	t.Run("WhatsApp Requires Phone", func(t *testing.T) {
		err := ValidateStruct(&requests.SignIn{Email: "a@b.com", SenderType: "whatsapp"})
		require.Error(t, err)

		validationErrors := err.(validator.ValidationErrors)
		assert.Equal(t, "phone", validationErrors[0].Field())
	})

	t.Run("Unknown Link Type", func(t *testing.T) {
		err := ValidateStruct(&requests.SignIn{Email: "a@b.com", LinkType: "bitly"})
		require.Error(t, err)
	})

	t.Run("Invite Name With Line Breaks", func(t *testing.T) {
		err := ValidateStruct(&requests.SendInvite{
			Email: "a@b.com",
			Name:  "Bob\r\nBcc: evil@x.com\r\nX-Injected: yes",
			Link:  "https://app.example.com/invite/abc",
		})
		require.Error(t, err)

		validationErrors := err.(validator.ValidationErrors)
		assert.Equal(t, "name", validationErrors[0].Field())
		assert.Equal(t, "single_line", validationErrors[0].Tag())
	})

	t.Run("Invite Name With Accents", func(t *testing.T) {
		err := ValidateStruct(&requests.SendInvite{
			Email: "a@b.com",
			Name:  "Zoë Ngũgĩ",
			Link:  "https://app.example.com/invite/abc",
		})
		assert.NoError(t, err)
	})

	t.Run("Sign In Name With Tab", func(t *testing.T) {
		err := ValidateStruct(&requests.SignIn{Email: "a@b.com", Name: "Ana\tB"})
		require.Error(t, err)
	})

	t.Run("Valid Sign In", func(t *testing.T) {
		err := ValidateStruct(&requests.SignIn{Email: "a@b.com", SenderType: "whatsapp", Phone: "6281234567890"})
		assert.NoError(t, err)
	})
}

func TestGetEnv(t *testing.T) {
	os.Setenv("PWLS_TEST_TIMEOUT", "1800000")
	os.Setenv("PWLS_TEST_BROKEN", "abc")
	defer os.Unsetenv("PWLS_TEST_TIMEOUT")
	defer os.Unsetenv("PWLS_TEST_BROKEN")

	assert.Equal(t, int64(1800000), GetEnvInt64("PWLS_TEST_TIMEOUT", 1))
	assert.Equal(t, 7, GetEnvInt("PWLS_TEST_BROKEN", 7))
	assert.Equal(t, "fallback", GetEnvString("PWLS_TEST_MISSING", "fallback"))
	assert.True(t, GetEnvBool("PWLS_TEST_MISSING", true))
}
