package routers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"passwordless-service/internal/app/config"
	"passwordless-service/internal/app/contracts"
	"passwordless-service/internal/app/delivery/http/controllers"
	"passwordless-service/internal/app/delivery/http/middlewares"
	"passwordless-service/internal/app/mocks"
	"passwordless-service/internal/app/models"
	"passwordless-service/internal/app/services/core/auth"
	"passwordless-service/internal/app/services/core/challenges"
	"passwordless-service/internal/app/services/core/passcode"
	"passwordless-service/internal/pkg/constvars"
	"passwordless-service/internal/pkg/dto/requests"
	"passwordless-service/internal/pkg/dto/responses"
	"passwordless-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testSecret = "shared-secret"
	testTTL    = 1800000 * time.Millisecond
)

func newTestConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{
			Version:            "v1.0",
			AuthenticationCode: testSecret,
			MaxRequests:        100,
		},
		Passcode: config.AppPasscode{
			TimeoutInMillis: testTTL.Milliseconds(),
			ChallengeMode:   "multi",
		},
	}
}

func newTestRouter(internalConfig *config.InternalConfig, authUsecase contracts.AuthUsecase) *chi.Mux {
	logger := zap.NewNop()
	router := chi.NewRouter()
	SetupRoutes(
		router,
		internalConfig,
		middlewares.NewMiddlewares(logger, internalConfig),
		controllers.NewAuthController(logger, authUsecase, internalConfig),
		controllers.NewHealthController(internalConfig),
	)
	return router
}

// newServiceRouter wires the real usecase over a mocked identity store.
func newServiceRouter(repository contracts.IdentityRepository) *chi.Mux {
	internalConfig := newTestConfig()
	store := challenges.NewChallengeStore(repository, testTTL, false, zap.NewNop())
	usecase := auth.NewAuthUsecase(
		store,
		passcode.NewPasscodeGenerator(),
		new(mocks.MockDeepLinkRegistry),
		new(mocks.MockNotificationRegistry),
		internalConfig,
		zap.NewNop(),
	)
	return newTestRouter(internalConfig, usecase)
}

func postJSON(t *testing.T, router http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) responses.ErrorDTO {
	t.Helper()
	var body responses.ErrorDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func storedIdentity(raw string) *models.Identity {
	set := challenges.Parse(raw)
	set.Revision = raw
	return &models.Identity{ID: "user-1", Email: "a@b.com", Challenges: set}
}

func TestAuthRouter_SignIn(t *testing.T) {
	t.Run("Missing Secret Returns 401 Before Field Validation", func(t *testing.T) {
		repository := new(mocks.MockIdentityRepository)
		router := newServiceRouter(repository)

		rr := postJSON(t, router, "/signIn", map[string]interface{}{})

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, constvars.ErrClientAuthenticationCodeInvalid, decodeError(t, rr).Message)
		repository.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("Empty Body Is Treated As Empty Object", func(t *testing.T) {
		router := newServiceRouter(new(mocks.MockIdentityRepository))

		req := httptest.NewRequest(http.MethodPost, "/signIn", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Disabled Email Returns Passcode Without Dispatch", func(t *testing.T) {
		repository := new(mocks.MockIdentityRepository)
		repository.On("FindByEmail", mock.Anything, "a@b.com").Return(storedIdentity(""), nil)
		repository.On("SaveChallenges", mock.Anything, "a@b.com", mock.AnythingOfType("models.ChallengeSet"), false).Return(nil)
		router := newServiceRouter(repository)

		rr := postJSON(t, router, "/signIn", requests.SignIn{
			Email:        "a@b.com",
			Code:         testSecret,
			DisableEmail: true,
		})

		require.Equal(t, http.StatusOK, rr.Code)
		var body responses.SignIn
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Len(t, body.Passcode, 6)

		saved := repository.Calls[1].Arguments.Get(2).(models.ChallengeSet)
		require.Len(t, saved.Challenges, 1)
		assert.Equal(t, body.Passcode, saved.Challenges[0].Code)
		repository.AssertExpectations(t)
	})

	t.Run("Malformed JSON Returns 400", func(t *testing.T) {
		router := newServiceRouter(new(mocks.MockIdentityRepository))

		req := httptest.NewRequest(http.MethodPost, "/signIn", bytes.NewBufferString("{invalid json"))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAuthRouter_Verify(t *testing.T) {
	now := time.Now().UnixMilli()
	raw := fmt.Sprintf("123456,%d;999999,%d", now-1000, now-5000000)

	t.Run("Fresh Passcode Verifies", func(t *testing.T) {
		repository := new(mocks.MockIdentityRepository)
		repository.On("FindByEmail", mock.Anything, "a@b.com").Return(storedIdentity(raw), nil)
		router := newServiceRouter(repository)

		rr := postJSON(t, router, "/verify", requests.Verify{Email: "a@b.com", Passcode: "123456", Code: testSecret})

		require.Equal(t, http.StatusOK, rr.Code)
		var body responses.ResponseDTO
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, constvars.VerifySuccessMessage, body.Message)
	})

	t.Run("Only Matching Entry Expired Returns 401", func(t *testing.T) {
		repository := new(mocks.MockIdentityRepository)
		repository.On("FindByEmail", mock.Anything, "a@b.com").Return(storedIdentity(raw), nil)
		router := newServiceRouter(repository)

		rr := postJSON(t, router, "/verify", requests.Verify{Email: "a@b.com", Passcode: "999999", Code: testSecret})

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, decodeError(t, rr).Message, "a@b.com")
	})

	t.Run("Empty Stored Attribute Returns 401", func(t *testing.T) {
		repository := new(mocks.MockIdentityRepository)
		repository.On("FindByEmail", mock.Anything, "a@b.com").Return(storedIdentity(""), nil)
		router := newServiceRouter(repository)

		rr := postJSON(t, router, "/verify", requests.Verify{Email: "a@b.com", Passcode: "123456", Code: testSecret})

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, decodeError(t, rr).Message, constvars.ErrClientNoAuthenticationFound)
	})

	t.Run("Wrong Secret Returns 401", func(t *testing.T) {
		repository := new(mocks.MockIdentityRepository)
		router := newServiceRouter(repository)

		rr := postJSON(t, router, "/verify", requests.Verify{Email: "a@b.com", Passcode: "123456", Code: "nope"})

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		repository.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})
}

func TestAuthRouter_SendInvite(t *testing.T) {
	usecase := new(mocks.MockAuthUsecase)
	router := newTestRouter(newTestConfig(), usecase)

	usecase.On("SendInvite", mock.Anything, mock.AnythingOfType("*requests.SendInvite")).
		Return("Passcode and url has been sent to a@b.com", nil).Once()

	rr := postJSON(t, router, "/sendInviteMessage", requests.SendInvite{
		Email: "a@b.com",
		Name:  "Ana",
		Link:  "https://app.example.com/invite/abc",
		Code:  testSecret,
	})

	require.Equal(t, http.StatusOK, rr.Code)
	var body responses.ResponseDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Passcode and url has been sent to a@b.com", body.Message)
	usecase.AssertExpectations(t)
}

func TestAuthRouter_ContextPropagation(t *testing.T) {
	usecase := new(mocks.MockAuthUsecase)
	router := newTestRouter(newTestConfig(), usecase)

	usecase.On("Verify", mock.MatchedBy(func(ctx context.Context) bool {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		_, hasDeadline := ctx.Deadline()
		return requestID == "req-42" && hasDeadline
	}), mock.AnythingOfType("*requests.Verify")).Return(nil).Once()

	payload, _ := json.Marshal(requests.Verify{Email: "a@b.com", Passcode: "123456", Code: testSecret})
	req := httptest.NewRequest(http.MethodPost, "/verify", bytes.NewBuffer(payload))
	req.Header.Set(constvars.HeaderXRequestID, "req-42")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "req-42", rr.Header().Get(constvars.HeaderXRequestID))
	usecase.AssertExpectations(t)
}

func TestAuthRouter_ErrorHandling(t *testing.T) {
	t.Run("Deadline Exceeded Returns 504", func(t *testing.T) {
		usecase := new(mocks.MockAuthUsecase)
		router := newTestRouter(newTestConfig(), usecase)
		usecase.On("SignIn", mock.Anything, mock.Anything).Return(nil, context.DeadlineExceeded).Once()

		rr := postJSON(t, router, "/signIn", requests.SignIn{Email: "a@b.com", Code: testSecret})

		assert.Equal(t, http.StatusGatewayTimeout, rr.Code)
	})

	t.Run("Wrapped Deadline From Collaborator Returns 504", func(t *testing.T) {
		usecase := new(mocks.MockAuthUsecase)
		router := newTestRouter(newTestConfig(), usecase)
		usecase.On("SignIn", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrIdentityLookup(context.DeadlineExceeded)).Once()

		rr := postJSON(t, router, "/signIn", requests.SignIn{Email: "a@b.com", Code: testSecret})

		assert.Equal(t, http.StatusGatewayTimeout, rr.Code)
	})

	t.Run("Unknown Route Returns 404", func(t *testing.T) {
		router := newTestRouter(newTestConfig(), new(mocks.MockAuthUsecase))

		req := httptest.NewRequest(http.MethodGet, "/unknown", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestAuthRouter_ErrorDetail(t *testing.T) {
	verifyUnknown := func(t *testing.T, internalConfig *config.InternalConfig) *httptest.ResponseRecorder {
		repository := new(mocks.MockIdentityRepository)
		repository.On("FindByEmail", mock.Anything, "ghost@b.com").Return(nil, contracts.ErrIdentityNotFound)
		store := challenges.NewChallengeStore(repository, testTTL, false, zap.NewNop())
		usecase := auth.NewAuthUsecase(
			store,
			passcode.NewPasscodeGenerator(),
			new(mocks.MockDeepLinkRegistry),
			new(mocks.MockNotificationRegistry),
			internalConfig,
			zap.NewNop(),
		)
		return postJSON(t, newTestRouter(internalConfig, usecase), "/verify",
			requests.Verify{Email: "ghost@b.com", Passcode: "123456", Code: testSecret})
	}

	t.Run("Unknown Identity Hides Dev Message By Default", func(t *testing.T) {
		rr := verifyUnknown(t, newTestConfig())

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "dev_message")
		assert.NotContains(t, rr.Body.String(), "ghost@b.com")
		assert.Equal(t, constvars.ErrClientCannotProcessRequest, decodeError(t, rr).Message)
	})

	t.Run("Dev Message Echoed When Enabled", func(t *testing.T) {
		internalConfig := newTestConfig()
		internalConfig.App.ExposeDevMessage = true

		rr := verifyUnknown(t, internalConfig)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, decodeError(t, rr).DevMessage, "ghost@b.com")
	})

	t.Run("Ambient App Env Is Ignored", func(t *testing.T) {
		t.Setenv("APP_ENV", constvars.APP_ENV_DEVELOPMENT)

		rr := verifyUnknown(t, newTestConfig())

		assert.Empty(t, decodeError(t, rr).DevMessage)
	})
}

func TestRouter_EndpointPrefix(t *testing.T) {
	internalConfig := newTestConfig()
	internalConfig.App.EndpointPrefix = "/auth/"
	usecase := new(mocks.MockAuthUsecase)
	router := newTestRouter(internalConfig, usecase)
	usecase.On("Verify", mock.Anything, mock.Anything).Return(nil).Once()

	rr := postJSON(t, router, "/auth/verify", requests.Verify{Email: "a@b.com", Passcode: "123456", Code: testSecret})

	assert.Equal(t, http.StatusOK, rr.Code)
	usecase.AssertExpectations(t)
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	router := newTestRouter(newTestConfig(), new(mocks.MockAuthUsecase))

	health := httptest.NewRecorder()
	router.ServeHTTP(health, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, health.Code)
	var body responses.Health
	require.NoError(t, json.Unmarshal(health.Body.Bytes(), &body))
	assert.Equal(t, constvars.HealthOKMessage, body.Status)
	assert.Equal(t, "v1.0", body.Version)

	metrics := httptest.NewRecorder()
	router.ServeHTTP(metrics, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, metrics.Code)
}
