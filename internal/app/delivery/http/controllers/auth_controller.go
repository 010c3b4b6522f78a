package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"passwordless-service/internal/app/config"
	"passwordless-service/internal/app/contracts"
	"passwordless-service/internal/pkg/constvars"
	"passwordless-service/internal/pkg/dto/requests"
	"passwordless-service/internal/pkg/exceptions"
	"passwordless-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const defaultRequestTimeout = 10 * time.Second

type AuthController struct {
	Log            *zap.Logger
	AuthUsecase    contracts.AuthUsecase
	InternalConfig *config.InternalConfig
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase, internalConfig *config.InternalConfig) *AuthController {
	return &AuthController{
		Log:            logger,
		AuthUsecase:    authUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *AuthController) SignIn(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("AuthController.SignIn called", utils.RequestIDField(r.Context()))

	// Bind body to request
	request := new(requests.SignIn)
	if err := decodeBody(r, request); err != nil {
		ctrl.writeError(w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.AddRequestLogFields(r.Context(),
		zap.String(constvars.LoggingChannelKey, request.SenderType),
		zap.String(constvars.LoggingAppIDKey, request.AppID),
		zap.String(constvars.LoggingLinkTypeKey, request.LinkType),
		zap.String(constvars.LoggingLanguageKey, request.Language),
	)

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	// Send it to be processed by usecase
	response, err := ctrl.AuthUsecase.SignIn(ctx, request)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}

	// Send response
	utils.BuildJSONResponse(w, constvars.StatusOK, response)
}

func (ctrl *AuthController) Verify(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("AuthController.Verify called", utils.RequestIDField(r.Context()))

	request := new(requests.Verify)
	if err := decodeBody(r, request); err != nil {
		ctrl.writeError(w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	if err := ctrl.AuthUsecase.Verify(ctx, request); err != nil {
		ctrl.writeError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.VerifySuccessMessage, nil)
}

func (ctrl *AuthController) SendInvite(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("AuthController.SendInvite called", utils.RequestIDField(r.Context()))

	request := new(requests.SendInvite)
	if err := decodeBody(r, request); err != nil {
		ctrl.writeError(w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.AddRequestLogFields(r.Context(),
		zap.String(constvars.LoggingChannelKey, request.SenderType),
		zap.String(constvars.LoggingLanguageKey, request.Language),
	)

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	message, err := ctrl.AuthUsecase.SendInvite(ctx, request)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, message, nil)
}

// requestContext keeps the request scoped values (request id) and bounds the
// usecase with the configured timeout.
func (ctrl *AuthController) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	timeout := defaultRequestTimeout
	if ctrl.InternalConfig != nil && ctrl.InternalConfig.App.RequestTimeoutInSeconds > 0 {
		timeout = time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
	}
	return context.WithTimeout(r.Context(), timeout)
}

func (ctrl *AuthController) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		var customErr *exceptions.CustomError
		if !errors.As(err, &customErr) || customErr.StatusCode == constvars.StatusInternalServerError {
			err = exceptions.ErrServerDeadlineExceeded(err)
		}
	}
	utils.BuildErrorResponse(ctrl.Log, w, err, ctrl.exposeDevMessage())
}

func (ctrl *AuthController) exposeDevMessage() bool {
	return ctrl.InternalConfig != nil && ctrl.InternalConfig.App.ExposeDevMessage
}

// decodeBody treats an empty body as an empty object so the shared secret
// gate still answers with 401 rather than a parse error.
func decodeBody(r *http.Request, dst interface{}) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
