package trigger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"passwordless-service/internal/app/contracts"
	"passwordless-service/internal/app/models"
	"passwordless-service/internal/pkg/constvars"
	"passwordless-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var ErrUnknownTriggerSource = errors.New("unknown trigger source")

// Handler routes identity provider events to the trigger usecase by their
// triggerSource.
type Handler struct {
	Log            *zap.Logger
	TriggerUsecase contracts.TriggerUsecase
}

func NewHandler(logger *zap.Logger, triggerUsecase contracts.TriggerUsecase) *Handler {
	return &Handler{
		Log:            logger,
		TriggerUsecase: triggerUsecase,
	}
}

func (h *Handler) Dispatch(ctx context.Context, event *models.TriggerEvent) error {
	h.Log.Info("TriggerHandler.Dispatch called",
		utils.RequestIDField(ctx),
		zap.String(constvars.LoggingTriggerSourceKey, event.TriggerSource),
	)

	switch event.TriggerSource {
	case constvars.TriggerSourcePreSignUp:
		return h.TriggerUsecase.PreSignUp(ctx, event)
	case constvars.TriggerSourceDefineAuthChallenge:
		return h.TriggerUsecase.DefineAuthChallenge(ctx, event)
	case constvars.TriggerSourceCreateAuthChallenge:
		return h.TriggerUsecase.CreateAuthChallenge(ctx, event)
	case constvars.TriggerSourceVerifyAuthChallenge:
		return h.TriggerUsecase.VerifyAuthChallenge(ctx, event)
	case constvars.TriggerSourcePostAuthentication:
		return h.TriggerUsecase.PostAuthentication(ctx, event)
	default:
		return fmt.Errorf(constvars.ErrDevUnknownTriggerSource+": %w", event.TriggerSource, ErrUnknownTriggerSource)
	}
}

// Handle decodes one event from r, dispatches it and writes the event back
// to w with its response filled in.
func (h *Handler) Handle(ctx context.Context, r io.Reader, w io.Writer) error {
	event := new(models.TriggerEvent)
	if err := json.NewDecoder(r).Decode(event); err != nil {
		h.Log.Error("TriggerHandler.Handle error decoding event",
			utils.RequestIDField(ctx),
			zap.Error(err),
		)
		return fmt.Errorf("%s: %w", constvars.ErrDevCannotParseJSON, err)
	}

	if err := h.Dispatch(ctx, event); err != nil {
		h.Log.Error("TriggerHandler.Handle error dispatching event",
			utils.RequestIDField(ctx),
			zap.String(constvars.LoggingTriggerSourceKey, event.TriggerSource),
			zap.Error(err),
		)
		return err
	}

	if err := json.NewEncoder(w).Encode(event); err != nil {
		return fmt.Errorf("%s: %w", constvars.ErrDevCannotMarshalJSON, err)
	}
	return nil
}
