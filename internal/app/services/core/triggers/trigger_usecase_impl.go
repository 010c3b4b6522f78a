package triggers

import (
	"context"
	"passwordless-service/internal/app/config"
	"passwordless-service/internal/app/contracts"
	"passwordless-service/internal/app/models"
	"passwordless-service/internal/app/services/core/challenges"
	"passwordless-service/internal/app/services/shared/metrics"
	"passwordless-service/internal/pkg/constvars"
	"passwordless-service/internal/pkg/exceptions"
	"passwordless-service/internal/pkg/utils"
	"strings"
	"time"

	"go.uber.org/zap"
)

type triggerUsecase struct {
	ChallengeStore     contracts.ChallengeStore
	IdentityRepository contracts.IdentityRepository
	InternalConfig     *config.InternalConfig
	Now                func() time.Time
	Log                *zap.Logger
}

// NewTriggerUsecase implements the custom authentication flow of the
// identity provider. The provider drives define, create and verify in a loop
// until define issues tokens or fails the authentication.
func NewTriggerUsecase(
	challengeStore contracts.ChallengeStore,
	identityRepository contracts.IdentityRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.TriggerUsecase {
	return &triggerUsecase{
		ChallengeStore:     challengeStore,
		IdentityRepository: identityRepository,
		InternalConfig:     internalConfig,
		Now:                time.Now,
		Log:                logger,
	}
}

func boolPtr(value bool) *bool {
	return &value
}

// eventEmail is the identity key of an event: the email attribute when the
// provider sent one, otherwise the user name.
func eventEmail(event *models.TriggerEvent) string {
	email := event.Request.UserAttributes[constvars.AttributeEmail]
	if email == "" {
		email = event.UserName
	}
	return strings.ToLower(strings.TrimSpace(email))
}

func (uc *triggerUsecase) DefineAuthChallenge(ctx context.Context, event *models.TriggerEvent) error {
	session := event.Request.Session
	maxAttempts := uc.InternalConfig.Trigger.DefineAuthMaxAttempts

	switch {
	case len(session) > 0 && session[len(session)-1].ChallengeName == constvars.ChallengeNameCustom && session[len(session)-1].ChallengeResult:
		event.Response.IssueTokens = boolPtr(true)
		event.Response.FailAuthentication = boolPtr(false)
	case len(session) >= maxAttempts:
		event.Response.IssueTokens = boolPtr(false)
		event.Response.FailAuthentication = boolPtr(true)
	default:
		event.Response.IssueTokens = boolPtr(false)
		event.Response.FailAuthentication = boolPtr(false)
		event.Response.ChallengeName = constvars.ChallengeNameCustom
	}

	uc.Log.Info("triggerUsecase.DefineAuthChallenge decided",
		utils.RequestIDField(ctx),
		zap.Int(constvars.LoggingAttemptKey, len(session)),
		zap.Bool("issue_tokens", *event.Response.IssueTokens),
		zap.Bool("fail_authentication", *event.Response.FailAuthentication),
	)
	return nil
}

// CreateAuthChallenge hands the still redeemable challenges to the provider
// as a private parameter, so the verify hook needs no store round trip.
func (uc *triggerUsecase) CreateAuthChallenge(ctx context.Context, event *models.TriggerEvent) error {
	email := eventEmail(event)

	identity, err := uc.ChallengeStore.Load(ctx, email)
	if err != nil {
		uc.Log.Error("triggerUsecase.CreateAuthChallenge error loading challenges",
			utils.RequestIDField(ctx),
			zap.String(constvars.LoggingEmailKey, utils.MaskEmail(email)),
			zap.Error(err),
		)
		return exceptions.ErrIdentityLookup(err)
	}

	pending := uc.ChallengeStore.Prune(identity.Challenges, uc.Now())

	event.Response.PublicChallengeParameters = map[string]string{
		constvars.ChallengeParameterEmail: email,
	}
	event.Response.PrivateChallengeParameters = map[string]string{
		constvars.ChallengeParameterKey: challenges.Serialize(pending),
	}
	event.Response.ChallengeMetadata = constvars.ChallengeMetadataPasscode

	uc.Log.Info("triggerUsecase.CreateAuthChallenge succeeded",
		utils.RequestIDField(ctx),
		zap.String(constvars.LoggingEmailKey, utils.MaskEmail(email)),
		zap.Int(constvars.LoggingChallengeCountKey, len(pending.Challenges)),
	)
	return nil
}

// VerifyAuthChallenge runs the same validator as the HTTP verify endpoint
// against the challenges attached by CreateAuthChallenge.
func (uc *triggerUsecase) VerifyAuthChallenge(ctx context.Context, event *models.TriggerEvent) error {
	set := challenges.Parse(event.Request.PrivateChallengeParameters[constvars.ChallengeParameterKey])
	ttl := time.Duration(uc.InternalConfig.Passcode.TimeoutInMillis) * time.Millisecond

	_, err := challenges.Validate(event.Request.ChallengeAnswer, set, uc.Now(), ttl)
	event.Response.AnswerCorrect = boolPtr(err == nil)
	metrics.RecordVerify(metrics.PathTrigger, challenges.Outcome(err))

	fields := []zap.Field{
		utils.RequestIDField(ctx),
		zap.String(constvars.LoggingEmailKey, utils.MaskEmail(eventEmail(event))),
		zap.Bool(constvars.LoggingSuccessKey, err == nil),
	}
	if err != nil {
		fields = append(fields, zap.String(constvars.LoggingReasonKey, challenges.Reason(err)))
	}
	uc.Log.Info("triggerUsecase.VerifyAuthChallenge completed", fields...)
	return nil
}

// PostAuthentication verifies the email of a first time user and puts them
// in the "new" group. Users already in a group are left alone.
func (uc *triggerUsecase) PostAuthentication(ctx context.Context, event *models.TriggerEvent) error {
	if event.Request.UserAttributes[constvars.AttributeEmailVerified] == "true" {
		return nil
	}

	email := eventEmail(event)
	identity, err := uc.IdentityRepository.FindByEmail(ctx, email)
	if err != nil {
		return exceptions.ErrIdentityLookup(err)
	}
	if len(identity.Groups) > 0 {
		return nil
	}

	if err := uc.IdentityRepository.MarkEmailVerified(ctx, email); err != nil {
		uc.Log.Error("triggerUsecase.PostAuthentication error marking email verified",
			utils.RequestIDField(ctx),
			zap.String(constvars.LoggingEmailKey, utils.MaskEmail(email)),
			zap.Error(err),
		)
		return exceptions.ErrIdentityUpdate(err)
	}
	if err := uc.IdentityRepository.AddToGroup(ctx, email, constvars.GroupNew); err != nil {
		uc.Log.Error("triggerUsecase.PostAuthentication error adding group",
			utils.RequestIDField(ctx),
			zap.String(constvars.LoggingEmailKey, utils.MaskEmail(email)),
			zap.Error(err),
		)
		return exceptions.ErrIdentityUpdate(err)
	}

	uc.Log.Info("triggerUsecase.PostAuthentication onboarded identity",
		utils.RequestIDField(ctx),
		zap.String(constvars.LoggingEmailKey, utils.MaskEmail(email)),
	)
	return nil
}

// PreSignUp confirms new users right away; there is no password to confirm.
func (uc *triggerUsecase) PreSignUp(ctx context.Context, event *models.TriggerEvent) error {
	event.Response.AutoConfirmUser = boolPtr(true)
	return nil
}
