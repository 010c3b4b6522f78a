package auth

import (
	"context"
	"errors"
	"fmt"
	"passwordless-service/internal/app/config"
	"passwordless-service/internal/app/contracts"
	"passwordless-service/internal/app/models"
	"passwordless-service/internal/app/services/core/challenges"
	"passwordless-service/internal/app/services/shared/metrics"
	"passwordless-service/internal/pkg/constvars"
	"passwordless-service/internal/pkg/dto/requests"
	"passwordless-service/internal/pkg/dto/responses"
	"passwordless-service/internal/pkg/exceptions"
	"passwordless-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

const (
	signInModeEmail    = "email"
	signInModeWhatsApp = "whatsapp"
	signInModePasscode = "passcode"
)

type authUsecase struct {
	ChallengeStore    contracts.ChallengeStore
	PasscodeGenerator contracts.PasscodeGenerator
	DeepLinks         contracts.DeepLinkRegistry
	Notifications     contracts.NotificationRegistry
	InternalConfig    *config.InternalConfig
	Now               func() time.Time
	Log               *zap.Logger
}

func NewAuthUsecase(
	challengeStore contracts.ChallengeStore,
	passcodeGenerator contracts.PasscodeGenerator,
	deepLinks contracts.DeepLinkRegistry,
	notifications contracts.NotificationRegistry,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		ChallengeStore:    challengeStore,
		PasscodeGenerator: passcodeGenerator,
		DeepLinks:         deepLinks,
		Notifications:     notifications,
		InternalConfig:    internalConfig,
		Now:               time.Now,
		Log:               logger,
	}
}

func (uc *authUsecase) ttl() time.Duration {
	return time.Duration(uc.InternalConfig.Passcode.TimeoutInMillis) * time.Millisecond
}

// authorize is the shared-secret gate. It runs before any field validation.
func (uc *authUsecase) authorize(ctx context.Context, presented, method string) error {
	if utils.SharedSecretMatches(presented, uc.InternalConfig.App.AuthenticationCode) {
		return nil
	}
	uc.Log.Warn(method+" rejected shared secret",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)
	return exceptions.ErrUnauthorized(nil)
}

func (uc *authUsecase) SignIn(ctx context.Context, request *requests.SignIn) (*responses.SignIn, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.SignIn called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := uc.authorize(ctx, request.Code, "authUsecase.SignIn"); err != nil {
		return nil, err
	}

	utils.SanitizeSignInRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		uc.Log.Info("authUsecase.SignIn invalid request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	mode := signInMode(request)
	response, err := uc.signIn(ctx, request, mode)
	metrics.RecordSignIn(mode, err == nil)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.SignIn succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, utils.MaskEmail(request.Email)),
		zap.String(constvars.LoggingChannelKey, mode),
	)
	return response, nil
}

func signInMode(request *requests.SignIn) string {
	switch {
	case request.DisableEmail || request.ReturnPasscode:
		return signInModePasscode
	case request.SenderType == constvars.ChannelWhatsApp:
		return signInModeWhatsApp
	default:
		return signInModeEmail
	}
}

func (uc *authUsecase) signIn(ctx context.Context, request *requests.SignIn, mode string) (*responses.SignIn, error) {
	code, err := uc.PasscodeGenerator.Generate()
	if err != nil {
		return nil, exceptions.ErrPasscodeGeneration(err)
	}

	identity, err := uc.issueChallenge(ctx, request.Email, code)
	if err != nil {
		return nil, err
	}

	switch mode {
	case signInModePasscode:
		return &responses.SignIn{
			Success:  true,
			Message:  constvars.SignInPasscodeReturnedMessage,
			Passcode: code,
		}, nil

	case signInModeWhatsApp:
		notification := &models.Notification{
			Channel:     constvars.ChannelWhatsApp,
			Recipient:   request.Phone,
			TemplateKey: models.TemplateSignIn,
			Language:    request.Language,
			Variables: models.NotificationVariables{
				Name:  request.Name,
				Code:  code,
				Email: request.Email,
			},
		}
		if err := uc.dispatch(ctx, notification); err != nil {
			return nil, err
		}
		return &responses.SignIn{
			Success: true,
			Message: fmt.Sprintf(constvars.SignInWhatsAppSuccessMessageFormat, request.Phone),
		}, nil

	default:
		link, err := uc.createLink(ctx, request, identity.ID, code)
		if err != nil {
			return nil, err
		}
		notification := &models.Notification{
			Channel:     constvars.ChannelEmail,
			Recipient:   request.Email,
			TemplateKey: models.TemplateSignIn,
			Language:    request.Language,
			Variables: models.NotificationVariables{
				Name:    request.Name,
				Code:    code,
				Link:    link,
				Email:   request.Email,
				AppName: uc.InternalConfig.Bundle(request.AppID).AppName,
			},
		}
		if err := uc.dispatch(ctx, notification); err != nil {
			return nil, err
		}
		return &responses.SignIn{
			Success: true,
			Message: fmt.Sprintf(constvars.SignInEmailSuccessMessageFormat, request.Email),
		}, nil
	}
}

// issueChallenge runs load, prune, append and save for one new code. With
// conditional writes a lost race reloads and retries up to the configured
// number of attempts. Single mode replaces whatever was pending.
func (uc *authUsecase) issueChallenge(ctx context.Context, email, code string) (*models.Identity, error) {
	requestID := utils.GetRequestID(ctx)
	passcodeConfig := uc.InternalConfig.Passcode

	maxAttempts := 1
	if passcodeConfig.ConditionalWrite && passcodeConfig.ConditionalWriteMaxAttempts > 1 {
		maxAttempts = passcodeConfig.ConditionalWriteMaxAttempts
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		identity, err := uc.ChallengeStore.Load(ctx, email)
		if err != nil {
			return nil, mapIdentityError(err, email)
		}

		now := uc.Now()
		challenge := challenges.NewChallenge(code, now)

		var set models.ChallengeSet
		if passcodeConfig.ChallengeMode == constvars.ChallengeModeSingle {
			set = models.ChallengeSet{
				Challenges: []models.Challenge{challenge},
				Revision:   identity.Challenges.Revision,
			}
		} else {
			set = uc.ChallengeStore.Append(uc.ChallengeStore.Prune(identity.Challenges, now), challenge)
		}

		err = uc.ChallengeStore.Save(ctx, email, set)
		if err == nil {
			metrics.RecordChallengeIssued()
			identity.Challenges = set
			return identity, nil
		}
		if !errors.Is(err, contracts.ErrChallengeConflict) {
			return nil, mapSaveError(err, email)
		}

		metrics.RecordChallengeConflict()
		uc.Log.Warn("authUsecase.issueChallenge lost a concurrent write",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmailKey, utils.MaskEmail(email)),
			zap.Int(constvars.LoggingAttemptKey, attempt),
		)
	}

	uc.Log.Info("authUsecase.issueChallenge giving up after concurrent writes",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, utils.MaskEmail(email)),
		zap.Int(constvars.LoggingAttemptKey, maxAttempts),
	)
	err := fmt.Errorf(constvars.ErrDevChallengeConflict+": %w", maxAttempts, contracts.ErrChallengeConflict)
	return nil, exceptions.ErrChallengeSave(err)
}

func (uc *authUsecase) createLink(ctx context.Context, request *requests.SignIn, identityID, code string) (string, error) {
	requestID := utils.GetRequestID(ctx)

	provider, err := uc.DeepLinks.Provider(request.LinkType)
	if err != nil {
		return "", exceptions.ErrLinkGeneration(err, request.LinkType)
	}

	link, err := provider.CreateLink(ctx, request.AppID, identityID, request.Email, code)
	if err == nil {
		return link, nil
	}

	uc.Log.Error("authUsecase.createLink error calling provider.CreateLink",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLinkTypeKey, provider.Name()),
		zap.String(constvars.LoggingAppIDKey, request.AppID),
		zap.Error(err),
	)
	if !uc.InternalConfig.DeepLink.FallbackToLongUrl {
		return "", exceptions.ErrLinkGeneration(err, provider.Name())
	}

	longLink, longErr := provider.LongLink(request.AppID, identityID, request.Email, code)
	if longErr != nil {
		return "", exceptions.ErrLinkGeneration(longErr, provider.Name())
	}
	uc.Log.Warn("authUsecase.createLink falling back to long link",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLinkTypeKey, provider.Name()),
	)
	return longLink, nil
}

func (uc *authUsecase) dispatch(ctx context.Context, notification *models.Notification) error {
	dispatcher, err := uc.Notifications.Dispatcher(notification.Channel)
	if err != nil {
		return exceptions.ErrDelivery(err, notification.Channel)
	}
	if err := dispatcher.Send(ctx, notification); err != nil {
		uc.Log.Error("authUsecase.dispatch error calling dispatcher.Send",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingChannelKey, notification.Channel),
			zap.String(constvars.LoggingTemplateKey, notification.TemplateKey),
			zap.Error(err),
		)
		return exceptions.ErrDelivery(err, notification.Channel)
	}
	return nil
}

func (uc *authUsecase) SendInvite(ctx context.Context, request *requests.SendInvite) (string, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.SendInvite called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := uc.authorize(ctx, request.Code, "authUsecase.SendInvite"); err != nil {
		return "", err
	}

	utils.SanitizeSendInviteRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return "", exceptions.ErrInputValidation(err)
	}

	notification := &models.Notification{
		Channel:     constvars.ChannelEmail,
		Recipient:   request.Email,
		TemplateKey: models.TemplateInvite,
		Language:    request.Language,
		Variables: models.NotificationVariables{
			Name:  request.Name,
			Link:  request.Link,
			Email: request.Email,
		},
	}
	message := fmt.Sprintf(constvars.InviteEmailSuccessMessageFormat, request.Email)
	if request.SenderType == constvars.ChannelWhatsApp {
		notification.Channel = constvars.ChannelWhatsApp
		notification.Recipient = request.Phone
		message = fmt.Sprintf(constvars.InviteWhatsAppSuccessMessageFormat, request.Phone)
	}

	if err := uc.dispatch(ctx, notification); err != nil {
		return "", err
	}

	uc.Log.Info("authUsecase.SendInvite succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingChannelKey, notification.Channel),
	)
	return message, nil
}

func (uc *authUsecase) Verify(ctx context.Context, request *requests.Verify) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Verify called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := uc.authorize(ctx, request.Code, "authUsecase.Verify"); err != nil {
		return err
	}

	utils.SanitizeVerifyRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}

	identity, err := uc.ChallengeStore.Load(ctx, request.Email)
	if err != nil {
		metrics.RecordVerify(metrics.PathHTTP, metrics.OutcomeError)
		return mapIdentityError(err, request.Email)
	}

	index, err := challenges.Validate(request.Passcode, identity.Challenges, uc.Now(), uc.ttl())
	metrics.RecordVerify(metrics.PathHTTP, challenges.Outcome(err))
	if err != nil {
		uc.Log.Info("authUsecase.Verify rejected passcode",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmailKey, utils.MaskEmail(request.Email)),
			zap.String(constvars.LoggingReasonKey, challenges.Reason(err)),
		)
		if errors.Is(err, challenges.ErrNoChallengeIssued) {
			return exceptions.ErrNoChallengeIssued(err, request.Email)
		}
		return exceptions.ErrInvalidOrExpired(err, challenges.Reason(err), request.Email)
	}

	if uc.InternalConfig.Passcode.ConsumeOnVerify {
		if err := uc.consume(ctx, request.Email, identity.Challenges, index); err != nil {
			return err
		}
	}

	uc.Log.Info("authUsecase.Verify succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, utils.MaskEmail(request.Email)),
	)
	return nil
}

// consume removes the redeemed challenge so it cannot be replayed. The write
// is conditional on the set that was validated; a concurrent change fails
// the verification rather than resurrecting the code.
func (uc *authUsecase) consume(ctx context.Context, email string, set models.ChallengeSet, index int) error {
	remaining := challenges.Remove(set, index)
	if err := uc.ChallengeStore.Save(ctx, email, remaining); err != nil {
		if errors.Is(err, contracts.ErrChallengeConflict) {
			metrics.RecordChallengeConflict()
		}
		return mapSaveError(err, email)
	}
	return nil
}

func mapIdentityError(err error, email string) error {
	if errors.Is(err, contracts.ErrIdentityNotFound) {
		return exceptions.ErrIdentityNotFound(err, email)
	}
	return exceptions.ErrIdentityLookup(err)
}

func mapSaveError(err error, email string) error {
	if errors.Is(err, contracts.ErrIdentityNotFound) {
		return exceptions.ErrIdentityNotFound(err, email)
	}
	return exceptions.ErrChallengeSave(err)
}
