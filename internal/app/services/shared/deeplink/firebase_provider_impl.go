package deeplink

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"passwordless-service/internal/app/config"
	"passwordless-service/internal/app/contracts"
	"passwordless-service/internal/app/services/shared/metrics"
	"passwordless-service/internal/pkg/constvars"
	"passwordless-service/internal/pkg/dto/requests"
	"passwordless-service/internal/pkg/dto/responses"
	"passwordless-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const firebaseSuffixOption = "SHORT"

type firebaseProvider struct {
	internalConfig *config.InternalConfig
	httpClient     *http.Client
	log            *zap.Logger
}

// NewFirebaseProvider creates short links through the Firebase Dynamic
// Links REST API, authenticating with the API key of the selected bundle.
func NewFirebaseProvider(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.DeepLinkProvider {
	return &firebaseProvider{
		internalConfig: internalConfig,
		httpClient:     newHTTPClient(internalConfig.DeepLink.HTTPTimeoutInSeconds),
		log:            logger,
	}
}

func (p *firebaseProvider) Name() string {
	return constvars.LinkTypeFirebase
}

func (p *firebaseProvider) LongLink(appContext, identityID, email, code string) (string, error) {
	return buildLongLink(p.internalConfig.Bundle(appContext), identityID, email, code)
}

func (p *firebaseProvider) CreateLink(ctx context.Context, appContext, identityID, email, code string) (string, error) {
	requestID := utils.GetRequestID(ctx)
	bundle := p.internalConfig.Bundle(appContext)

	longLink, err := buildLongLink(bundle, identityID, email, code)
	if err != nil {
		metrics.RecordDeepLink(p.Name(), false)
		return "", err
	}

	payload := requests.FirebaseShortLink{
		DynamicLinkInfo: requests.FirebaseDynamicLinkInfo{
			DomainUriPrefix: bundle.FirebaseDomainUriPrefix,
			Link:            longLink,
		},
		Suffix: requests.FirebaseSuffix{Option: firebaseSuffixOption},
	}
	if bundle.AndroidPackageName != "" {
		payload.DynamicLinkInfo.AndroidInfo = &requests.FirebaseAndroidInfo{AndroidPackageName: bundle.AndroidPackageName}
	}
	if bundle.IOSBundleID != "" {
		payload.DynamicLinkInfo.IosInfo = &requests.FirebaseIosInfo{
			IosBundleId:   bundle.IOSBundleID,
			IosAppStoreId: bundle.IOSAppStoreID,
		}
	}
	if bundle.AppName != "" {
		payload.DynamicLinkInfo.SocialMetaTag = &requests.FirebaseSocialMetaTag{SocialTitle: bundle.AppName}
	}

	targetURL, err := utils.AppendQuery(p.internalConfig.DeepLink.FirebaseApiUrl, url.Values{"key": []string{bundle.FirebaseApiKey}})
	if err != nil {
		metrics.RecordDeepLink(p.Name(), false)
		return "", fmt.Errorf("%w: %v", ErrLinkGenerationFailed, err)
	}

	var out responses.FirebaseShortLink
	if err := postJSON(ctx, p.httpClient, targetURL, payload, &out); err != nil {
		metrics.RecordDeepLink(p.Name(), false)
		p.log.Error("firebaseProvider.CreateLink error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppIDKey, appContext),
			zap.Error(err),
		)
		return "", err
	}
	if out.ShortLink == "" {
		metrics.RecordDeepLink(p.Name(), false)
		return "", fmt.Errorf("%w: response has no shortLink", ErrLinkGenerationFailed)
	}

	metrics.RecordDeepLink(p.Name(), true)
	p.log.Info("firebaseProvider.CreateLink succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppIDKey, appContext),
	)
	return out.ShortLink, nil
}
