package deeplink

import (
	"context"
	"fmt"
	"net/http"
	"passwordless-service/internal/app/config"
	"passwordless-service/internal/app/contracts"
	"passwordless-service/internal/app/services/shared/metrics"
	"passwordless-service/internal/pkg/constvars"
	"passwordless-service/internal/pkg/dto/requests"
	"passwordless-service/internal/pkg/dto/responses"
	"passwordless-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const (
	branchChannel = "passwordless"
	branchFeature = "login"
)

type branchProvider struct {
	internalConfig *config.InternalConfig
	httpClient     *http.Client
	log            *zap.Logger
}

// NewBranchProvider creates short links through the Branch.io link API.
// Store metadata of the selected bundle is sent as link data so the Branch
// dashboard can route installs.
func NewBranchProvider(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.DeepLinkProvider {
	return &branchProvider{
		internalConfig: internalConfig,
		httpClient:     newHTTPClient(internalConfig.DeepLink.HTTPTimeoutInSeconds),
		log:            logger,
	}
}

func (p *branchProvider) Name() string {
	return constvars.LinkTypeBranch
}

func (p *branchProvider) LongLink(appContext, identityID, email, code string) (string, error) {
	return buildLongLink(p.internalConfig.Bundle(appContext), identityID, email, code)
}

func (p *branchProvider) CreateLink(ctx context.Context, appContext, identityID, email, code string) (string, error) {
	requestID := utils.GetRequestID(ctx)
	bundle := p.internalConfig.Bundle(appContext)

	longLink, err := buildLongLink(bundle, identityID, email, code)
	if err != nil {
		metrics.RecordDeepLink(p.Name(), false)
		return "", err
	}

	data := map[string]string{
		"$canonical_url": longLink,
		"$desktop_url":   longLink,
		"email":          email,
		"code":           code,
		"id":             identityID,
	}
	if bundle.AndroidPackageName != "" {
		data["$android_package_name"] = bundle.AndroidPackageName
	}
	if bundle.IOSAppStoreID != "" {
		data["$ios_app_store_id"] = bundle.IOSAppStoreID
	}

	payload := requests.BranchLink{
		BranchKey: p.internalConfig.DeepLink.BranchKey,
		Channel:   branchChannel,
		Feature:   branchFeature,
		Data:      data,
	}

	var out responses.BranchLink
	if err := postJSON(ctx, p.httpClient, p.internalConfig.DeepLink.BranchApiUrl, payload, &out); err != nil {
		metrics.RecordDeepLink(p.Name(), false)
		p.log.Error("branchProvider.CreateLink error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppIDKey, appContext),
			zap.Error(err),
		)
		return "", err
	}
	if out.URL == "" {
		metrics.RecordDeepLink(p.Name(), false)
		return "", fmt.Errorf("%w: response has no url", ErrLinkGenerationFailed)
	}

	metrics.RecordDeepLink(p.Name(), true)
	p.log.Info("branchProvider.CreateLink succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppIDKey, appContext),
	)
	return out.URL, nil
}
