package deeplink

import (
	"fmt"
	"net/url"
	"passwordless-service/internal/app/config"
	"passwordless-service/internal/pkg/utils"
	"strings"
)

// buildLongLink returns the verify-flow target of a bundle with email,
// code and identity id attached as query parameters. Bundles without a
// BaseUrl use their SubDomain as host.
func buildLongLink(bundle config.AppLinkBundle, identityID, email, code string) (string, error) {
	base := strings.TrimSpace(bundle.BaseUrl)
	if base == "" && bundle.SubDomain != "" {
		base = "https://" + strings.TrimSuffix(bundle.SubDomain, "/")
	}
	if base == "" {
		return "", fmt.Errorf("%w: bundle %q has no base url", ErrLinkGenerationFailed, bundle.AppName)
	}

	params := url.Values{}
	params.Set("email", email)
	params.Set("code", code)
	params.Set("id", identityID)

	link, err := utils.AppendQuery(base, params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrLinkGenerationFailed, err)
	}
	return link, nil
}
