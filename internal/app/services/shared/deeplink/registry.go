package deeplink

import (
	"fmt"
	"passwordless-service/internal/app/contracts"
)

type registry struct {
	providers       map[string]contracts.DeepLinkProvider
	defaultLinkType string
}

// NewRegistry selects providers by their Name. An empty link type resolves
// to defaultLinkType.
func NewRegistry(defaultLinkType string, providers ...contracts.DeepLinkProvider) contracts.DeepLinkRegistry {
	byName := make(map[string]contracts.DeepLinkProvider, len(providers))
	for _, provider := range providers {
		byName[provider.Name()] = provider
	}
	return &registry{
		providers:       byName,
		defaultLinkType: defaultLinkType,
	}
}

func (r *registry) Provider(linkType string) (contracts.DeepLinkProvider, error) {
	if linkType == "" {
		linkType = r.defaultLinkType
	}
	provider, ok := r.providers[linkType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLinkType, linkType)
	}
	return provider, nil
}
