package contracts

import "context"

type DeepLinkProvider interface {
	Name() string
	// CreateLink returns a short link that opens the verify flow of the app
	// selected by appContext with email, code and identity id attached.
	CreateLink(ctx context.Context, appContext, identityID, email, code string) (string, error)
	// LongLink returns the unshortened target of CreateLink.
	LongLink(appContext, identityID, email, code string) (string, error)
}

type DeepLinkRegistry interface {
	Provider(linkType string) (DeepLinkProvider, error)
}
