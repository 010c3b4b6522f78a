package deeplink

import "errors"

var (
	// ErrLinkGenerationFailed wraps every failure to obtain a short link.
	ErrLinkGenerationFailed = errors.New("deep link generation failed")
	ErrUnknownLinkType      = errors.New("unknown link type")
)
