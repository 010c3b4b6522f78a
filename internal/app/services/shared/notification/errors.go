package notification

import "errors"

var (
	// ErrDeliveryFailed wraps every failure of a dispatcher to hand a
	// message to its collaborator.
	ErrDeliveryFailed  = errors.New("notification delivery failed")
	ErrUnknownChannel  = errors.New("unknown notification channel")
	ErrUnknownTemplate = errors.New("unknown notification template")
)
