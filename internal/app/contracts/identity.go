package contracts

import (
	"context"
	"errors"
	"passwordless-service/internal/app/models"
)

var (
	ErrIdentityNotFound  = errors.New("identity not found")
	ErrChallengeConflict = errors.New("challenge attribute was modified concurrently")
)

// IdentityRepository is the identity provider's user store. Identities are
// keyed by lower-cased email and are never created or deleted here.
type IdentityRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Identity, error)
	// SaveChallenges overwrites the pending challenges. When conditional is
	// true the write only succeeds if set.Revision still matches the stored
	// revision, otherwise ErrChallengeConflict is returned.
	SaveChallenges(ctx context.Context, email string, set models.ChallengeSet, conditional bool) error
	MarkEmailVerified(ctx context.Context, email string) error
	AddToGroup(ctx context.Context, email, group string) error
}
