package contracts

import (
	"context"
	"passwordless-service/internal/app/models"
	"time"
)

type PasscodeGenerator interface {
	Generate() (string, error)
}

// ChallengeStore reads and writes the pending challenges of an identity.
type ChallengeStore interface {
	Load(ctx context.Context, email string) (*models.Identity, error)
	// Prune drops the challenges that are no longer redeemable at now.
	Prune(set models.ChallengeSet, now time.Time) models.ChallengeSet
	Append(set models.ChallengeSet, challenge models.Challenge) models.ChallengeSet
	Save(ctx context.Context, email string, set models.ChallengeSet) error
}
