package challenges

import (
	"context"
	"passwordless-service/internal/app/contracts"
	"passwordless-service/internal/app/models"
	"passwordless-service/internal/pkg/constvars"
	"passwordless-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

// ChallengeStore adapts the identity repository to the challenge lifecycle.
type ChallengeStore struct {
	IdentityRepository contracts.IdentityRepository
	TTL                time.Duration
	ConditionalWrite   bool
	Log                *zap.Logger
}

func NewChallengeStore(identityRepository contracts.IdentityRepository, ttl time.Duration, conditionalWrite bool, logger *zap.Logger) *ChallengeStore {
	return &ChallengeStore{
		IdentityRepository: identityRepository,
		TTL:                ttl,
		ConditionalWrite:   conditionalWrite,
		Log:                logger,
	}
}

// Load fetches the identity with its pending challenges. A missing
// attribute is an empty set; a missing identity is contracts.ErrIdentityNotFound.
func (s *ChallengeStore) Load(ctx context.Context, email string) (*models.Identity, error) {
	identity, err := s.IdentityRepository.FindByEmail(ctx, email)
	if err != nil {
		s.Log.Error("ChallengeStore.Load error finding identity",
			utils.RequestIDField(ctx),
			zap.String(constvars.LoggingEmailKey, utils.MaskEmail(email)),
			zap.Error(err),
		)
		return nil, err
	}
	if identity.Challenges.Challenges == nil {
		identity.Challenges.Challenges = []models.Challenge{}
	}
	return identity, nil
}

func (s *ChallengeStore) Prune(set models.ChallengeSet, now time.Time) models.ChallengeSet {
	return Prune(set, now, s.TTL)
}

func (s *ChallengeStore) Append(set models.ChallengeSet, challenge models.Challenge) models.ChallengeSet {
	return Append(set, challenge)
}

// Save overwrites the whole attribute. With conditional writes enabled the
// write fails with contracts.ErrChallengeConflict when someone else saved
// since set was loaded.
func (s *ChallengeStore) Save(ctx context.Context, email string, set models.ChallengeSet) error {
	err := s.IdentityRepository.SaveChallenges(ctx, email, set, s.ConditionalWrite)
	if err != nil {
		s.Log.Warn("ChallengeStore.Save failed",
			utils.RequestIDField(ctx),
			zap.String(constvars.LoggingEmailKey, utils.MaskEmail(email)),
			zap.Int(constvars.LoggingChallengeCountKey, len(set.Challenges)),
			zap.Error(err),
		)
		return err
	}
	return nil
}
