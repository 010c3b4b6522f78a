package challenges

import (
	"passwordless-service/internal/app/models"
	"time"
)

// Prune keeps the challenges still redeemable at now, in their original order.
func Prune(set models.ChallengeSet, now time.Time, ttl time.Duration) models.ChallengeSet {
	pruned := models.ChallengeSet{
		Challenges: make([]models.Challenge, 0, len(set.Challenges)),
		Revision:   set.Revision,
	}
	for _, challenge := range set.Challenges {
		if IsFresh(challenge, now, ttl) {
			pruned.Challenges = append(pruned.Challenges, challenge)
		}
	}
	return pruned
}

// Append returns a copy of set with challenge at the end.
func Append(set models.ChallengeSet, challenge models.Challenge) models.ChallengeSet {
	challenges := make([]models.Challenge, 0, len(set.Challenges)+1)
	challenges = append(challenges, set.Challenges...)
	challenges = append(challenges, challenge)
	return models.ChallengeSet{Challenges: challenges, Revision: set.Revision}
}

// Remove returns a copy of set without the challenge at index.
func Remove(set models.ChallengeSet, index int) models.ChallengeSet {
	if index < 0 || index >= len(set.Challenges) {
		return set
	}
	challenges := make([]models.Challenge, 0, len(set.Challenges)-1)
	challenges = append(challenges, set.Challenges[:index]...)
	challenges = append(challenges, set.Challenges[index+1:]...)
	return models.ChallengeSet{Challenges: challenges, Revision: set.Revision}
}

// IsFresh reports issuedAt + ttl > now. Prune and Validate share it so a
// challenge is never kept but rejected, or dropped but accepted.
// The earlier service accepted at now == issuedAt + ttl; here that instant is
// already expired.
func IsFresh(challenge models.Challenge, now time.Time, ttl time.Duration) bool {
	return challenge.IssuedAtMillis+ttl.Milliseconds() > now.UnixMilli()
}

func NewChallenge(code string, now time.Time) models.Challenge {
	return models.Challenge{Code: code, IssuedAtMillis: now.UnixMilli()}
}
