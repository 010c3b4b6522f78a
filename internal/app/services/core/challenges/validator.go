package challenges

import (
	"crypto/subtle"
	"errors"
	"passwordless-service/internal/app/models"
	"passwordless-service/internal/pkg/constvars"
	"time"
)

var (
	ErrNoChallengeIssued = errors.New("no challenge issued")
	ErrInvalidOrExpired  = errors.New("passcode is invalid or expired")

	// ErrPasscodeExpired means the candidate matched only expired challenges.
	ErrPasscodeExpired error = &rejection{reason: constvars.ErrClientPasscodeExpired}
	// ErrPasscodeInvalid means the candidate matched no challenge at all.
	ErrPasscodeInvalid error = &rejection{reason: constvars.ErrClientPasscodeInvalid}
)

type rejection struct {
	reason string
}

func (r *rejection) Error() string {
	return r.reason
}

func (r *rejection) Unwrap() error {
	return ErrInvalidOrExpired
}

// Reason is the client facing text of a validation failure.
func Reason(err error) string {
	var r *rejection
	if errors.As(err, &r) {
		return r.reason
	}
	if errors.Is(err, ErrNoChallengeIssued) {
		return constvars.ErrClientNoAuthenticationFound
	}
	return constvars.ErrClientPasscodeInvalid
}

// Validate returns the index of the first challenge that matches candidate
// and is still fresh. Expired matches do not stop the scan. Both the HTTP
// verify endpoint and the identity provider hook go through here.
func Validate(candidate string, set models.ChallengeSet, now time.Time, ttl time.Duration) (int, error) {
	if set.IsEmpty() {
		return -1, ErrNoChallengeIssued
	}

	matchedExpired := false
	for index, challenge := range set.Challenges {
		if challenge.Code == "" || !codesEqual(candidate, challenge.Code) {
			continue
		}
		if IsFresh(challenge, now, ttl) {
			return index, nil
		}
		matchedExpired = true
	}

	if matchedExpired {
		return -1, ErrPasscodeExpired
	}
	return -1, ErrPasscodeInvalid
}

func codesEqual(candidate, code string) bool {
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(code)) == 1
}

// Outcome labels a Validate result for metrics.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrNoChallengeIssued):
		return "no_challenge"
	case errors.Is(err, ErrPasscodeExpired):
		return "expired"
	default:
		return "invalid"
	}
}
