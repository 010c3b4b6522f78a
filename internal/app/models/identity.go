package models

// Identity is the identity-provider user record, keyed by lower-cased email.
type Identity struct {
	ID            string
	Email         string
	EmailVerified bool
	Groups        []string
	Challenges    ChallengeSet
}
