package models

// Challenge is one issued passcode. It is never mutated, only dropped.
type Challenge struct {
	Code           string `json:"code" bson:"code"`
	IssuedAtMillis int64  `json:"issued_at_millis" bson:"issued_at_millis"`
}

// ChallengeSet is the ordered list of pending challenges of one identity.
// Revision is an opaque token from the identity store used for conditional
// writes; it is empty for sets that were never persisted.
type ChallengeSet struct {
	Challenges []Challenge `json:"challenges"`
	Revision   string      `json:"-"`
}

func (s ChallengeSet) IsEmpty() bool {
	return len(s.Challenges) == 0
}
