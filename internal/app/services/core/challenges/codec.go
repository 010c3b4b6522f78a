package challenges

import (
	"passwordless-service/internal/app/models"
	"passwordless-service/internal/pkg/constvars"
	"strconv"
	"strings"
)

// Parse reads the delimited attribute form "code,issuedAt;code,issuedAt".
// Entries without exactly a non-empty code and an integer timestamp are
// dropped. An empty attribute yields an empty set.
func Parse(raw string) models.ChallengeSet {
	set := models.ChallengeSet{Challenges: []models.Challenge{}}
	if raw == "" {
		return set
	}

	for _, entry := range strings.Split(raw, constvars.ChallengeDelimiter) {
		challenge, ok := parseEntry(entry)
		if !ok {
			continue
		}
		set.Challenges = append(set.Challenges, challenge)
	}
	return set
}

func parseEntry(entry string) (models.Challenge, bool) {
	parts := strings.Split(entry, constvars.ChallengeFieldDelimiter)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return models.Challenge{}, false
	}

	issuedAt, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return models.Challenge{}, false
	}
	return models.Challenge{Code: parts[0], IssuedAtMillis: issuedAt}, true
}

// Serialize is the inverse of Parse for well-formed sets.
func Serialize(set models.ChallengeSet) string {
	entries := make([]string, 0, len(set.Challenges))
	for _, challenge := range set.Challenges {
		entries = append(entries, challenge.Code+constvars.ChallengeFieldDelimiter+strconv.FormatInt(challenge.IssuedAtMillis, 10))
	}
	return strings.Join(entries, constvars.ChallengeDelimiter)
}
