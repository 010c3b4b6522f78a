package utils

import "crypto/subtle"

// SharedSecretMatches compares a presented secret with the configured one in
// constant time. An empty presented secret never matches.
func SharedSecretMatches(presented, configured string) bool {
	if presented == "" || configured == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(presented), []byte(configured)) == 1
}
