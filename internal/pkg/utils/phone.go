package utils

import "strings"

// NormalizePhoneDigits trims spaces, removes all inner spaces, and strips a single leading '+'.
// The WhatsApp API expects the international number without '+'.
func NormalizePhoneDigits(input string) string {
	s := strings.TrimSpace(input)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.TrimPrefix(s, "+")
	return s
}
