package notification

import (
	"passwordless-service/internal/pkg/constvars"
	"strings"

	"golang.org/x/text/language"
)

var supportedLanguages = []language.Tag{
	language.English,
	language.Indonesian,
	language.Swahili,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

// MatchLanguage maps a caller supplied tag such as "id", "sw-KE" or "en_US"
// to one of the languages templates exist for. Anything unrecognised is "en".
func MatchLanguage(raw string) string {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, "_", "-"))
	if raw == "" {
		return constvars.DefaultLanguage
	}

	tag, err := language.Parse(raw)
	if err != nil {
		return constvars.DefaultLanguage
	}

	_, index, confidence := languageMatcher.Match(tag)
	if confidence == language.No {
		return constvars.DefaultLanguage
	}
	base, _ := supportedLanguages[index].Base()
	return base.String()
}
