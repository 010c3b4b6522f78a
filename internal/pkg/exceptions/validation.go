package exceptions

import (
	"passwordless-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		firstErr := validationErrors[0]
		fieldName := firstErr.Field()
		tag := firstErr.Tag()
		if IsMissingFieldTag(tag) {
			return "Missing " + fieldName
		}

		customMessage, ok := constvars.CustomValidationErrorMessages[tag]
		if tag == "phone_intl" || tag == "channel" || tag == "link_type" {
			return fieldName + " " + customMessage
		}
		if !ok {
			customMessage = "is invalid"
		}

		if constvars.TagsWithParams[tag] {
			if tag == "oneof" {
				customMessage = strings.Replace(customMessage, "%s", strings.Join(strings.Fields(firstErr.Param()), ", "), 1)
			} else {
				customMessage = strings.Replace(customMessage, "%s", firstErr.Param(), 1)
			}
		}
		return fieldName + " " + customMessage
	}
	return constvars.ErrDevInvalidInput
}

// IsMissingFieldTag reports whether a failed tag means the field was absent.
func IsMissingFieldTag(tag string) bool {
	return tag == "required" || tag == "required_if"
}
