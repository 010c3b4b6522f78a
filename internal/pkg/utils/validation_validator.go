package utils

import (
	"passwordless-service/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	validate             *validator.Validate
	rePhoneInternational = regexp.MustCompile(constvars.RegexPhoneNumberDigitsInternational)
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("channel", validateChannel)
	validate.RegisterValidation("link_type", validateLinkType)
	validate.RegisterValidation("phone_intl", validateInternationalPhone)
	validate.RegisterValidation("single_line", validateSingleLine)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// jsonFieldName reports fields by their JSON name so messages read "Missing email".
func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}

func validateChannel(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || value == constvars.ChannelEmail || value == constvars.ChannelWhatsApp
}

func validateLinkType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || value == constvars.LinkTypeFirebase || value == constvars.LinkTypeBranch
}

// validateInternationalPhone accepts an empty value; presence is enforced
// separately with required_if.
func validateInternationalPhone(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || rePhoneInternational.MatchString(value)
}

// validateSingleLine rejects control characters. Values checked with it end
// up in mail headers, where a CR or LF would start a new header.
func validateSingleLine(fl validator.FieldLevel) bool {
	return strings.IndexFunc(fl.Field().String(), unicode.IsControl) < 0
}
