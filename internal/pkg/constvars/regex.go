package constvars

const (
	RegexEmail   = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	RegexNumeric = `^\d+$`
	// RegexPhoneNumberDigitsInternational matches "E.164 without plus", digits only.
	// 10-15 digits, cannot start with 0.
	RegexPhoneNumberDigitsInternational = `^[1-9]\d{9,14}$`
)
