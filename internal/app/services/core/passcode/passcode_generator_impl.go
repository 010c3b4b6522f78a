package passcode

import (
	"passwordless-service/internal/app/contracts"
	"passwordless-service/internal/pkg/constvars"
	"passwordless-service/internal/pkg/utils"
)

type passcodeGenerator struct {
	Length int
}

// NewPasscodeGenerator returns a generator of 6 digit codes drawn from
// crypto/rand, leading zeros included.
func NewPasscodeGenerator() contracts.PasscodeGenerator {
	return &passcodeGenerator{
		Length: constvars.PASSCODE_LENGTH,
	}
}

// Generate only fails when the system entropy source does.
func (g *passcodeGenerator) Generate() (string, error) {
	return utils.GenerateOTP(g.Length)
}
