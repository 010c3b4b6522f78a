package utils

import (
	"passwordless-service/internal/pkg/dto/requests"
	"strings"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func SanitizeSignInRequest(input *requests.SignIn) {
	input.Email = normalizeEmail(input.Email)
	input.Phone = NormalizePhoneDigits(input.Phone)
	input.Language = strings.ToLower(strings.TrimSpace(input.Language))
	input.SenderType = strings.ToLower(strings.TrimSpace(input.SenderType))
	input.LinkType = strings.ToLower(strings.TrimSpace(input.LinkType))
	input.AppID = strings.TrimSpace(input.AppID)
	input.Name = strings.TrimSpace(input.Name)
}

func SanitizeVerifyRequest(input *requests.Verify) {
	input.Email = normalizeEmail(input.Email)
	input.Passcode = strings.TrimSpace(input.Passcode)
}

func SanitizeSendInviteRequest(input *requests.SendInvite) {
	input.Email = normalizeEmail(input.Email)
	input.Phone = NormalizePhoneDigits(input.Phone)
	input.Language = strings.ToLower(strings.TrimSpace(input.Language))
	input.SenderType = strings.ToLower(strings.TrimSpace(input.SenderType))
	input.Name = strings.TrimSpace(input.Name)
	input.Link = strings.TrimSpace(input.Link)
}
