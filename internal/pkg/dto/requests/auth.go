package requests

// SignIn asks for a new passcode. Code is the shared secret of the trusted
// front end, not the passcode.
type SignIn struct {
	Email          string `json:"email" validate:"required,email"`
	Code           string `json:"code"`
	Name           string `json:"name" validate:"single_line"`
	Language       string `json:"language" validate:"single_line"`
	Phone          string `json:"phone" validate:"required_if=SenderType whatsapp,phone_intl"`
	SenderType     string `json:"sender_type" validate:"channel"`
	AppID          string `json:"app_id"`
	LinkType       string `json:"link_type" validate:"link_type"`
	DisableEmail   bool   `json:"disableEmail"`
	ReturnPasscode bool   `json:"returnPasscode"`
}

type Verify struct {
	Email    string `json:"email" validate:"required"`
	Passcode string `json:"passcode" validate:"required"`
	Code     string `json:"code"`
}

// SendInvite delivers an already built link on behalf of a teacher. No
// challenge is issued.
type SendInvite struct {
	Email      string `json:"email" validate:"required,email"`
	Name       string `json:"name" validate:"required,single_line"`
	Link       string `json:"link" validate:"required,url"`
	Code       string `json:"code"`
	Language   string `json:"language" validate:"single_line"`
	Phone      string `json:"phone" validate:"required_if=SenderType whatsapp,phone_intl"`
	SenderType string `json:"sender_type" validate:"channel"`
}
