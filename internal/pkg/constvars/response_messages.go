package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"
)

const (
	SignInEmailSuccessMessageFormat    = "A link has been sent to %s"
	SignInWhatsAppSuccessMessageFormat = "Passcode has been sent to %s"
	SignInPasscodeReturnedMessage      = "Passcode has been generated"
	InviteEmailSuccessMessageFormat    = "Passcode and url has been sent to %s"
	InviteWhatsAppSuccessMessageFormat = "Passcode and has been sent to %s"
	VerifySuccessMessage               = ResponseSuccess
	HealthOKMessage                    = "ok"
)
