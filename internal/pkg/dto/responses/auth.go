package responses

// SignIn is the body of a successful sign-in. Passcode is only filled when
// the caller asked for the code instead of a delivery.
type SignIn struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Passcode string `json:"passcode,omitempty"`
}

type Health struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
