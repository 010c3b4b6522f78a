package models

// Notification is what a dispatcher needs to deliver one message.
type Notification struct {
	Channel     string
	Recipient   string
	TemplateKey string
	Language    string
	Variables   NotificationVariables
}

type NotificationVariables struct {
	Name    string
	Code    string
	Link    string
	Email   string
	AppName string
}

// Notification template keys.
const (
	TemplateSignIn = "sign_in"
	TemplateInvite = "invite"
)

// EmailMessage is a rendered email ready for a transport.
type EmailMessage struct {
	From     string   `json:"from"`
	To       []string `json:"to"`
	Subject  string   `json:"subject"`
	HTMLBody string   `json:"html_body"`
	TextBody string   `json:"text_body"`
}
