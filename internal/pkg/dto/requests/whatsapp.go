package requests

// WhatsAppTemplateMessage is the Graph API body for a templated message.
type WhatsAppTemplateMessage struct {
	MessagingProduct string           `json:"messaging_product"`
	RecipientType    string           `json:"recipient_type"`
	To               string           `json:"to"`
	Type             string           `json:"type"`
	Template         WhatsAppTemplate `json:"template"`
}

type WhatsAppTemplate struct {
	Name       string                      `json:"name"`
	Language   WhatsAppTemplateLanguage    `json:"language"`
	Components []WhatsAppTemplateComponent `json:"components,omitempty"`
}

type WhatsAppTemplateLanguage struct {
	Code string `json:"code"`
}

type WhatsAppTemplateComponent struct {
	Type       string                      `json:"type"`
	SubType    string                      `json:"sub_type,omitempty"`
	Index      string                      `json:"index,omitempty"`
	Parameters []WhatsAppTemplateParameter `json:"parameters"`
}

type WhatsAppTemplateParameter struct {
	Type string `json:"type"`
	Text string `json:"text"`
}
