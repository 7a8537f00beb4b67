package provider_model

// ExchangeCodeInput holds the parameters of an OAuth authorization code exchange.
type ExchangeCodeInput struct {
	Code         string
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

// Sender identifies the onboarded number a Cloud API call acts for.
type Sender struct {
	AccessToken   string
	AccountID     string
	PhoneNumberID string
}

// TextMessage is a plain text message to a single WhatsApp user.
type TextMessage struct {
	To   string
	Body string
}

// RequestCodeInput selects how the verification code is delivered.
type RequestCodeInput struct {
	Method   string // SMS or VOICE
	Language string
}

const (
	MessagingProductWhatsApp = "whatsapp"

	DefaultLanguage = "en_US"
)
