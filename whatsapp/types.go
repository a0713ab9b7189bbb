package whatsapp

type Config struct {
	AccessToken   string
	PhoneNumberID string
	GraphAPIURL   string
}

// TextMessage is the Cloud API send-message request body.
type TextMessage struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Text             TextBody `json:"text"`
}

type TextBody struct {
	Body string `json:"body"`
}

// MessageResponse is the Cloud API send-message response body.
type MessageResponse struct {
	MessagingProduct string `json:"messaging_product"`
	Messages         []struct {
		ID string `json:"id"`
	} `json:"messages"`
}
