package whatsapp

import (
	"github.com/rs/zerolog/log"
)

// SendText delivers a single text message to the given recipient. One attempt,
// no retry; callers decide what a failure means.
func (c *Client) SendText(toNumber, text string) error {
	if c.config.AccessToken == "" || c.config.PhoneNumberID == "" {
		return ErrMisconfigured
	}

	message := TextMessage{
		MessagingProduct: "whatsapp",
		To:               toNumber,
		Type:             "text",
		Text:             TextBody{Body: text},
	}

	response, err := c.sendMessageRequest("POST", c.messagesURL(), message)
	if err != nil {
		return err
	}

	if len(response.Messages) > 0 {
		log.Info().
			Str("to", toNumber).
			Str("message_id", response.Messages[0].ID).
			Msg("Sent WhatsApp text message")
	}

	return nil
}
