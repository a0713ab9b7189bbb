package processor

import (
	"encoding/json"

	"github.com/rs/zerolog/log"
)

const expectedObject = "whatsapp_business_account"

// maxLoggedBodyBytes bounds the raw-body receipt log.
const maxLoggedBodyBytes = 2000

type EventProcessor struct {
	sender TextSender
}

func New(sender TextSender) *EventProcessor {
	return &EventProcessor{
		sender: sender,
	}
}

// Process handles one webhook delivery. It never returns an error: every
// failure is folded into the Result so the HTTP layer can acknowledge the
// delivery with a 200 regardless.
func (p *EventProcessor) Process(body []byte) Result {
	log.Info().
		Str("body", truncate(string(body), maxLoggedBodyBytes)).
		Msg("Received webhook event")

	var envelope Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		log.Error().Err(err).Msg("Error parsing webhook payload")
		return Result{Outcome: OutcomeFailed, Detail: "invalid JSON payload: " + err.Error()}
	}

	if envelope.Object != expectedObject {
		log.Info().Str("object", envelope.Object).Msg("Ignoring webhook for unexpected object")
		return Result{Outcome: OutcomeIgnored}
	}

	message, ok := firstMessage(envelope)
	if !ok {
		return Result{Outcome: OutcomeIgnored}
	}

	if message.Type != "text" || message.From == "" || message.Text == nil || message.Text.Body == "" {
		log.Info().
			Str("message_id", message.ID).
			Str("message_type", message.Type).
			Msg("Message seen but not actionable")
		return Result{Outcome: OutcomeHandled}
	}

	if err := p.sender.SendText(message.From, message.Text.Body); err != nil {
		log.Error().
			Err(err).
			Str("to", message.From).
			Msg("Error sending echo reply")
		return Result{Outcome: OutcomeFailed, Detail: "failed to send reply: " + err.Error()}
	}

	log.Info().
		Str("to", message.From).
		Str("message_id", message.ID).
		Msg("Echoed text message")

	return Result{Outcome: OutcomeHandled}
}

// firstMessage walks entry -> changes -> messages, taking only the first
// element at each level. Deliveries can batch siblings; only the first is
// processed, matching the original integration behavior.
func firstMessage(envelope Envelope) (Message, bool) {
	if len(envelope.Entry) == 0 {
		return Message{}, false
	}
	entry := envelope.Entry[0]

	if len(entry.Changes) == 0 {
		return Message{}, false
	}
	change := entry.Changes[0]

	if len(change.Value.Messages) == 0 {
		return Message{}, false
	}
	return change.Value.Messages[0], true
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
