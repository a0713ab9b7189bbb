package processor

// Cloud API webhook payload. Each level can legitimately be empty, e.g.
// status-update callbacks carry no messages.
type Envelope struct {
	Object string  `json:"object"`
	Entry  []Entry `json:"entry"`
}

type Entry struct {
	ID      string   `json:"id"`
	Changes []Change `json:"changes"`
}

type Change struct {
	Field string `json:"field"`
	Value Value  `json:"value"`
}

type Value struct {
	MessagingProduct string    `json:"messaging_product"`
	Metadata         Metadata  `json:"metadata"`
	Messages         []Message `json:"messages,omitempty"`
	Statuses         []Status  `json:"statuses,omitempty"`
}

type Metadata struct {
	DisplayPhoneNumber string `json:"display_phone_number"`
	PhoneNumberID      string `json:"phone_number_id"`
}

type Message struct {
	From      string `json:"from"`
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Type      string `json:"type"`
	Text      *Text  `json:"text,omitempty"`
}

type Text struct {
	Body string `json:"body"`
}

type Status struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	RecipientID string `json:"recipient_id"`
}

// Outcome classifies what happened to a webhook delivery.
type Outcome int

const (
	// OutcomeIgnored means the payload shape did not match a message event.
	OutcomeIgnored Outcome = iota
	// OutcomeHandled means a message was seen; an echo was sent if actionable.
	OutcomeHandled
	// OutcomeFailed means parsing or sending failed.
	OutcomeFailed
)

type Result struct {
	Outcome Outcome
	Detail  string
}
