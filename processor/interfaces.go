package processor

// TextSender delivers a text message to a recipient.
type TextSender interface {
	SendText(toNumber, text string) error
}
