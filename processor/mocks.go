package processor

// MockTextSender implements TextSender for tests, recording every call.
type MockTextSender struct {
	Calls []SentText
	Err   error
}

type SentText struct {
	To   string
	Body string
}

func (m *MockTextSender) SendText(toNumber, text string) error {
	m.Calls = append(m.Calls, SentText{To: toNumber, Body: text})
	return m.Err
}
