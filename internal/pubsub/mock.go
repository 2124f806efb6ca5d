package pubsub

import "sync"

var _ Publisher = (*Mock)(nil)

// Mock is a Publisher for tests. It records sent messages.
type Mock struct {
	mu sync.Mutex

	SendMessageFunc func(topic string, data any) error

	SentMessages []struct {
		Topic string
		Data  any
	}
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SendMessage(topic string, data any) error {
	m.mu.Lock()
	m.SentMessages = append(m.SentMessages, struct {
		Topic string
		Data  any
	}{topic, data})
	m.mu.Unlock()
	if m.SendMessageFunc != nil {
		return m.SendMessageFunc(topic, data)
	}
	return nil
}

func (m *Mock) ProcessMessage(data []byte, returnValue any) error {
	return nil
}
