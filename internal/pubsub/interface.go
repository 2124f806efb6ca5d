package pubsub

// Publisher decouples event publishing from the Pub/Sub implementation.
// A nil Publisher disables publishing entirely.
type Publisher interface {
	SendMessage(topic string, data any) error
	ProcessMessage(data []byte, returnValue any) error
}
