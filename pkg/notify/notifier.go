package notify

import "context"

// Message is one outbound notification handed to the delivery transport.
type Message struct {
	TenantId   string `json:"tenant_id"`
	PropertyId string `json:"property_id"`
	Channel    string `json:"channel"` // "sms" or "email"
	Recipient  string `json:"recipient"`
	Body       string `json:"body"`
}

// Notifier defines the interface for dispatching notifications. Dispatch is
// fire-and-forget with best-effort status reporting: a send failure never
// rolls back ledger state or reminder record-keeping.
type Notifier interface {
	// Send hands one message to the delivery transport.
	Send(ctx context.Context, msg Message) error
}

// NoOpNotifier is a notifier that does nothing.
type NoOpNotifier struct{}

// Send does nothing.
func (n *NoOpNotifier) Send(ctx context.Context, msg Message) error {
	return nil
}
