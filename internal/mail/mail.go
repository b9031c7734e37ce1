package mail

import "context"

// Message is one outbound email. HTML carries the already-rendered body.
type Message struct {
	FromName string
	From     string
	To       string
	Subject  string
	HTML     string
}

// Transport sends a message exactly once or fails. Retrying is the
// caller's decision, not the transport's.
type Transport interface {
	Send(ctx context.Context, msg Message) error
}
