package ports

import "context"

// Message is an email notice under construction: a subject/body pair plus
// a single named recipient. The sender address is the fixed service
// identity owned by the transport adapter, never user-supplied.
type Message struct {
	Subject        string
	Body           string
	RecipientName  string
	RecipientEmail string
}

// Notifier defines the email side-effect boundary. Implementations own the
// transport; the core only composes messages and asks for delivery.
type Notifier interface {
	// Compose creates a message with the given subject and plain-text body.
	Compose(subject, body string) Message

	// AddRecipient returns a copy of the message addressed to the named
	// recipient.
	AddRecipient(m Message, name, email string) Message

	// Send delivers the message. Transport failures are returned as
	// errors; callers decide whether they are fatal (they are not, on the
	// relay path).
	Send(ctx context.Context, m Message) error
}
