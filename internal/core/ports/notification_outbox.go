package ports

import (
	"context"
	"time"
)

// Notice is one stored email notice. Rows are written inside the
// transaction that caused them and drained later by the relay job, so a
// notice is only ever visible for a mutation that actually committed.
type Notice struct {
	ID             int64
	RecipientName  string
	RecipientEmail string
	Subject        string
	Body           string
	CreatedAt      time.Time
	SentAt         *time.Time
	Attempts       int
}

// NotificationOutbox defines the store-and-forward contract for email
// notices.
type NotificationOutbox interface {
	// Enqueue stores a pending notice for the given message.
	Enqueue(ctx context.Context, m Message) error

	// Pending retrieves up to limit unsent notices, oldest first.
	Pending(ctx context.Context, limit int) ([]Notice, error)

	// MarkSent records a successful delivery.
	MarkSent(ctx context.Context, id int64) error

	// MarkFailed bumps the attempt counter after a transport failure so
	// the notice is retried on a later pass.
	MarkFailed(ctx context.Context, id int64) error
}
