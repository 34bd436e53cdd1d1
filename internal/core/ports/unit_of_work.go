package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request or
// command, ensuring proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns an error if no transaction is active or the rollback fails.
	Rollback(ctx context.Context) error

	// PackageRepository returns a PackageRepository bound to the current
	// transaction started by Begin.
	PackageRepository() PackageRepository

	// NotificationOutbox returns a NotificationOutbox bound to the current
	// transaction, so notices commit or roll back with the mutation that
	// caused them.
	NotificationOutbox() NotificationOutbox
}
