// Package commands contains business operations that modify system state.
// All commands follow a consistent pattern: validation, transaction
// management, domain mutation, notice enqueueing, and persistence.
package commands

import (
	"context"

	"packagetracker/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. These abstractions ensure data consistency across the package
// aggregate and the notification outbox.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// PackageRepoFactory provides access to the package repository within
	// a transaction.
	PackageRepoFactory interface {
		PackageRepository() ports.PackageRepository
	}

	// OutboxFactory provides access to the notification outbox within a
	// transaction.
	OutboxFactory interface {
		NotificationOutbox() ports.NotificationOutbox
	}

	// PackageUoW manages transactions for operations touching a package
	// and, when sender info is present, the outbox.
	PackageUoW interface {
		TxManager
		PackageRepoFactory
		OutboxFactory
	}

	// PackageUoWFactory creates new package unit of work instances.
	PackageUoWFactory interface {
		Create() PackageUoW
	}
)
