// Package ports defines the contracts between the application core and
// infrastructure adapters, enabling dependency inversion and testability.
package ports

import (
	"context"

	"packagetracker/internal/core/domain/model/kernel"
	"packagetracker/internal/core/domain/model/tracking"
)

// PackageRepository defines the persistence contract for package aggregates.
type PackageRepository interface {
	// FindAll retrieves all packages as summaries. Update histories are
	// not loaded; this serves list views only.
	FindAll(ctx context.Context) ([]*tracking.Package, error)

	// FindByCode retrieves one package by its public tracking code,
	// including the complete update history in insertion order.
	FindByCode(ctx context.Context, code kernel.TrackingCode) (*tracking.Package, error)

	// FindUpdateByID resolves an update within the given package's own
	// loaded history. The lookup is scoped: an update id belonging to a
	// different package never resolves.
	FindUpdateByID(pkg *tracking.Package, updateID int64) (*tracking.PackageUpdate, error)

	// Add persists a new package together with any nested updates as one
	// atomic unit, and assigns identities onto the aggregate.
	Add(ctx context.Context, pkg *tracking.Package) error

	// Save persists all mutations to an already-identified package and
	// its updates atomically. The stored version is compared against the
	// aggregate's; a mismatch fails with errs.ErrConcurrentModification
	// and writes nothing.
	Save(ctx context.Context, pkg *tracking.Package) error

	// Remove deletes the package and cascades deletion of all its
	// updates, children first, to satisfy the restricting foreign key.
	Remove(ctx context.Context, pkg *tracking.Package) error
}
