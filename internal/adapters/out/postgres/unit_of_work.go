// Package postgres provides a GORM-based implementation of the Unit of
// Work pattern. A unit of work spans one business transaction: the package
// aggregate mutation and any outbox notices it produces commit or roll
// back together.
//
// Basic usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.PackageRepository().Add(ctx, pkg); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance owns its own transaction state; concurrent
// operations must use separate instances.
package postgres

import (
	"context"

	"packagetracker/internal/adapters/out/postgres/outboxrepo"
	"packagetracker/internal/adapters/out/postgres/packagerepo"
	"packagetracker/internal/core/domain/model/kernel"
	"packagetracker/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate records an aggregate modified during the unit of work,
// keyed by its public tracking code.
type trackedAggregate struct {
	Code      kernel.TrackingCode
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances over one shared GORM
// connection pool. Each business operation gets a fresh instance with its
// own transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory bound to the given database
// connection.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction across the package
// repository and the notification outbox, and tracks aggregates modified
// within it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts a new database transaction. Calling Begin again on an
// instance with an active transaction is a no-op; nested transactions are
// never created.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is active, which
// is the normal outcome of the deferred rollback after a commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// PackageRepository returns a package repository bound to the active
// transaction, or to the base connection when none is active.
func (uow *GormUnitOfWork) PackageRepository() ports.PackageRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return packagerepo.NewGormPackageRepository(db, uow)
}

// NotificationOutbox returns an outbox bound to the active transaction, so
// notices commit or roll back together with the mutation that caused them.
func (uow *GormUnitOfWork) NotificationOutbox() ports.NotificationOutbox {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return outboxrepo.NewGormNotificationOutbox(db)
}

// TrackAggregate registers a package aggregate as modified within this
// unit of work. Called by the repository on Add and Save.
func (uow *GormUnitOfWork) TrackAggregate(code kernel.TrackingCode, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		Code:      code,
		Aggregate: aggregate,
	})
}
