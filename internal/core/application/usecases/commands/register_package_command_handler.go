package commands

import (
	"context"

	"packagetracker/internal/core/domain/model/tracking"
)

// RegisterPackageCommandHandler handles the business logic for package
// registration. Creates the aggregate with a fresh tracking code, persists
// it, and enqueues a "dispatched" notice when sender details are present.
type RegisterPackageCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewRegisterPackageCommandHandler creates a handler for package
// registration. Requires a PackageUoWFactory for transactional persistence.
func NewRegisterPackageCommandHandler(uowFactory PackageUoWFactory) RegisterPackageCommandHandler {
	return RegisterPackageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command and returns the registered
// package. The notice is written to the outbox inside the same transaction
// as the package row, so an email can never refer to a registration that
// failed to save.
func (h *RegisterPackageCommandHandler) Handle(
	ctx context.Context, cmd RegisterPackageCommand,
) (*tracking.Package, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	pkg, err := tracking.NewPackage(cmd.Title(), cmd.Weight(), cmd.SenderName(), cmd.SenderEmail())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PackageRepository().Add(ctx, pkg); err != nil {
		return nil, err
	}

	if pkg.HasSenderInfo() {
		if err = uow.NotificationOutbox().Enqueue(ctx, dispatchedNotice(pkg)); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return pkg, nil
}
