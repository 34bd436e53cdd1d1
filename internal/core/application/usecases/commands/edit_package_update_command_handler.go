package commands

import (
	"context"

	"packagetracker/internal/core/domain/model/tracking"
)

// EditPackageUpdateCommandHandler corrects an existing status event and
// the package's delivered flag. A "delivered" notice is enqueued only when
// the correction flips the package to delivered and sender details are
// present.
type EditPackageUpdateCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewEditPackageUpdateCommandHandler creates a handler for status-event
// corrections.
func NewEditPackageUpdateCommandHandler(uowFactory PackageUoWFactory) EditPackageUpdateCommandHandler {
	return EditPackageUpdateCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the package, resolves the event within that package's own
// history, applies the correction and persists. The delivered flag is
// overwritten unconditionally: this is the correction path, not an
// append, so the already-delivered guard does not apply.
func (h *EditPackageUpdateCommandHandler) Handle(
	ctx context.Context, cmd EditPackageUpdateCommand,
) (*tracking.Package, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PackageRepository()
	pkg, err := repo.FindByCode(ctx, cmd.Code())
	if err != nil {
		return nil, err
	}

	update, err := repo.FindUpdateByID(pkg, cmd.UpdateID())
	if err != nil {
		return nil, err
	}

	wasDelivered := pkg.Delivered()
	pkg.SetDelivered(cmd.Delivered())
	if err = update.EditStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if err = repo.Save(ctx, pkg); err != nil {
		return nil, err
	}

	if pkg.HasSenderInfo() && pkg.Delivered() && !wasDelivered {
		if err = uow.NotificationOutbox().Enqueue(ctx, deliveredNotice(pkg)); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return pkg, nil
}
