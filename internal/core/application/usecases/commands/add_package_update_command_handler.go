package commands

import (
	"context"

	"packagetracker/internal/core/domain/model/tracking"
)

// AddPackageUpdateCommandHandler appends a status event to a package.
// Depending on the resulting delivery flag it enqueues either a
// "delivered" or a "new update" notice when sender details are present.
type AddPackageUpdateCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewAddPackageUpdateCommandHandler creates a handler for appending status
// events.
func NewAddPackageUpdateCommandHandler(uowFactory PackageUoWFactory) AddPackageUpdateCommandHandler {
	return AddPackageUpdateCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the package by code, appends the event, persists and
// enqueues the notice matching the transition. The already-delivered
// guard is enforced by the aggregate on entry; its rejection reaches the
// caller as tracking.ErrAlreadyDelivered with the history untouched.
func (h *AddPackageUpdateCommandHandler) Handle(
	ctx context.Context, cmd AddPackageUpdateCommand,
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

	update, err := pkg.AddUpdate(cmd.Status(), cmd.Delivered())
	if err != nil {
		return nil, err
	}

	if err = repo.Save(ctx, pkg); err != nil {
		return nil, err
	}

	if pkg.HasSenderInfo() {
		notice := newUpdateNotice(pkg, update)
		if pkg.Delivered() {
			notice = deliveredNotice(pkg)
		}
		if err = uow.NotificationOutbox().Enqueue(ctx, notice); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return pkg, nil
}
