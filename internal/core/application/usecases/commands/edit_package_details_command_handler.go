package commands

import (
	"context"

	"packagetracker/internal/core/domain/model/tracking"
)

// EditPackageDetailsCommandHandler handles metadata edits on a package
// that has no updates yet. Enqueues an "updated" notice when sender
// details are present after the edit.
type EditPackageDetailsCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewEditPackageDetailsCommandHandler creates a handler for package detail
// edits.
func NewEditPackageDetailsCommandHandler(uowFactory PackageUoWFactory) EditPackageDetailsCommandHandler {
	return EditPackageDetailsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the package by code, applies the metadata edit, and
// persists. The aggregate rejects the edit with tracking.ErrHasUpdates
// once any update exists; that error reaches the caller untouched so the
// edge can surface the guard's message.
func (h *EditPackageDetailsCommandHandler) Handle(
	ctx context.Context, cmd EditPackageDetailsCommand,
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

	if err = pkg.UpdateMetadata(cmd.Title(), cmd.Weight(), cmd.SenderName(), cmd.SenderEmail()); err != nil {
		return nil, err
	}

	if err = repo.Save(ctx, pkg); err != nil {
		return nil, err
	}

	if pkg.HasSenderInfo() {
		if err = uow.NotificationOutbox().Enqueue(ctx, updatedNotice(pkg)); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return pkg, nil
}
