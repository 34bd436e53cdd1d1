package commands

import (
	"context"
)

// RemovePackageCommandHandler deletes a package together with its whole
// update history. Removal sends no notices.
type RemovePackageCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewRemovePackageCommandHandler creates a handler for package removal.
func NewRemovePackageCommandHandler(uowFactory PackageUoWFactory) RemovePackageCommandHandler {
	return RemovePackageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the package by code and removes it. The repository deletes
// the history rows before the package row inside the same transaction.
func (h *RemovePackageCommandHandler) Handle(ctx context.Context, cmd RemovePackageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PackageRepository()
	pkg, err := repo.FindByCode(ctx, cmd.Code())
	if err != nil {
		return err
	}

	if err = repo.Remove(ctx, pkg); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
