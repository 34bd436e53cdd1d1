package commands_test

import (
	"errors"
	"testing"
	"time"

	"packagetracker/internal/core/application/usecases/commands"
	"packagetracker/internal/core/domain/model/kernel"
	"packagetracker/internal/core/domain/model/tracking"
	"packagetracker/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoredPackage(t *testing.T, code kernel.TrackingCode, updates []*tracking.PackageUpdate) *tracking.Package {
	t.Helper()
	pkg, err := tracking.RestorePackage(
		1, code, "Books", decimal.NewFromFloat(2.5),
		"Ann", "ann@example.com", false, time.Now().UTC(), 1, updates)
	require.NoError(t, err)
	return pkg
}

func TestEditPackageDetailsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	code := kernel.NewTrackingCode()
	cmd, _ := commands.NewEditPackageDetailsCommand(code, "Vinyl", decimal.NewFromInt(3), "Ann", "ann@example.com")
	pkg := restoredPackage(t, code, nil)

	repo := new(MockPackageRepository)
	outbox := new(MockNotificationOutbox)
	uow := new(MockPackageUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackageRepository").Return(repo).Once(),
		repo.On("FindByCode", mock.Anything, code).Return(pkg, nil).Once(),
		repo.On("Save", mock.Anything, pkg).Return(nil).Once(),
		uow.On("NotificationOutbox").Return(outbox).Once(),
		outbox.On("Enqueue", mock.Anything, mock.AnythingOfType("ports.Message")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackageUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewEditPackageDetailsCommandHandler(factory)
	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, "Vinyl", got.Title())
	require.True(t, decimal.NewFromInt(3).Equal(got.Weight()))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestEditPackageDetailsCommandHandler_Handle_UpdatedNoticeContent(t *testing.T) {
	ctx := t.Context()
	code := kernel.NewTrackingCode()
	cmd, _ := commands.NewEditPackageDetailsCommand(code, "Vinyl", decimal.NewFromInt(3), "Ann", "ann@example.com")
	pkg := restoredPackage(t, code, nil)

	repo := new(MockPackageRepository)
	outbox := new(MockNotificationOutbox)
	uow := new(MockPackageUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("PackageRepository").Return(repo)
	repo.On("FindByCode", mock.Anything, code).Return(pkg, nil)
	repo.On("Save", mock.Anything, pkg).Return(nil)
	uow.On("NotificationOutbox").Return(outbox)
	var captured ports.Message
	outbox.On("Enqueue", mock.Anything, mock.AnythingOfType("ports.Message")).
		Run(func(args mock.Arguments) { captured = args.Get(1).(ports.Message) }).
		Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockPackageUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewEditPackageDetailsCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, "Your Package was updated", captured.Subject)
	require.Contains(t, captured.Body, "Title: Vinyl")
	require.Equal(t, "Ann", captured.RecipientName)
	require.Equal(t, "ann@example.com", captured.RecipientEmail)
}

func TestEditPackageDetailsCommandHandler_Handle_RejectedWhenHistoryExists(t *testing.T) {
	ctx := t.Context()
	code := kernel.NewTrackingCode()
	cmd, _ := commands.NewEditPackageDetailsCommand(code, "Vinyl", decimal.NewFromInt(3), "", "")

	update, err := tracking.RestorePackageUpdate(10, 1, "In transit", time.Now().UTC())
	require.NoError(t, err)
	pkg := restoredPackage(t, code, []*tracking.PackageUpdate{update})

	repo := new(MockPackageRepository)
	uow := new(MockPackageUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackageRepository").Return(repo).Once(),
		repo.On("FindByCode", mock.Anything, code).Return(pkg, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackageUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewEditPackageDetailsCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, tracking.ErrHasUpdates)
	repo.AssertNotCalled(t, "Save")
	uow.AssertNotCalled(t, "Commit")
}

func TestEditPackageDetailsCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	code := kernel.NewTrackingCode()
	cmd, _ := commands.NewEditPackageDetailsCommand(code, "Vinyl", decimal.NewFromInt(3), "", "")

	notFound := errors.New("package not found")
	repo := new(MockPackageRepository)
	uow := new(MockPackageUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackageRepository").Return(repo).Once(),
		repo.On("FindByCode", mock.Anything, code).Return(nil, notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackageUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewEditPackageDetailsCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, notFound)
}

func TestEditPackageDetailsCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.EditPackageDetailsCommand{} // not constructed properly
	factory := new(MockPackageUoWFactory)
	h := commands.NewEditPackageDetailsCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrEditPackageDetailsCommandIsNotConstructed)
}
