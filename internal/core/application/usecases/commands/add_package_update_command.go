package commands

import (
	"errors"

	"packagetracker/internal/core/domain/model/kernel"
	"packagetracker/internal/pkg/guard"
)

var (
	ErrAddPackageUpdateCommandIsNotConstructed = errors.New(
		"AddPackageUpdateCommand must be created via NewAddPackageUpdateCommand constructor",
	)
	ErrStatusIsRequired = errors.New("status is required")
)

// AddPackageUpdateCommand represents a request to append a status event to
// a package's history. The delivered flag supplied here becomes the
// package's new delivery state.
type AddPackageUpdateCommand struct { //nolint:recvcheck //using for validation
	code      kernel.TrackingCode
	status    string
	delivered bool

	guard guard.ConstructorGuard
}

// NewAddPackageUpdateCommand creates a command to append a status event.
// Validates the tracking code and status presence.
func NewAddPackageUpdateCommand(
	code kernel.TrackingCode, status string, delivered bool,
) (AddPackageUpdateCommand, error) {
	cmd := AddPackageUpdateCommand{
		delivered: delivered,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCode(code),
		cmd.setStatus(status),
	); err != nil {
		return AddPackageUpdateCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddPackageUpdateCommand) Validate() error {
	return c.guard.Validate(ErrAddPackageUpdateCommandIsNotConstructed)
}

// Code returns the tracking code of the package to update.
func (c AddPackageUpdateCommand) Code() kernel.TrackingCode {
	return c.code
}

// Status returns the status text of the new event.
func (c AddPackageUpdateCommand) Status() string {
	return c.status
}

// Delivered returns the delivery flag the package should carry after this
// event.
func (c AddPackageUpdateCommand) Delivered() bool {
	return c.delivered
}

func (c *AddPackageUpdateCommand) setCode(code kernel.TrackingCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	c.code = code
	return nil
}

func (c *AddPackageUpdateCommand) setStatus(status string) error {
	if status == "" {
		return ErrStatusIsRequired
	}
	c.status = status
	return nil
}
