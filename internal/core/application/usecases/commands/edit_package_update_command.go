package commands

import (
	"errors"
	"fmt"

	"packagetracker/internal/core/domain/model/kernel"
	"packagetracker/internal/pkg/errs"
	"packagetracker/internal/pkg/guard"
)

var ErrEditPackageUpdateCommandIsNotConstructed = errors.New(
	"EditPackageUpdateCommand must be created via NewEditPackageUpdateCommand constructor",
)

// EditPackageUpdateCommand represents a correction of an existing status
// event: the status text is overwritten and the package's delivered flag
// is set to the supplied value. No new event is recorded and the original
// event timestamp is preserved.
type EditPackageUpdateCommand struct { //nolint:recvcheck //using for validation
	code      kernel.TrackingCode
	updateID  int64
	status    string
	delivered bool

	guard guard.ConstructorGuard
}

// NewEditPackageUpdateCommand creates a command to correct a status event.
// Validates the tracking code, the update identity and status presence.
func NewEditPackageUpdateCommand(
	code kernel.TrackingCode, updateID int64, status string, delivered bool,
) (EditPackageUpdateCommand, error) {
	cmd := EditPackageUpdateCommand{
		delivered: delivered,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCode(code),
		cmd.setUpdateID(updateID),
		cmd.setStatus(status),
	); err != nil {
		return EditPackageUpdateCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditPackageUpdateCommand) Validate() error {
	return c.guard.Validate(ErrEditPackageUpdateCommandIsNotConstructed)
}

// Code returns the tracking code of the owning package.
func (c EditPackageUpdateCommand) Code() kernel.TrackingCode {
	return c.code
}

// UpdateID returns the identity of the event to correct.
func (c EditPackageUpdateCommand) UpdateID() int64 {
	return c.updateID
}

// Status returns the replacement status text.
func (c EditPackageUpdateCommand) Status() string {
	return c.status
}

// Delivered returns the delivery flag the package should carry after the
// correction.
func (c EditPackageUpdateCommand) Delivered() bool {
	return c.delivered
}

func (c *EditPackageUpdateCommand) setCode(code kernel.TrackingCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	c.code = code
	return nil
}

func (c *EditPackageUpdateCommand) setUpdateID(updateID int64) error {
	if updateID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("updateId", fmt.Errorf("%d is not a valid identity", updateID))
	}
	c.updateID = updateID
	return nil
}

func (c *EditPackageUpdateCommand) setStatus(status string) error {
	if status == "" {
		return ErrStatusIsRequired
	}
	c.status = status
	return nil
}
