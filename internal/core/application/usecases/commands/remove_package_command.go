package commands

import (
	"errors"

	"packagetracker/internal/core/domain/model/kernel"
	"packagetracker/internal/pkg/guard"
)

var ErrRemovePackageCommandIsNotConstructed = errors.New(
	"RemovePackageCommand must be created via NewRemovePackageCommand constructor",
)

// RemovePackageCommand represents a request to delete a package together
// with its whole update history.
type RemovePackageCommand struct { //nolint:recvcheck //using for validation
	code kernel.TrackingCode

	guard guard.ConstructorGuard
}

// NewRemovePackageCommand creates a command to remove a package.
func NewRemovePackageCommand(code kernel.TrackingCode) (RemovePackageCommand, error) {
	cmd := RemovePackageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCode(code); err != nil {
		return RemovePackageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemovePackageCommand) Validate() error {
	return c.guard.Validate(ErrRemovePackageCommandIsNotConstructed)
}

// Code returns the tracking code of the package to remove.
func (c RemovePackageCommand) Code() kernel.TrackingCode {
	return c.code
}

func (c *RemovePackageCommand) setCode(code kernel.TrackingCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	c.code = code
	return nil
}
