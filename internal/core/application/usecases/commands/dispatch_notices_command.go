package commands

import (
	"errors"

	"packagetracker/internal/pkg/errs"
	"packagetracker/internal/pkg/guard"
)

var ErrDispatchNoticesCommandIsNotConstructed = errors.New(
	"DispatchNoticesCommand must be created via NewDispatchNoticesCommand constructor",
)

// DispatchNoticesCommand represents a single drain pass over the
// notification outbox.
type DispatchNoticesCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

// NewDispatchNoticesCommand creates a command to drain up to batchSize
// pending notices.
func NewDispatchNoticesCommand(batchSize int) (DispatchNoticesCommand, error) {
	cmd := DispatchNoticesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setBatchSize(batchSize); err != nil {
		return DispatchNoticesCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchNoticesCommand) Validate() error {
	return c.guard.Validate(ErrDispatchNoticesCommandIsNotConstructed)
}

// BatchSize returns the maximum number of notices to send in one pass.
func (c DispatchNoticesCommand) BatchSize() int {
	return c.batchSize
}

func (c *DispatchNoticesCommand) setBatchSize(batchSize int) error {
	if batchSize <= 0 {
		return errs.NewValueIsOutOfRangeError("batchSize", batchSize, 1, nil)
	}
	c.batchSize = batchSize
	return nil
}
