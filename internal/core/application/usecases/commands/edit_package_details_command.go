package commands

import (
	"errors"

	"packagetracker/internal/core/domain/model/kernel"
	"packagetracker/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrEditPackageDetailsCommandIsNotConstructed = errors.New(
	"EditPackageDetailsCommand must be created via NewEditPackageDetailsCommand constructor",
)

// EditPackageDetailsCommand represents a request to overwrite a package's
// title, weight and sender details. The edit is only permitted while the
// package has no updates yet; that guard lives in the aggregate.
type EditPackageDetailsCommand struct { //nolint:recvcheck //using for validation
	code        kernel.TrackingCode
	title       string
	weight      decimal.Decimal
	senderName  string
	senderEmail string

	guard guard.ConstructorGuard
}

// NewEditPackageDetailsCommand creates a command to edit package details.
// Validates the tracking code, title presence and weight positivity.
func NewEditPackageDetailsCommand(
	code kernel.TrackingCode, title string, weight decimal.Decimal, senderName, senderEmail string,
) (EditPackageDetailsCommand, error) {
	cmd := EditPackageDetailsCommand{
		senderName:  senderName,
		senderEmail: senderEmail,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCode(code),
		cmd.setTitle(title),
		cmd.setWeight(weight),
	); err != nil {
		return EditPackageDetailsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditPackageDetailsCommand) Validate() error {
	return c.guard.Validate(ErrEditPackageDetailsCommandIsNotConstructed)
}

// Code returns the tracking code of the package to edit.
func (c EditPackageDetailsCommand) Code() kernel.TrackingCode {
	return c.code
}

// Title returns the replacement label.
func (c EditPackageDetailsCommand) Title() string {
	return c.title
}

// Weight returns the replacement weight.
func (c EditPackageDetailsCommand) Weight() decimal.Decimal {
	return c.weight
}

// SenderName returns the replacement sender name.
func (c EditPackageDetailsCommand) SenderName() string {
	return c.senderName
}

// SenderEmail returns the replacement sender address.
func (c EditPackageDetailsCommand) SenderEmail() string {
	return c.senderEmail
}

func (c *EditPackageDetailsCommand) setCode(code kernel.TrackingCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	c.code = code
	return nil
}

func (c *EditPackageDetailsCommand) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}
	c.title = title
	return nil
}

func (c *EditPackageDetailsCommand) setWeight(weight decimal.Decimal) error {
	if !weight.IsPositive() {
		return ErrWeightIsInvalid
	}
	c.weight = weight
	return nil
}
