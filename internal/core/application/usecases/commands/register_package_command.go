package commands

import (
	"errors"

	"packagetracker/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrRegisterPackageCommandIsNotConstructed = errors.New(
		"RegisterPackageCommand must be created via NewRegisterPackageCommand constructor",
	)
	ErrTitleIsRequired  = errors.New("title is required")
	ErrWeightIsInvalid  = errors.New("weight must be greater than 0")
)

// RegisterPackageCommand represents a request to register a new tracked
// package. Sender details are optional; supplying both enables email
// notices for this package.
//
// Example:
//
//	cmd, err := NewRegisterPackageCommand("Game Box", decimal.NewFromFloat(1.8), "Ada", "ada@x.com")
//	if err != nil {
//	    return fmt.Errorf("invalid package data: %w", err)
//	}
//
//	handler := NewRegisterPackageCommandHandler(uowFactory)
//	pkg, err := handler.Handle(ctx, cmd)
type RegisterPackageCommand struct { //nolint:recvcheck //using for validation
	title       string
	weight      decimal.Decimal
	senderName  string
	senderEmail string

	guard guard.ConstructorGuard
}

// NewRegisterPackageCommand creates a command to register a package.
// Validates that the title is not empty and the weight is positive.
func NewRegisterPackageCommand(
	title string, weight decimal.Decimal, senderName, senderEmail string,
) (RegisterPackageCommand, error) {
	cmd := RegisterPackageCommand{
		senderName:  senderName,
		senderEmail: senderEmail,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTitle(title),
		cmd.setWeight(weight),
	); err != nil {
		return RegisterPackageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterPackageCommand) Validate() error {
	return c.guard.Validate(ErrRegisterPackageCommandIsNotConstructed)
}

// Title returns the package label.
func (c RegisterPackageCommand) Title() string {
	return c.title
}

// Weight returns the package weight.
func (c RegisterPackageCommand) Weight() decimal.Decimal {
	return c.weight
}

// SenderName returns the optional sender name.
func (c RegisterPackageCommand) SenderName() string {
	return c.senderName
}

// SenderEmail returns the optional sender address.
func (c RegisterPackageCommand) SenderEmail() string {
	return c.senderEmail
}

func (c *RegisterPackageCommand) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}
	c.title = title
	return nil
}

func (c *RegisterPackageCommand) setWeight(weight decimal.Decimal) error {
	if !weight.IsPositive() {
		return ErrWeightIsInvalid
	}
	c.weight = weight
	return nil
}
