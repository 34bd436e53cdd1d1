package kernel

import (
	"fmt"

	"packagetracker/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrTrackingCodeIsNotConstructed indicates that a TrackingCode was not
// created through one of the constructor functions. This error is returned
// when validating a zero-value code.
var ErrTrackingCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"tracking code must be created via NewTrackingCode or TrackingCodeFromString",
)

// TrackingCode is a value object holding the public lookup key of a package.
// It wraps a random 128-bit token rendered as a canonical UUID string.
//
// The zero value is invalid and must be constructed using NewTrackingCode
// (fresh registration) or TrackingCodeFromString (requests and persistence).
//
// TrackingCode is immutable and safe for concurrent use.
//
// Example usage:
//
//	code := kernel.NewTrackingCode()
//	fmt.Println(code.String()) // e.g. "550e8400-e29b-41d4-a716-446655440000"
type TrackingCode struct {
	value uuid.UUID
}

// NewTrackingCode generates a fresh unique tracking code.
// This is the only way a new code enters the system; codes are never reused.
func NewTrackingCode() TrackingCode {
	return TrackingCode{value: uuid.New()}
}

// TrackingCodeFromString parses a tracking code from its string form,
// typically a path parameter or a database column.
// Returns an error if the string is not a valid code.
func TrackingCodeFromString(s string) (TrackingCode, error) {
	v, err := uuid.Parse(s)
	if err != nil {
		return TrackingCode{}, errs.NewValueIsInvalidErrorWithCause("code", fmt.Errorf("%q is not a valid tracking code", s))
	}

	code := TrackingCode{value: v}
	if err = code.Validate(); err != nil {
		return TrackingCode{}, err
	}
	return code, nil
}

// String returns the canonical string representation of the code.
func (c TrackingCode) String() string {
	return c.value.String()
}

// IsEqual compares two tracking codes for equality.
func (c TrackingCode) IsEqual(other TrackingCode) bool {
	return c.value == other.value
}

// Validate checks that the code was properly constructed.
// Returns ErrTrackingCodeIsNotConstructed for the zero value.
func (c TrackingCode) Validate() error {
	if c.value == uuid.Nil {
		return ErrTrackingCodeIsNotConstructed
	}
	return nil
}
