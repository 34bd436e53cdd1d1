package queries

import (
	"errors"
	"time"

	"packagetracker/internal/core/domain/model/kernel"
	"packagetracker/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetPackageByCodeQueryIsNotConstructed = errors.New(
	"GetPackageByCodeQuery must be created via NewGetPackageByCodeQuery constructor",
)

// GetPackageByCodeQuery retrieves one package with its full update
// history by public tracking code.
type GetPackageByCodeQuery struct { //nolint:recvcheck //using for validation
	code kernel.TrackingCode

	guard guard.ConstructorGuard
}

// NewGetPackageByCodeQuery creates a query for the package detail view.
func NewGetPackageByCodeQuery(code kernel.TrackingCode) (GetPackageByCodeQuery, error) {
	q := GetPackageByCodeQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setCode(code); err != nil {
		return GetPackageByCodeQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPackageByCodeQuery) Validate() error {
	return q.guard.Validate(ErrGetPackageByCodeQueryIsNotConstructed)
}

// Code returns the tracking code to look up.
func (q GetPackageByCodeQuery) Code() kernel.TrackingCode {
	return q.code
}

func (q *GetPackageByCodeQuery) setCode(code kernel.TrackingCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	q.code = code
	return nil
}

// GetPackageByCodeQueryResponse is the package detail view: the summary
// fields plus the complete event history in insertion order.
type GetPackageByCodeQueryResponse struct {
	Code        string
	Title       string
	Weight      decimal.Decimal
	SenderName  string
	SenderEmail string
	Delivered   bool
	PostedAt    time.Time
	Updates     []PackageUpdateResponse
}

// PackageUpdateResponse is one status event in the detail view.
type PackageUpdateResponse struct {
	ID         int64
	Status     string
	UpdateDate time.Time
}
