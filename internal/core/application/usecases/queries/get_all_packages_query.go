// Package queries contains read-only operations that bypass the domain
// model and read projection rows straight from the database.
package queries

import (
	"errors"
	"time"

	"packagetracker/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetAllPackagesQueryIsNotConstructed = errors.New(
	"GetAllPackagesQuery must be created via NewGetAllPackagesQuery constructor",
)

// GetAllPackagesQuery retrieves summaries of every registered package.
// Update histories are not loaded; the summary carries a count instead.
type GetAllPackagesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllPackagesQuery creates a parameterless query for the package
// list view.
func NewGetAllPackagesQuery() GetAllPackagesQuery {
	return GetAllPackagesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllPackagesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllPackagesQueryIsNotConstructed)
}

// GetAllPackagesQueryResponse is one row of the package list view.
type GetAllPackagesQueryResponse struct {
	Code        string
	Title       string
	Weight      decimal.Decimal
	SenderName  string
	SenderEmail string
	Delivered   bool
	PostedAt    time.Time
	UpdateCount int
}
