package http

import (
	"time"

	"packagetracker/internal/core/application/usecases/queries"
	"packagetracker/internal/core/domain/model/tracking"

	"github.com/shopspring/decimal"
)

// Error is the JSON shape of a failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RegisterPackageRequest is the body of POST /api/v1/packages.
type RegisterPackageRequest struct {
	Title       string          `json:"title"`
	Weight      decimal.Decimal `json:"weight"`
	SenderName  string          `json:"senderName"`
	SenderEmail string          `json:"senderEmail"`
}

// EditPackageRequest is the body of PUT /api/v1/packages/:code.
type EditPackageRequest struct {
	Title       string          `json:"title"`
	Weight      decimal.Decimal `json:"weight"`
	SenderName  string          `json:"senderName"`
	SenderEmail string          `json:"senderEmail"`
}

// AddPackageUpdateRequest is the body of POST /api/v1/packages/:code/updates.
type AddPackageUpdateRequest struct {
	Status    string `json:"status"`
	Delivered bool   `json:"delivered"`
}

// EditPackageUpdateRequest is the body of
// PUT /api/v1/packages/:code/updates/:updateId.
type EditPackageUpdateRequest struct {
	Status    string `json:"status"`
	Delivered bool   `json:"delivered"`
}

// PackageSummary is one row of GET /api/v1/packages.
type PackageSummary struct {
	Code        string          `json:"code"`
	Title       string          `json:"title"`
	Weight      decimal.Decimal `json:"weight"`
	SenderName  string          `json:"senderName,omitempty"`
	SenderEmail string          `json:"senderEmail,omitempty"`
	Delivered   bool            `json:"delivered"`
	PostedAt    time.Time       `json:"postedAt"`
	UpdateCount int             `json:"updateCount"`
}

// Package is the detail shape returned by mutations and the detail view.
type Package struct {
	Code        string          `json:"code"`
	Title       string          `json:"title"`
	Weight      decimal.Decimal `json:"weight"`
	SenderName  string          `json:"senderName,omitempty"`
	SenderEmail string          `json:"senderEmail,omitempty"`
	Delivered   bool            `json:"delivered"`
	PostedAt    time.Time       `json:"postedAt"`
	Updates     []PackageUpdate `json:"updates"`
}

// PackageUpdate is one status event in the detail shape.
type PackageUpdate struct {
	ID         int64     `json:"id"`
	Status     string    `json:"status"`
	UpdateDate time.Time `json:"updateDate"`
}

func summaryFromQuery(r queries.GetAllPackagesQueryResponse) PackageSummary {
	return PackageSummary{
		Code:        r.Code,
		Title:       r.Title,
		Weight:      r.Weight,
		SenderName:  r.SenderName,
		SenderEmail: r.SenderEmail,
		Delivered:   r.Delivered,
		PostedAt:    r.PostedAt,
		UpdateCount: r.UpdateCount,
	}
}

func packageFromQuery(r queries.GetPackageByCodeQueryResponse) Package {
	updates := make([]PackageUpdate, 0, len(r.Updates))
	for _, u := range r.Updates {
		updates = append(updates, PackageUpdate{
			ID:         u.ID,
			Status:     u.Status,
			UpdateDate: u.UpdateDate,
		})
	}

	return Package{
		Code:        r.Code,
		Title:       r.Title,
		Weight:      r.Weight,
		SenderName:  r.SenderName,
		SenderEmail: r.SenderEmail,
		Delivered:   r.Delivered,
		PostedAt:    r.PostedAt,
		Updates:     updates,
	}
}

func packageFromDomain(pkg *tracking.Package) Package {
	updates := make([]PackageUpdate, 0, len(pkg.Updates()))
	for _, u := range pkg.Updates() {
		updates = append(updates, PackageUpdate{
			ID:         u.ID(),
			Status:     u.Status(),
			UpdateDate: u.UpdateDate(),
		})
	}

	return Package{
		Code:        pkg.Code().String(),
		Title:       pkg.Title(),
		Weight:      pkg.Weight(),
		SenderName:  pkg.SenderName(),
		SenderEmail: pkg.SenderEmail(),
		Delivered:   pkg.Delivered(),
		PostedAt:    pkg.PostedAt(),
		Updates:     updates,
	}
}
