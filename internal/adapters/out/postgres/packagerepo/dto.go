// Package packagerepo implements the package repository over GORM,
// mapping between domain aggregates and their relational representation.
package packagerepo

import (
	"time"

	"packagetracker/internal/core/domain/model/kernel"
	"packagetracker/internal/core/domain/model/tracking"

	"github.com/shopspring/decimal"
)

// PackageDTO represents the database structure for persisting package
// aggregates. The tracking code carries a unique index; it is the public
// lookup key while the surrogate id stays internal.
type PackageDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Code        string `gorm:"type:uuid;uniqueIndex"`
	Title       string
	Weight      decimal.Decimal `gorm:"type:decimal(10,2)"`
	SenderName  string
	SenderEmail string
	Delivered   bool
	PostedAt    time.Time
	Version     int64
	Updates     []PackageUpdateDTO `gorm:"foreignKey:PackageID;constraint:OnDelete:RESTRICT"`
}

// TableName overrides GORM's default naming to use "packages".
func (PackageDTO) TableName() string {
	return "packages"
}

// PackageUpdateDTO represents one status event row. The foreign key is
// restricting: the repository deletes children explicitly before the
// package row.
type PackageUpdateDTO struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	PackageID  int64 `gorm:"index"`
	Status     string
	UpdateDate time.Time
}

// TableName overrides GORM's default naming to use "package_updates".
func (PackageUpdateDTO) TableName() string {
	return "package_updates"
}

// fromDomain converts a package aggregate to its database representation,
// nested updates included.
func fromDomain(pkg *tracking.Package) PackageDTO {
	updates := make([]PackageUpdateDTO, 0, len(pkg.Updates()))
	for _, u := range pkg.Updates() {
		updates = append(updates, updateFromDomain(u))
	}

	return PackageDTO{
		ID:          pkg.ID(),
		Code:        pkg.Code().String(),
		Title:       pkg.Title(),
		Weight:      pkg.Weight(),
		SenderName:  pkg.SenderName(),
		SenderEmail: pkg.SenderEmail(),
		Delivered:   pkg.Delivered(),
		PostedAt:    pkg.PostedAt(),
		Version:     pkg.Version(),
		Updates:     updates,
	}
}

func updateFromDomain(u *tracking.PackageUpdate) PackageUpdateDTO {
	return PackageUpdateDTO{
		ID:         u.ID(),
		PackageID:  u.PackageID(),
		Status:     u.Status(),
		UpdateDate: u.UpdateDate(),
	}
}

// toDomain reconstructs the complete aggregate from its database rows
// using the restore constructors.
func toDomain(dto PackageDTO) (*tracking.Package, error) {
	code, err := kernel.TrackingCodeFromString(dto.Code)
	if err != nil {
		return nil, err
	}

	updates := make([]*tracking.PackageUpdate, 0, len(dto.Updates))
	for _, u := range dto.Updates {
		update, updateErr := tracking.RestorePackageUpdate(u.ID, u.PackageID, u.Status, u.UpdateDate)
		if updateErr != nil {
			return nil, updateErr
		}
		updates = append(updates, update)
	}

	return tracking.RestorePackage(
		dto.ID,
		code,
		dto.Title,
		dto.Weight,
		dto.SenderName,
		dto.SenderEmail,
		dto.Delivered,
		dto.PostedAt,
		dto.Version,
		updates,
	)
}
