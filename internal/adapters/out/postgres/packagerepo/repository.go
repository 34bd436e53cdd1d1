package packagerepo

import (
	"context"
	"errors"

	"packagetracker/internal/core/domain/model/kernel"
	"packagetracker/internal/core/domain/model/tracking"
	"packagetracker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPackageRepository implements PackageRepository using GORM.
type GormPackageRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(code kernel.TrackingCode, aggregate any)
}

// NewGormPackageRepository creates a new GORM package repository.
func NewGormPackageRepository(db *gorm.DB, tracker aggregateTracker) *GormPackageRepository {
	return &GormPackageRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new package and assigns the generated identities back onto
// the aggregate and any nested updates.
func (r *GormPackageRepository) Add(ctx context.Context, aggregate *tracking.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}
	for i, u := range aggregate.Updates() {
		if err := u.AssignID(dto.Updates[i].ID); err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.Code(), aggregate)
	return nil
}

// Save persists all mutations to an existing package and its updates.
// The stored version is compared in the WHERE clause; zero affected rows
// means another transaction won the race and nothing is written.
func (r *GormPackageRepository) Save(ctx context.Context, aggregate *tracking.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Map form so zero values like delivered=false are written too.
	result := r.db.WithContext(ctx).Model(&PackageDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"title":        dto.Title,
			"weight":       dto.Weight,
			"sender_name":  dto.SenderName,
			"sender_email": dto.SenderEmail,
			"delivered":    dto.Delivered,
			"version":      dto.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConcurrentModificationError("package", aggregate.Code().String())
	}

	for _, u := range aggregate.Updates() {
		if err := r.saveUpdate(ctx, u); err != nil {
			return err
		}
	}

	aggregate.CommitVersion()
	r.tracker.TrackAggregate(aggregate.Code(), aggregate)
	return nil
}

func (r *GormPackageRepository) saveUpdate(ctx context.Context, u *tracking.PackageUpdate) error {
	dto := updateFromDomain(u)
	if dto.ID == 0 {
		if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
			return err
		}
		return u.AssignID(dto.ID)
	}

	return r.db.WithContext(ctx).Model(&PackageUpdateDTO{}).
		Where("id = ?", dto.ID).
		Update("status", dto.Status).Error
}

// FindByCode retrieves a package by its public tracking code, history
// included in insertion order.
func (r *GormPackageRepository) FindByCode(ctx context.Context, code kernel.TrackingCode) (*tracking.Package, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dto PackageDTO
	err := r.db.WithContext(ctx).
		Preload("Updates", func(db *gorm.DB) *gorm.DB {
			return db.Order("package_updates.id")
		}).
		First(&dto, "code = ?", code.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("code", code.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindAll retrieves every package without loading histories.
func (r *GormPackageRepository) FindAll(ctx context.Context) ([]*tracking.Package, error) {
	var dtos []PackageDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	packages := make([]*tracking.Package, 0, len(dtos))
	for _, dto := range dtos {
		pkg, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		packages = append(packages, pkg)
	}

	return packages, nil
}

// FindUpdateByID resolves an update within the given package's own loaded
// history. An id belonging to a different package never resolves here.
func (r *GormPackageRepository) FindUpdateByID(pkg *tracking.Package, updateID int64) (*tracking.PackageUpdate, error) {
	update, ok := pkg.UpdateByID(updateID)
	if !ok {
		return nil, errs.NewObjectNotFoundError("updateId", updateID)
	}
	return update, nil
}

// Remove deletes a package and all its updates. Children go first to
// satisfy the restricting foreign key.
func (r *GormPackageRepository) Remove(ctx context.Context, aggregate *tracking.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).
		Where("package_id = ?", aggregate.ID()).
		Delete(&PackageUpdateDTO{}).Error
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("id = ?", aggregate.ID()).
		Delete(&PackageDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("code", aggregate.Code().String())
	}

	return nil
}
