package tracking

import (
	"errors"
	"fmt"
	"time"

	"packagetracker/internal/pkg/errs"
)

// ErrPackageUpdateIsNotConstructed is returned when a PackageUpdate was not
// created through its owning aggregate or RestorePackageUpdate.
var ErrPackageUpdateIsNotConstructed = errors.New(
	"PackageUpdate must be created via Package.AddUpdate or RestorePackageUpdate",
)

// PackageUpdate is one timestamped status event in a package's history.
// It belongs to exactly one package, referenced by numeric identity only;
// the owning Package controls its whole lifetime.
//
// The status text is the single field that remains editable after
// creation. The event timestamp never changes: editing a status is a
// correction of the existing event, not a new one.
type PackageUpdate struct {
	// id is the persistence-assigned identity (0 until first save)
	id int64

	// packageID references the owning package
	packageID int64

	// status is the free-text status description
	status string

	// updateDate is the event timestamp, fixed at append time
	updateDate time.Time

	isConstructed bool
}

// newPackageUpdate creates a status event for the owning package.
// Only Package.AddUpdate calls this; updates never exist on their own.
func newPackageUpdate(packageID int64, status string) (*PackageUpdate, error) {
	if status == "" {
		return nil, errs.NewValueIsRequiredError("status")
	}

	return &PackageUpdate{
		packageID:     packageID,
		status:        status,
		updateDate:    time.Now(),
		isConstructed: true,
	}, nil
}

// RestorePackageUpdate reconstructs a status event from persistence.
// Used exclusively by repository implementations.
func RestorePackageUpdate(id, packageID int64, status string, updateDate time.Time) (*PackageUpdate, error) {
	if status == "" {
		return nil, errs.NewValueIsRequiredError("status")
	}

	return &PackageUpdate{
		id:            id,
		packageID:     packageID,
		status:        status,
		updateDate:    updateDate,
		isConstructed: true,
	}, nil
}

// Validate ensures the update was created through the aggregate or a
// restore constructor.
func (u *PackageUpdate) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrPackageUpdateIsNotConstructed
	}
	return nil
}

// ID returns the persistence-assigned identity, 0 before the first save.
func (u *PackageUpdate) ID() int64 {
	return u.id
}

// PackageID returns the identity of the owning package.
func (u *PackageUpdate) PackageID() int64 {
	return u.packageID
}

// Status returns the status text.
func (u *PackageUpdate) Status() string {
	return u.status
}

// UpdateDate returns the event timestamp.
func (u *PackageUpdate) UpdateDate() time.Time {
	return u.updateDate
}

// EditStatus overwrites the status text. The event timestamp is preserved:
// this is a correction of the recorded event, not a new event.
func (u *PackageUpdate) EditStatus(status string) error {
	if status == "" {
		return errs.NewValueIsRequiredError("status")
	}
	u.status = status
	return nil
}

// AssignID records the persistence-assigned identity after the first save.
// The identity can be set once.
func (u *PackageUpdate) AssignID(id int64) error {
	if u.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("identity %d already assigned", u.id))
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a valid identity", id))
	}

	u.id = id
	return nil
}
