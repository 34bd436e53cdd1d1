package tracking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"packagetracker/internal/core/domain/model/kernel"
	"packagetracker/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrPackageIsNotConstructed is returned when a Package instance was not
	// created through NewPackage or RestorePackage.
	ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage constructor")

	// ErrAlreadyDelivered rejects an appended update on a delivered package.
	// Delivery closes the history for good.
	ErrAlreadyDelivered = errors.New("the package is already delivered")

	// ErrHasUpdates rejects metadata edits once the history is non-empty.
	ErrHasUpdates = errors.New("the package already has updates and can no longer be changed")
)

// Package represents one tracked shipment. It is the aggregate root that
// manages the delivery lifecycle from registration through status updates
// to final delivery.
//
// Package follows these invariants:
//   - The tracking code is generated at construction and never changes
//   - Title, weight and sender details are mutable only while the update
//     history is empty
//   - No update may be appended once the package is delivered
//   - The update history keeps insertion order and is append-only
//
// The struct uses private fields to ensure encapsulation; all mutation
// goes through validated methods. The numeric identity and the version
// counter are owned by the persistence layer and are zero until the
// aggregate is first saved.
type Package struct {
	// id is the persistence-assigned numeric identity (0 until first save)
	id int64

	// code is the externally visible unique lookup key
	code kernel.TrackingCode

	// title is the human-readable label
	title string

	// weight is the package weight, always positive
	weight decimal.Decimal

	// senderName and senderEmail are optional contact details.
	// Notices are sent only when both are present.
	senderName  string
	senderEmail string

	// delivered marks the terminal state of the lifecycle
	delivered bool

	// postedAt is the registration timestamp
	postedAt time.Time

	// updates is the append-only status history, insertion order
	updates []*PackageUpdate

	// version is the optimistic-concurrency counter compared on save
	version int64

	// isConstructed ensures the package was created via a constructor
	isConstructed bool
}

// NewPackage registers a new package. A fresh tracking code is generated,
// the delivered flag starts false, the posting timestamp is taken from the
// clock and the update history starts empty.
//
// Sender details are optional; when supplied, the email must look like an
// address. Title and a positive weight are required.
func NewPackage(title string, weight decimal.Decimal, senderName, senderEmail string) (*Package, error) {
	p := &Package{
		code:          kernel.NewTrackingCode(),
		postedAt:      time.Now(),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setTitle(title),
		p.setWeight(weight),
		p.setSender(senderName, senderEmail),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePackage reconstructs a package from persistence. All fields,
// including identity, version and the loaded history, come from storage.
// Used exclusively by repository implementations.
func RestorePackage(
	id int64,
	code kernel.TrackingCode,
	title string,
	weight decimal.Decimal,
	senderName, senderEmail string,
	delivered bool,
	postedAt time.Time,
	version int64,
	updates []*PackageUpdate,
) (*Package, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}
	if version < 0 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("version", fmt.Errorf("%d is negative", version))
	}

	p := &Package{
		id:            id,
		code:          code,
		delivered:     delivered,
		postedAt:      postedAt,
		version:       version,
		updates:       updates,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setTitle(title),
		p.setWeight(weight),
		p.setSender(senderName, senderEmail),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Package instance was properly constructed.
// Returns ErrPackageIsNotConstructed otherwise.
func (p *Package) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPackageIsNotConstructed
	}
	return nil
}

// IsEqual compares two packages by tracking code.
func (p *Package) IsEqual(other *Package) bool {
	return other != nil && p.code.IsEqual(other.code)
}

// ID returns the persistence-assigned identity, 0 before the first save.
func (p *Package) ID() int64 {
	return p.id
}

// Code returns the public tracking code.
func (p *Package) Code() kernel.TrackingCode {
	return p.code
}

// Title returns the human-readable label.
func (p *Package) Title() string {
	return p.title
}

// Weight returns the package weight.
func (p *Package) Weight() decimal.Decimal {
	return p.weight
}

// SenderName returns the optional sender name, empty when absent.
func (p *Package) SenderName() string {
	return p.senderName
}

// SenderEmail returns the optional sender address, empty when absent.
func (p *Package) SenderEmail() string {
	return p.senderEmail
}

// Delivered reports whether the package reached its terminal state.
func (p *Package) Delivered() bool {
	return p.delivered
}

// PostedAt returns the registration timestamp.
func (p *Package) PostedAt() time.Time {
	return p.postedAt
}

// Version returns the optimistic-concurrency counter.
func (p *Package) Version() int64 {
	return p.version
}

// Updates returns the status history in insertion order.
// The returned slice is shared with the aggregate; callers must not
// reorder or truncate it.
func (p *Package) Updates() []*PackageUpdate {
	return p.updates
}

// HasSenderInfo reports whether both sender fields are present, which is
// the condition for sending email notices.
func (p *Package) HasSenderInfo() bool {
	return p.senderName != "" && p.senderEmail != ""
}

// AddUpdate appends a status event to the history and overwrites the
// delivered flag with the supplied value.
//
// The guard applies on entry: a package that is already delivered accepts
// no further updates and the history is left unchanged. The flag itself
// may flip either way by this operation; only the entry guard is one-way.
//
// Returns the newly appended update so the caller can reference it, e.g.
// for notification text.
func (p *Package) AddUpdate(status string, delivered bool) (*PackageUpdate, error) {
	if p.delivered {
		return nil, ErrAlreadyDelivered
	}

	update, err := newPackageUpdate(p.id, status)
	if err != nil {
		return nil, err
	}

	p.updates = append(p.updates, update)
	p.delivered = delivered
	return update, nil
}

// UpdateMetadata overwrites title, weight and sender details in place.
// Fails with ErrHasUpdates once the history is non-empty: a package in
// transit is no longer editable.
func (p *Package) UpdateMetadata(title string, weight decimal.Decimal, senderName, senderEmail string) error {
	if len(p.updates) > 0 {
		return ErrHasUpdates
	}

	return errors.Join(
		p.setTitle(title),
		p.setWeight(weight),
		p.setSender(senderName, senderEmail),
	)
}

// SetDelivered unconditionally overwrites the delivered flag. This is the
// correction path used when an existing update is edited without appending
// a new event; the already-delivered guard deliberately does not apply.
func (p *Package) SetDelivered(delivered bool) {
	p.delivered = delivered
}

// UpdateByID looks up an update within this package's own history.
// The lookup is scoped: an id belonging to a different package never
// resolves here.
func (p *Package) UpdateByID(updateID int64) (*PackageUpdate, bool) {
	for _, u := range p.updates {
		if u.ID() == updateID {
			return u, true
		}
	}
	return nil, false
}

// AssignID records the persistence-assigned identity after the first save
// and back-fills the owning reference on any already-appended updates.
// The identity can be set once.
func (p *Package) AssignID(id int64) error {
	if p.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("identity %d already assigned", p.id))
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a valid identity", id))
	}

	p.id = id
	for _, u := range p.updates {
		u.packageID = id
	}
	return nil
}

// CommitVersion advances the optimistic-concurrency counter. Called by the
// repository after a successful save so the in-memory aggregate matches
// the stored row.
func (p *Package) CommitVersion() {
	p.version++
}

func (p *Package) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	p.title = title
	return nil
}

func (p *Package) setWeight(weight decimal.Decimal) error {
	if !weight.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%s is not greater than 0", weight))
	}
	p.weight = weight
	return nil
}

func (p *Package) setSender(name, email string) error {
	if email != "" && !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause("senderEmail", fmt.Errorf("%q is not an email address", email))
	}

	p.senderName = name
	p.senderEmail = email
	return nil
}
