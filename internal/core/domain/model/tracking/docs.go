// Package tracking contains the package-tracking domain model.
//
// Package is the aggregate root: it owns the delivery lifecycle and the
// append-only history of PackageUpdate entities. All lifecycle invariants
// are enforced here, behind the aggregate's methods:
//
//   - title, weight and sender details may change only while the history
//     is empty
//   - no update may be appended once the package is delivered
//   - history keeps insertion order; entries are never reordered or
//     removed individually
//
// PackageUpdate is a child entity reachable only through its owning
// Package. Its status text is the one field that stays editable after
// creation; the event timestamp is fixed at append time.
package tracking
