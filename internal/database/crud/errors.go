package crud

import "errors"

var (
	// ErrNotFound is returned when no row with the requested ID exists.
	ErrNotFound = errors.New("record not found")

	// ErrIDMismatch is returned when the ID carried by an entity
	// disagrees with the ID the caller addressed.
	ErrIDMismatch = errors.New("entity id does not match requested id")

	// ErrStoreUnavailable is returned when the repository has no
	// database handle. Unreachable once the store is initialized.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrWriteConflict is returned when a concurrent writer changed the
	// row between the caller's read and their write. The conflict is
	// classified, not resolved: callers get no retry or merge policy.
	ErrWriteConflict = errors.New("write conflict")
)
