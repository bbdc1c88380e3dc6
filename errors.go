package typereg

import "errors"

// Registry errors
var (
	// ErrNotFound is returned by Get, Update, and Remove when no item is
	// registered under the normalized key.
	ErrNotFound = errors.New("item not found in registry")

	// ErrDuplicateKey is returned when registering a key whose normalized
	// form is already present. Registration never overwrites; use Update.
	ErrDuplicateKey = errors.New("duplicate registry key")

	// ErrInvalidArgument is returned for an empty key, a nil item, or an
	// item whose type name cannot be derived when a derived key is required.
	ErrInvalidArgument = errors.New("invalid registry argument")
)
