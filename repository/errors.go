package repository

import "errors"

// Sentinel errors returned by the repositories. Controllers map these to
// HTTP statuses with errors.Is; anything else is an unexpected store failure.
var (
	// ErrNotFound means no row with that id is visible to the caller.
	// Rows owned by another user are reported the same way.
	ErrNotFound = errors.New("record not found")

	// ErrValidation means a required field is missing or a value is
	// outside its allowed set.
	ErrValidation = errors.New("invalid input")

	// ErrParentNotFound means the referenced parent row does not exist
	// or is not owned by the caller.
	ErrParentNotFound = errors.New("parent record not found")
)
