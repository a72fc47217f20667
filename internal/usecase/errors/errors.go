package errors

import "errors"

// Note errors
var (
	ErrNoteNotFound = errors.New("note not found")
)

// View errors
var (
	ErrViewNotFound  = errors.New("view not found")
	ErrViewKind      = errors.New("view has a different kind")
	ErrInvalidEvent  = errors.New("invalid view event")
	ErrStateEncoding = errors.New("failed to encode view state")
)
