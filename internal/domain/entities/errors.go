package entities

import "errors"

// Domain errors
var (
	ErrEmptyProjectID       = errors.New("project id is empty")
	ErrDuplicateProjectID   = errors.New("duplicate project id")
	ErrInvalidProjectStatus = errors.New("invalid project status")
	ErrUnknownSection       = errors.New("unknown preview section")
)
