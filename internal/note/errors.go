package note

import "errors"

// Domain-specific errors for the note package.
var (
	ErrEmptyContent      = errors.New("note content is empty")
	ErrMissingCredential = errors.New("completion service credential is not configured")
	ErrNotFound          = errors.New("note not found")
	ErrNoDueDate         = errors.New("note has no due date")
)
