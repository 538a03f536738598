// Package error defines domain-specific errors for the budget dashboard.
package error

import "errors"

// Budget note domain errors.
var (
	// ErrNoteNotFound is returned when a budget note is not found.
	ErrNoteNotFound = errors.New("budget note not found")

	// ErrEmptyNoteTitle is returned when a note is created or updated
	// without a title.
	ErrEmptyNoteTitle = errors.New("note title must not be empty")
)
