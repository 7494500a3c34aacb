package store

import "errors"

var (
	// ErrNotFound is returned when no record matches the query.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a uniqueness constraint is violated,
	// e.g. a duplicate slug, username or email.
	ErrConflict = errors.New("conflict")
)
