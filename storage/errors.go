package storage

import "errors"

// Common storage errors.
var (
	// ErrNotFound is returned when a license record is not found.
	ErrNotFound = errors.New("license not found")

	// ErrMissingID is returned when a record has no license ID to key by.
	ErrMissingID = errors.New("license ID is required")
)
