// Package source provides use cases for managing content sources: the
// pre-registered origins that every ingested article must reference.
package source

import "errors"

// Sentinel errors for source use case operations.
var (
	// ErrSourceNotFound indicates that the requested source was not found.
	ErrSourceNotFound = errors.New("source not found")

	// ErrInvalidSourceID indicates that the provided source ID is invalid.
	// Source IDs must be positive integers.
	ErrInvalidSourceID = errors.New("invalid source ID")
)
