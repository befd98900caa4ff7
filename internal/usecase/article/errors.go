// Package article implements the ingestion use case for article entities:
// reference validation against sources and topics, the duplicate-link
// contract, and the atomic-or-compensating write of an article together with
// its topic associations.
package article

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidArticleID indicates that the provided article ID is invalid.
	// Article IDs must be positive integers.
	ErrInvalidArticleID = errors.New("invalid article ID")

	// ErrSourceNotFound indicates that the source referenced by a creation
	// request does not exist. Reported before any topic check or write.
	ErrSourceNotFound = errors.New("referenced source does not exist")
)

// MissingTopicsError reports topic references that failed existence
// validation. IDs holds exactly the identifiers that do not exist, in
// ascending order, never the whole requested set.
type MissingTopicsError struct {
	IDs []int64
}

func (e *MissingTopicsError) Error() string {
	return fmt.Sprintf("referenced topics do not exist: %v", e.IDs)
}

// newMissingTopicsError builds the error with a sorted copy of the ids.
func newMissingTopicsError(ids []int64) *MissingTopicsError {
	sorted := make([]int64, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return &MissingTopicsError{IDs: sorted}
}
