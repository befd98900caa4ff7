// Package pathutil provides helpers for working with URL paths: extracting
// numeric IDs and normalizing dynamic paths for metrics labels.
package pathutil

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

// ExtractID parses the integer ID that follows prefix in a URL path.
// Returns ErrInvalidID when the remainder is not a positive integer.
//
// Example:
//
//	id, err := ExtractID("/articles/123", "/articles/")
//	// 123, nil
func ExtractID(path, prefix string) (int64, error) {
	idStr := strings.TrimPrefix(path, prefix)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
