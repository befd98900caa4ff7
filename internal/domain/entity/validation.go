package entity

import (
	"fmt"
	"net/url"
)

// maxURLLength defines the maximum allowed length for links to keep
// pathological inputs out of the store.
const maxURLLength = 2048

// ValidateURL validates the format of an article link or feed URL.
// It checks that the URL is well-formed, uses HTTP/HTTPS scheme, and has a
// valid host. Returns a ValidationError if the URL is invalid or empty.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return &ValidationError{Field: "link", Message: "is required"}
	}

	if len(rawURL) > maxURLLength {
		return &ValidationError{
			Field:   "link",
			Message: fmt.Sprintf("must not exceed %d characters", maxURLLength),
		}
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse URL: %w", err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return &ValidationError{Field: "link", Message: "must use http or https scheme"}
	}

	if parsedURL.Host == "" {
		return &ValidationError{Field: "link", Message: "must have a valid host"}
	}

	return nil
}
