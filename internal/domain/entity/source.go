package entity

import "time"

// Source represents a pre-registered content origin. Every article references
// exactly one source; sources are immutable from the ingestion path's
// perspective and must exist before any article naming them is created.
type Source struct {
	ID        int64
	Name      string
	FeedURL   string
	Active    bool
	CreatedAt time.Time
}

// Validate validates the Source entity fields.
func (s *Source) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if err := ValidateURL(s.FeedURL); err != nil {
		return err
	}
	return nil
}
