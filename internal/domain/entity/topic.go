package entity

import "time"

// Topic represents a pre-registered classification tag. Articles may be
// associated with zero or more topics through association rows created as
// part of article ingestion.
type Topic struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// Validate validates the Topic entity fields.
func (t *Topic) Validate() error {
	if t.Name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if len(t.Name) > 100 {
		return &ValidationError{Field: "name", Message: "must not exceed 100 characters"}
	}
	return nil
}
