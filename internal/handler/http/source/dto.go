// Package source provides HTTP handlers for source registration and listing.
package source

import (
	"time"

	"newswire/internal/domain/entity"
)

// DTO is the external JSON representation of a source.
type DTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	FeedURL   string    `json:"feed_url"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// FromEntity maps a domain source to its external representation.
func FromEntity(s *entity.Source) DTO {
	return DTO{
		ID:        s.ID,
		Name:      s.Name,
		FeedURL:   s.FeedURL,
		Active:    s.Active,
		CreatedAt: s.CreatedAt.UTC(),
	}
}
