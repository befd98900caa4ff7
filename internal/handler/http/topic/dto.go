// Package topic provides HTTP handlers for topic registration and listing.
package topic

import (
	"time"

	"newswire/internal/domain/entity"
)

// DTO is the external JSON representation of a topic.
type DTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// FromEntity maps a domain topic to its external representation.
func FromEntity(t *entity.Topic) DTO {
	return DTO{
		ID:        t.ID,
		Name:      t.Name,
		CreatedAt: t.CreatedAt.UTC(),
	}
}
