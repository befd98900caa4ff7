package repository

import (
	"context"

	"newswire/internal/domain/entity"
)

// TopicRepository is the storage gateway for topics.
type TopicRepository interface {
	// Get retrieves a topic by ID. Returns (nil, nil) if absent.
	Get(ctx context.Context, id int64) (*entity.Topic, error)

	// ExistingIDs checks which of the given topic ids exist, in one batched
	// lookup. The returned map contains an entry for each id that exists.
	ExistingIDs(ctx context.Context, ids []int64) (map[int64]bool, error)

	List(ctx context.Context) ([]*entity.Topic, error)
	Create(ctx context.Context, topic *entity.Topic) error
}
