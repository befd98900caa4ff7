package repository

import (
	"context"

	"newswire/internal/domain/entity"
)

// SourceRepository is the storage gateway for sources.
type SourceRepository interface {
	// Get retrieves a source by ID. Returns (nil, nil) if absent.
	Get(ctx context.Context, id int64) (*entity.Source, error)

	// Exists reports whether a source with the given ID exists.
	// Used as the cheap precondition check before article writes.
	Exists(ctx context.Context, id int64) (bool, error)

	List(ctx context.Context) ([]*entity.Source, error)
	Create(ctx context.Context, source *entity.Source) error
}
