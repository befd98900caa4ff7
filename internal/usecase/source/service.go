package source

import (
	"context"
	"fmt"

	"newswire/internal/domain/entity"
	"newswire/internal/repository"
)

// CreateInput represents the input parameters for registering a new source.
type CreateInput struct {
	Name    string
	FeedURL string
}

// Service provides source management use cases.
// It handles business logic for source operations and delegates persistence
// to the repository.
type Service struct {
	Repo repository.SourceRepository
}

// List retrieves all sources from the repository.
func (s *Service) List(ctx context.Context) ([]*entity.Source, error) {
	sources, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	return sources, nil
}

// Get retrieves a single source by its ID.
// Returns ErrInvalidSourceID if the ID is not positive.
// Returns ErrSourceNotFound if the source does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Source, error) {
	if id <= 0 {
		return nil, ErrInvalidSourceID
	}

	src, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get source: %w", err)
	}
	if src == nil {
		return nil, ErrSourceNotFound
	}
	return src, nil
}

// Create registers a new source with the provided input.
// New sources start active. Returns a ValidationError if any input field is
// invalid.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Source, error) {
	src := &entity.Source{
		Name:    in.Name,
		FeedURL: in.FeedURL,
		Active:  true,
	}
	if err := src.Validate(); err != nil {
		return nil, err
	}

	if err := s.Repo.Create(ctx, src); err != nil {
		return nil, fmt.Errorf("create source: %w", err)
	}
	return src, nil
}
