package topic

import (
	"context"
	"fmt"

	"newswire/internal/domain/entity"
	"newswire/internal/repository"
)

// CreateInput represents the input parameters for registering a new topic.
type CreateInput struct {
	Name string
}

// Service provides topic management use cases.
type Service struct {
	Repo repository.TopicRepository
}

// List retrieves all topics from the repository.
func (s *Service) List(ctx context.Context) ([]*entity.Topic, error) {
	topics, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	return topics, nil
}

// Get retrieves a single topic by its ID.
// Returns ErrInvalidTopicID if the ID is not positive.
// Returns ErrTopicNotFound if the topic does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Topic, error) {
	if id <= 0 {
		return nil, ErrInvalidTopicID
	}

	topic, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}
	if topic == nil {
		return nil, ErrTopicNotFound
	}
	return topic, nil
}

// Create registers a new topic with the provided input.
// Returns a ValidationError if the name is empty or too long.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Topic, error) {
	topic := &entity.Topic{Name: in.Name}
	if err := topic.Validate(); err != nil {
		return nil, err
	}

	if err := s.Repo.Create(ctx, topic); err != nil {
		return nil, fmt.Errorf("create topic: %w", err)
	}
	return topic, nil
}
