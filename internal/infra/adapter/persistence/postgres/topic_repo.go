package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"newswire/internal/domain/entity"
	"newswire/internal/repository"
)

// TopicRepo implements repository.TopicRepository using PostgreSQL.
type TopicRepo struct{ db dbtx }

func NewTopicRepo(db dbtx) repository.TopicRepository {
	return &TopicRepo{db: db}
}

func (repo *TopicRepo) Get(ctx context.Context, id int64) (*entity.Topic, error) {
	const query = `
SELECT id, name, created_at
FROM topics
WHERE id = $1
LIMIT 1`
	var topic entity.Topic
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&topic.ID, &topic.Name, &topic.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &topic, nil
}

// ExistingIDs checks topic existence in one batched query to avoid an N+1
// round trip per referenced topic.
func (repo *TopicRepo) ExistingIDs(ctx context.Context, ids []int64) (map[int64]bool, error) {
	if len(ids) == 0 {
		return make(map[int64]bool), nil
	}

	const query = `SELECT id FROM topics WHERE id = ANY($1)`
	rows, err := repo.db.QueryContext(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("ExistingIDs: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make(map[int64]bool, len(ids))
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("ExistingIDs: Scan: %w", err)
		}
		result[id] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ExistingIDs: rows.Err: %w", err)
	}

	return result, nil
}

func (repo *TopicRepo) List(ctx context.Context) ([]*entity.Topic, error) {
	const query = `
SELECT id, name, created_at
FROM topics
ORDER BY name`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	topics := make([]*entity.Topic, 0, 50)
	for rows.Next() {
		var topic entity.Topic
		if err := rows.Scan(&topic.ID, &topic.Name, &topic.CreatedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		topics = append(topics, &topic)
	}
	return topics, rows.Err()
}

func (repo *TopicRepo) Create(ctx context.Context, topic *entity.Topic) error {
	const query = `
INSERT INTO topics (name)
VALUES ($1)
RETURNING id, created_at`
	err := repo.db.QueryRowContext(ctx, query, topic.Name).
		Scan(&topic.ID, &topic.CreatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}
