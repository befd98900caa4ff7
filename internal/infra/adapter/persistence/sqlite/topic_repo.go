package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"newswire/internal/domain/entity"
	"newswire/internal/repository"
)

// TopicRepo implements repository.TopicRepository using SQLite.
type TopicRepo struct{ db *sql.DB }

// NewTopicRepo creates a new SQLite-backed topic repository.
func NewTopicRepo(db *sql.DB) repository.TopicRepository {
	return &TopicRepo{db: db}
}

func (repo *TopicRepo) Get(ctx context.Context, id int64) (*entity.Topic, error) {
	const query = `
SELECT id, name, created_at
FROM topics
WHERE id = ?
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

// ExistingIDs checks topic existence in one batched query. SQLite has no
// array binding, so the IN list is expanded with one placeholder per id.
func (repo *TopicRepo) ExistingIDs(ctx context.Context, ids []int64) (map[int64]bool, error) {
	if len(ids) == 0 {
		return make(map[int64]bool), nil
	}

	placeholders := strings.Repeat("?, ", len(ids)-1) + "?"
	query := `SELECT id FROM topics WHERE id IN (` + placeholders + `)`
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := repo.db.QueryContext(ctx, query, args...)
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
	return result, rows.Err()
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
INSERT INTO topics (name, created_at)
VALUES (?, ?)`
	now := time.Now().UTC()
	res, err := repo.db.ExecContext(ctx, query, topic.Name, now)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("Create: LastInsertId: %w", err)
	}
	topic.ID = id
	topic.CreatedAt = now
	return nil
}
