// Package sqlite provides SQLite implementations of the repository
// interfaces. The article repository implements only the step-wise write
// operations; it deliberately does not implement
// repository.AtomicArticleCreator, so the use case layer falls back to the
// insert/associate/compensate sequence on this gateway.
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

// ArticleRepo implements repository.ArticleRepository using SQLite.
type ArticleRepo struct{ db *sql.DB }

// NewArticleRepo creates a new SQLite-backed article repository.
func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

func (repo *ArticleRepo) Insert(ctx context.Context, article *entity.Article) error {
	const query = `
INSERT INTO articles
       (source_id, title, description, link, sentiment, published_at, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	now := time.Now().UTC()
	res, err := repo.db.ExecContext(ctx, query,
		article.SourceID, article.Title, article.Description,
		article.Link, article.Sentiment, article.PublishedAt, now, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.ErrDuplicateLink
		}
		return fmt.Errorf("Insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("Insert: LastInsertId: %w", err)
	}
	article.ID = id
	article.CreatedAt = now
	article.UpdatedAt = now
	return nil
}

func (repo *ArticleRepo) InsertTopicLinks(ctx context.Context, articleID int64, topicIDs []int64) error {
	if len(topicIDs) == 0 {
		return nil
	}
	var sb strings.Builder
	sb.WriteString(`INSERT INTO article_topics (article_id, topic_id) VALUES `)
	args := make([]any, 0, len(topicIDs)*2)
	for i, topicID := range topicIDs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(?, ?)")
		args = append(args, articleID, topicID)
	}
	if _, err := repo.db.ExecContext(ctx, sb.String(), args...); err != nil {
		return fmt.Errorf("InsertTopicLinks: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM articles WHERE id = ?`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: no rows affected")
	}
	return nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	const query = `
SELECT id, source_id, title, description, link, sentiment, published_at, created_at, updated_at
FROM articles
WHERE id = ?
LIMIT 1`
	article, err := scanArticle(repo.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return article, nil
}

func (repo *ArticleRepo) TopicIDs(ctx context.Context, articleID int64) ([]int64, error) {
	const query = `
SELECT topic_id
FROM article_topics
WHERE article_id = ?
ORDER BY topic_id`
	rows, err := repo.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, fmt.Errorf("TopicIDs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	ids := make([]int64, 0, 8)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("TopicIDs: Scan: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (repo *ArticleRepo) ListPaginated(ctx context.Context, offset, limit int) ([]*entity.Article, error) {
	const query = `
SELECT id, source_id, title, description, link, sentiment, published_at, created_at, updated_at
FROM articles
ORDER BY published_at DESC
LIMIT ? OFFSET ?`
	rows, err := repo.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ListPaginated: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, limit)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("ListPaginated: Scan: %w", err)
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

func (repo *ArticleRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM articles`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

// isUniqueViolation detects SQLite unique constraint errors by message.
// SQLite reports them as "UNIQUE constraint failed: articles.link" and the
// database/sql driver surface gives us no structured code to inspect.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

type rowScanner interface{ Scan(dest ...any) error }

func scanArticle(row rowScanner) (*entity.Article, error) {
	var (
		article     entity.Article
		description sql.NullString
		sentiment   sql.NullString
	)
	err := row.Scan(&article.ID, &article.SourceID, &article.Title,
		&description, &article.Link, &sentiment,
		&article.PublishedAt, &article.CreatedAt, &article.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if description.Valid {
		article.Description = &description.String
	}
	if sentiment.Valid {
		s := entity.Sentiment(sentiment.String)
		article.Sentiment = &s
	}
	return &article, nil
}
