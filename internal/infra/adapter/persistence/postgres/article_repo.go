package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"newswire/internal/domain/entity"
	"newswire/internal/repository"
)

// ArticleRepo implements repository.ArticleRepository and
// repository.AtomicArticleCreator against PostgreSQL. It needs the raw
// *sql.DB because the atomic path opens transactions.
type ArticleRepo struct{ db *sql.DB }

func NewArticleRepo(db *sql.DB) *ArticleRepo {
	return &ArticleRepo{db: db}
}

const articleColumns = `id, source_id, title, description, link, sentiment, published_at, created_at, updated_at`

func (repo *ArticleRepo) Insert(ctx context.Context, article *entity.Article) error {
	const query = `
INSERT INTO articles
       (source_id, title, description, link, sentiment, published_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, created_at, updated_at`
	err := repo.db.QueryRowContext(ctx, query,
		article.SourceID, article.Title, article.Description,
		article.Link, article.Sentiment, article.PublishedAt,
	).Scan(&article.ID, &article.CreatedAt, &article.UpdatedAt)
	if err != nil {
		if translated := translateError(err); translated == entity.ErrDuplicateLink {
			return translated
		}
		return fmt.Errorf("Insert: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) InsertTopicLinks(ctx context.Context, articleID int64, topicIDs []int64) error {
	if len(topicIDs) == 0 {
		return nil
	}
	query, args := buildTopicLinkInsert(articleID, topicIDs)
	if _, err := repo.db.ExecContext(ctx, query, args...); err != nil {
		if isForeignKeyViolation(err) {
			// Topic removed between validation and insertion. The writer
			// rolls the article back and surfaces a storage failure.
			return fmt.Errorf("InsertTopicLinks: topic vanished after validation: %w", err)
		}
		return fmt.Errorf("InsertTopicLinks: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM articles WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: no rows affected")
	}
	return nil
}

// CreateWithTopics inserts the article row and all association rows in a
// single transaction, making the compensating-delete path unnecessary for
// this gateway. A duplicate link aborts with entity.ErrDuplicateLink and
// leaves the pre-existing article untouched.
func (repo *ArticleRepo) CreateWithTopics(ctx context.Context, article *entity.Article, topicIDs []int64) error {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("CreateWithTopics: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const insertQuery = `
INSERT INTO articles
       (source_id, title, description, link, sentiment, published_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, created_at, updated_at`
	err = tx.QueryRowContext(ctx, insertQuery,
		article.SourceID, article.Title, article.Description,
		article.Link, article.Sentiment, article.PublishedAt,
	).Scan(&article.ID, &article.CreatedAt, &article.UpdatedAt)
	if err != nil {
		if translated := translateError(err); translated == entity.ErrDuplicateLink {
			return translated
		}
		return fmt.Errorf("CreateWithTopics: insert article: %w", err)
	}

	if len(topicIDs) > 0 {
		query, args := buildTopicLinkInsert(article.ID, topicIDs)
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("CreateWithTopics: insert topic links: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("CreateWithTopics: commit: %w", err)
	}
	article.TopicIDs = append([]int64(nil), topicIDs...)
	return nil
}

// buildTopicLinkInsert builds a multi-row insert for the association table
// with numbered parameter pairs.
func buildTopicLinkInsert(articleID int64, topicIDs []int64) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`INSERT INTO article_topics (article_id, topic_id) VALUES `)
	args := make([]any, 0, len(topicIDs)*2)
	for i, topicID := range topicIDs {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "($%d, $%d)", len(args)+1, len(args)+2)
		args = append(args, articleID, topicID)
	}
	return sb.String(), args
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	query := `
SELECT ` + articleColumns + `
FROM articles
WHERE id = $1
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
WHERE article_id = $1
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
	query := `
SELECT ` + articleColumns + `
FROM articles
ORDER BY published_at DESC
LIMIT $1 OFFSET $2`
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

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
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

var _ repository.ArticleRepository = (*ArticleRepo)(nil)
var _ repository.AtomicArticleCreator = (*ArticleRepo)(nil)
