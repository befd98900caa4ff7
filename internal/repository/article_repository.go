// Package repository defines the persistence interfaces consumed by the use
// case layer. Implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"

	"newswire/internal/domain/entity"
)

// ArticleRepository is the storage gateway for articles. Insert,
// InsertTopicLinks and Delete are the step-wise operations used by the
// compensating write path; gateways with multi-statement atomicity should
// additionally implement AtomicArticleCreator.
type ArticleRepository interface {
	// Insert persists a new article row. The store assigns ID, CreatedAt and
	// UpdatedAt; the implementation writes them back into the entity.
	// Returns entity.ErrDuplicateLink when the link uniqueness constraint is
	// violated.
	Insert(ctx context.Context, article *entity.Article) error

	// InsertTopicLinks binds the article to each topic id. Called only after
	// Insert succeeded, with topic ids already validated as existing.
	InsertTopicLinks(ctx context.Context, articleID int64, topicIDs []int64) error

	// Delete removes an article row. Association rows cascade with it.
	// Used as the compensating action when association writes fail.
	Delete(ctx context.Context, id int64) error

	// Get retrieves an article by ID. Returns (nil, nil) if absent.
	Get(ctx context.Context, id int64) (*entity.Article, error)

	// TopicIDs returns the topic ids bound to an article, ascending.
	TopicIDs(ctx context.Context, articleID int64) ([]int64, error)

	// ListPaginated retrieves articles ordered by published_at DESC.
	ListPaginated(ctx context.Context, offset, limit int) ([]*entity.Article, error)

	// Count returns the total number of articles.
	Count(ctx context.Context) (int64, error)
}

// AtomicArticleCreator is implemented by gateways that can insert an article
// and all of its topic associations as a single atomic unit. When available,
// the writer prefers it over the insert/associate/compensate sequence.
type AtomicArticleCreator interface {
	// CreateWithTopics atomically inserts the article row and one association
	// row per topic id. Either everything becomes visible or nothing does.
	// Returns entity.ErrDuplicateLink on a link uniqueness violation.
	CreateWithTopics(ctx context.Context, article *entity.Article, topicIDs []int64) error
}
