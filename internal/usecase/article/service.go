package article

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"newswire/internal/common/pagination"
	"newswire/internal/domain/entity"
	"newswire/internal/observability/metrics"
	"newswire/internal/repository"
)

// defaultCleanupTimeout bounds the compensating delete issued after a failed
// association write. The delete runs detached from the request context, so it
// needs its own deadline.
const defaultCleanupTimeout = 5 * time.Second

// CreateInput represents the input parameters for ingesting a new article.
// Description and Sentiment are optional; nil means absent. TopicIDs may be
// empty, in which case the article is created with no associations.
type CreateInput struct {
	SourceID    int64
	Title       string
	Description *string
	Link        string
	Sentiment   *string
	PublishedAt time.Time
	TopicIDs    []int64
}

// Service provides article ingestion and query use cases. Writes validate
// every reference before touching the article table and guarantee that an
// article is never visible without its full association set.
type Service struct {
	Articles repository.ArticleRepository
	Sources  repository.SourceRepository
	Topics   repository.TopicRepository

	// CleanupTimeout bounds the compensating delete. Zero means the default.
	CleanupTimeout time.Duration
}

// PaginatedResult represents one page of articles plus pagination metadata.
type PaginatedResult struct {
	Data       []*entity.Article
	Pagination pagination.Metadata
}

// Create ingests a new article with its topic associations.
//
// The sequence is: validate the input shape, confirm the source exists (fail
// fast, topics are not checked for a bad source), confirm every topic exists
// in one batched lookup, then write. When the gateway implements
// repository.AtomicArticleCreator the article and its associations are
// written as one atomic unit; otherwise the article row is inserted first and
// a failure during association writes triggers a compensating delete of that
// row before the error is surfaced. Either way no caller ever observes an
// article with a partial association set.
//
// Returns *entity.ValidationError for malformed input, ErrSourceNotFound or
// *MissingTopicsError for broken references, and an error wrapping
// entity.ErrDuplicateLink when an article with the same link already exists.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Article, error) {
	art, topicIDs, err := buildArticle(in)
	if err != nil {
		return nil, err
	}

	exists, err := s.Sources.Exists(ctx, in.SourceID)
	if err != nil {
		return nil, fmt.Errorf("check source: %w", err)
	}
	if !exists {
		return nil, ErrSourceNotFound
	}

	if len(topicIDs) > 0 {
		found, err := s.Topics.ExistingIDs(ctx, topicIDs)
		if err != nil {
			return nil, fmt.Errorf("check topics: %w", err)
		}
		var missing []int64
		for _, id := range topicIDs {
			if !found[id] {
				missing = append(missing, id)
			}
		}
		if len(missing) > 0 {
			return nil, newMissingTopicsError(missing)
		}
	}

	if atomic, ok := s.Articles.(repository.AtomicArticleCreator); ok {
		if err := atomic.CreateWithTopics(ctx, art, topicIDs); err != nil {
			return nil, fmt.Errorf("create article: %w", err)
		}
		metrics.RecordTopicAssociations(len(topicIDs))
		art.TopicIDs = topicIDs
		return art, nil
	}

	return s.createCompensating(ctx, art, topicIDs)
}

// createCompensating is the write path for gateways without multi-statement
// atomicity: insert the article row, then the association rows, and delete
// the article again if the associations cannot be completed.
func (s *Service) createCompensating(ctx context.Context, art *entity.Article, topicIDs []int64) (*entity.Article, error) {
	if err := s.Articles.Insert(ctx, art); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	if len(topicIDs) > 0 {
		if err := s.Articles.InsertTopicLinks(ctx, art.ID, topicIDs); err != nil {
			s.compensate(ctx, art.ID)
			return nil, fmt.Errorf("associate topics: %w", err)
		}
		metrics.RecordTopicAssociations(len(topicIDs))
	}

	art.TopicIDs = topicIDs
	return art, nil
}

// compensate removes the article row created earlier in the same operation.
// It runs on a context detached from the caller's cancellation: a client that
// abandons the request must not be able to leave a half-created article
// visible to other readers.
func (s *Service) compensate(ctx context.Context, articleID int64) {
	timeout := s.CleanupTimeout
	if timeout <= 0 {
		timeout = defaultCleanupTimeout
	}
	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	if err := s.Articles.Delete(cleanupCtx, articleID); err != nil {
		// The row survives with no associations. Nothing more this layer can
		// do; log loudly so the orphan can be repaired.
		metrics.RecordCompensatingDelete(false)
		slog.Error("compensating delete failed, orphaned article row remains",
			slog.Int64("article_id", articleID),
			slog.String("error", err.Error()))
		return
	}
	metrics.RecordCompensatingDelete(true)
	slog.Warn("rolled back article after failed topic association",
		slog.Int64("article_id", articleID))
}

// buildArticle validates the input shape and assembles the entity. Topic ids
// are deduplicated and sorted so storage writes and error reports are
// deterministic regardless of request order.
func buildArticle(in CreateInput) (*entity.Article, []int64, error) {
	if in.SourceID <= 0 {
		return nil, nil, &entity.ValidationError{Field: "source_id", Message: "must be positive"}
	}
	if in.Title == "" {
		return nil, nil, &entity.ValidationError{Field: "title", Message: "is required"}
	}
	if err := entity.ValidateURL(in.Link); err != nil {
		return nil, nil, err
	}
	if in.PublishedAt.IsZero() {
		return nil, nil, &entity.ValidationError{Field: "published_at", Message: "is required"}
	}

	var sentiment *entity.Sentiment
	if in.Sentiment != nil {
		parsed, err := entity.ParseSentiment(*in.Sentiment)
		if err != nil {
			return nil, nil, err
		}
		sentiment = &parsed
	}

	topicIDs, err := normalizeTopicIDs(in.TopicIDs)
	if err != nil {
		return nil, nil, err
	}

	return &entity.Article{
		SourceID:    in.SourceID,
		Title:       in.Title,
		Description: in.Description,
		Link:        in.Link,
		Sentiment:   sentiment,
		PublishedAt: in.PublishedAt,
	}, topicIDs, nil
}

// normalizeTopicIDs rejects non-positive ids and returns the set deduplicated
// and ascending. A repeated id is treated as a single reference, not an error.
func normalizeTopicIDs(ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return nil, &entity.ValidationError{Field: "topic_ids", Message: "must be positive"}
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// Get retrieves a single article by its ID.
// Returns ErrInvalidArticleID if the ID is not positive.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Article, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}

	art, err := s.Articles.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}
	return art, nil
}

// GetWithTopics retrieves an article by ID with its topic ids populated.
func (s *Service) GetWithTopics(ctx context.Context, id int64) (*entity.Article, error) {
	art, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	topicIDs, err := s.Articles.TopicIDs(ctx, art.ID)
	if err != nil {
		return nil, fmt.Errorf("get article topics: %w", err)
	}
	art.TopicIDs = topicIDs
	return art, nil
}

// ListPaginated retrieves one page of articles ordered by publication time,
// newest first, along with pagination metadata.
func (s *Service) ListPaginated(ctx context.Context, params pagination.Params) (*PaginatedResult, error) {
	total, err := s.Articles.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}

	offset := pagination.CalculateOffset(params.Page, params.Limit)
	articles, err := s.Articles.ListPaginated(ctx, offset, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	return &PaginatedResult{
		Data:       articles,
		Pagination: pagination.NewMetadata(total, params),
	}, nil
}
