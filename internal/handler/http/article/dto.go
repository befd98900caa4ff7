// Package article provides HTTP handlers for article endpoints: ingestion
// via POST and the read surface (single article, paginated list).
package article

import (
	"time"

	"newswire/internal/domain/entity"
)

// DTO is the external JSON representation of an article. Description and
// Sentiment are pointers without omitempty so absent values serialize as
// explicit nulls rather than disappearing; topic_ids is always an array,
// never null. Timestamps are normalized to UTC.
type DTO struct {
	ID          int64     `json:"id"`
	SourceID    int64     `json:"source_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Link        string    `json:"link"`
	Sentiment   *string   `json:"sentiment"`
	PublishedAt time.Time `json:"published_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	TopicIDs    []int64   `json:"topic_ids"`
}

// FromEntity maps a domain article to its external representation.
func FromEntity(a *entity.Article) DTO {
	var sentiment *string
	if a.Sentiment != nil {
		s := a.Sentiment.String()
		sentiment = &s
	}

	topicIDs := a.TopicIDs
	if topicIDs == nil {
		topicIDs = []int64{}
	}

	return DTO{
		ID:          a.ID,
		SourceID:    a.SourceID,
		Title:       a.Title,
		Description: a.Description,
		Link:        a.Link,
		Sentiment:   sentiment,
		PublishedAt: a.PublishedAt.UTC(),
		CreatedAt:   a.CreatedAt.UTC(),
		UpdatedAt:   a.UpdatedAt.UTC(),
		TopicIDs:    topicIDs,
	}
}
