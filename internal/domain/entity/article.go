// Package entity defines the core domain entities and validation logic for the
// application. It contains the fundamental business objects such as Article,
// Source and Topic, along with their validation rules and domain-specific errors.
package entity

import "time"

// Article represents a news article ingested into the system.
// ID, CreatedAt and UpdatedAt are assigned by the store on creation and are
// never set by callers. Link is globally unique among articles; the store's
// uniqueness constraint on it is the duplicate-detection contract.
type Article struct {
	ID          int64
	SourceID    int64
	Title       string
	Description *string
	Link        string
	Sentiment   *Sentiment
	PublishedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// TopicIDs holds the topics bound to the article at creation time.
	// Populated on creation and on reads that join the association table.
	TopicIDs []int64
}
