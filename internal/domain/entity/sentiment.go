package entity

import "fmt"

// Sentiment is the classification attached to an article by an upstream
// producer. It is stored as-is; this service never computes it.
type Sentiment string

// The closed set of sentiment values accepted on ingestion.
const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// ParseSentiment converts a raw string into a Sentiment.
// Returns a ValidationError for values outside the closed set.
func ParseSentiment(raw string) (Sentiment, error) {
	switch s := Sentiment(raw); s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return s, nil
	default:
		return "", &ValidationError{
			Field:   "sentiment",
			Message: fmt.Sprintf("must be one of positive, neutral, negative (got %q)", raw),
		}
	}
}

// String returns the stored representation of the sentiment.
func (s Sentiment) String() string { return string(s) }

// Valid reports whether the sentiment belongs to the closed set.
func (s Sentiment) Valid() bool {
	_, err := ParseSentiment(string(s))
	return err == nil
}
