package metrics

import "time"

// Creation outcome labels for RecordArticleIngested.
const (
	OutcomeCreated       = "created"
	OutcomeMissingSource = "missing_source"
	OutcomeMissingTopics = "missing_topics"
	OutcomeDuplicateLink = "duplicate_link"
	OutcomeInvalid       = "invalid"
	OutcomeStorageError  = "storage_error"
)

// RecordArticleIngested records one article creation attempt.
func RecordArticleIngested(outcome string) {
	ArticlesIngestedTotal.WithLabelValues(outcome).Inc()
}

// RecordCompensatingDelete records a rollback of an article row after a
// failed association write. A failed rollback means an orphaned row remains
// and deserves an alert.
func RecordCompensatingDelete(success bool) {
	result := "completed"
	if !success {
		result = "failed"
	}
	CompensatingDeletesTotal.WithLabelValues(result).Inc()
}

// RecordTopicAssociations records association rows written for one article.
func RecordTopicAssociations(count int) {
	TopicAssociationsTotal.Add(float64(count))
}

// RecordDBQuery records the duration of a database query operation.
func RecordDBQuery(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateArticlesTotal updates the article inventory gauge.
func UpdateArticlesTotal(count int64) {
	ArticlesTotal.Set(float64(count))
}

// UpdateSourcesTotal updates the source inventory gauge.
func UpdateSourcesTotal(count int64) {
	SourcesTotal.Set(float64(count))
}

// UpdateTopicsTotal updates the topic inventory gauge.
func UpdateTopicsTotal(count int64) {
	TopicsTotal.Set(float64(count))
}

// SetCircuitBreakerState reports the state of a named circuit breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
