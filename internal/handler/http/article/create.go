package article

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"newswire/internal/domain/entity"
	"newswire/internal/handler/http/respond"
	"newswire/internal/observability/metrics"
	artUC "newswire/internal/usecase/article"
)

// CreateHandler ingests a new article.
type CreateHandler struct{ Svc *artUC.Service }

type createRequest struct {
	SourceID    int64   `json:"source_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Link        string  `json:"link"`
	Sentiment   *string `json:"sentiment"`
	PublishedAt string  `json:"published_at"`
	TopicIDs    []int64 `json:"topic_ids"`
}

// ServeHTTP handles POST /articles. On success it responds 201 with the
// created article. Reference failures (unknown source or topics) map to 422,
// a duplicate link to 409, malformed input to 400.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.RecordArticleIngested(metrics.OutcomeInvalid)
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	if req.PublishedAt == "" {
		metrics.RecordArticleIngested(metrics.OutcomeInvalid)
		respond.SafeError(w, http.StatusBadRequest, errors.New("published_at is required"))
		return
	}
	publishedAt, err := time.Parse(time.RFC3339, req.PublishedAt)
	if err != nil {
		metrics.RecordArticleIngested(metrics.OutcomeInvalid)
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("published_at must be in RFC3339 format"))
		return
	}

	art, err := h.Svc.Create(r.Context(), artUC.CreateInput{
		SourceID:    req.SourceID,
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
		Sentiment:   req.Sentiment,
		PublishedAt: publishedAt,
		TopicIDs:    req.TopicIDs,
	})
	if err != nil {
		respondCreateError(w, err)
		return
	}

	metrics.RecordArticleIngested(metrics.OutcomeCreated)
	respond.JSON(w, http.StatusCreated, FromEntity(art))
}

// respondCreateError maps creation failures to status codes: validation 400,
// broken references 422, duplicate link 409, anything else 500.
func respondCreateError(w http.ResponseWriter, err error) {
	var verr *entity.ValidationError
	if errors.As(err, &verr) {
		metrics.RecordArticleIngested(metrics.OutcomeInvalid)
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if errors.Is(err, artUC.ErrSourceNotFound) {
		metrics.RecordArticleIngested(metrics.OutcomeMissingSource)
		respond.SafeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	var missing *artUC.MissingTopicsError
	if errors.As(err, &missing) {
		metrics.RecordArticleIngested(metrics.OutcomeMissingTopics)
		respond.JSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":             missing.Error(),
			"missing_topic_ids": missing.IDs,
		})
		return
	}

	if errors.Is(err, entity.ErrDuplicateLink) {
		metrics.RecordArticleIngested(metrics.OutcomeDuplicateLink)
		respond.SafeError(w, http.StatusConflict, entity.ErrDuplicateLink)
		return
	}

	metrics.RecordArticleIngested(metrics.OutcomeStorageError)
	respond.SafeError(w, http.StatusInternalServerError, err)
}
