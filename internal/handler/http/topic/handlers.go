package topic

import (
	"encoding/json"
	"errors"
	"net/http"

	"newswire/internal/domain/entity"
	"newswire/internal/handler/http/pathutil"
	"newswire/internal/handler/http/respond"
	topicUC "newswire/internal/usecase/topic"
)

// ListHandler serves all registered topics.
type ListHandler struct{ Svc *topicUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	out := make([]DTO, 0, len(list))
	for _, e := range list {
		out = append(out, FromEntity(e))
	}
	respond.JSON(w, http.StatusOK, out)
}

// GetHandler serves a single topic by ID.
type GetHandler struct{ Svc *topicUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/topics/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	topic, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, topicUC.ErrInvalidTopicID) {
			code = http.StatusBadRequest
		} else if errors.Is(err, topicUC.ErrTopicNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, FromEntity(topic))
}

// CreateHandler registers a new topic.
type CreateHandler struct{ Svc *topicUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	topic, err := h.Svc.Create(r.Context(), topicUC.CreateInput{Name: req.Name})
	if err != nil {
		var verr *entity.ValidationError
		if errors.As(err, &verr) {
			respond.SafeError(w, http.StatusBadRequest, err)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusCreated, FromEntity(topic))
}
