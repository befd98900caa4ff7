package source

import (
	"encoding/json"
	"errors"
	"net/http"

	"newswire/internal/domain/entity"
	"newswire/internal/handler/http/respond"
	srcUC "newswire/internal/usecase/source"
)

// CreateHandler registers a new source.
type CreateHandler struct{ Svc *srcUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		FeedURL string `json:"feed_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	src, err := h.Svc.Create(r.Context(), srcUC.CreateInput{
		Name:    req.Name,
		FeedURL: req.FeedURL,
	})
	if err != nil {
		var verr *entity.ValidationError
		if errors.As(err, &verr) {
			respond.SafeError(w, http.StatusBadRequest, err)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusCreated, FromEntity(src))
}
