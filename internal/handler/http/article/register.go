package article

import (
	"log/slog"
	"net/http"

	"newswire/internal/common/pagination"
	"newswire/internal/handler/http/auth"
	artUC "newswire/internal/usecase/article"
)

// Register wires the article routes into the mux. Reads are open; ingestion
// requires authentication.
func Register(mux *http.ServeMux, svc *artUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET /articles", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("GET /articles/", GetHandler{Svc: svc})

	mux.Handle("POST /articles", auth.Authz(CreateHandler{Svc: svc}))
}
