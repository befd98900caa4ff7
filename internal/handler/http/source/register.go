package source

import (
	"net/http"

	"newswire/internal/handler/http/auth"
	srcUC "newswire/internal/usecase/source"
)

// Register wires the source routes into the mux. Reads are open;
// registration requires authentication.
func Register(mux *http.ServeMux, svc *srcUC.Service) {
	mux.Handle("GET /sources", ListHandler{Svc: svc})
	mux.Handle("GET /sources/", GetHandler{Svc: svc})

	mux.Handle("POST /sources", auth.Authz(CreateHandler{Svc: svc}))
}
