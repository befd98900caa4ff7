package topic

import (
	"net/http"

	"newswire/internal/handler/http/auth"
	topicUC "newswire/internal/usecase/topic"
)

// Register wires the topic routes into the mux. Reads are open;
// registration requires authentication.
func Register(mux *http.ServeMux, svc *topicUC.Service) {
	mux.Handle("GET /topics", ListHandler{Svc: svc})
	mux.Handle("GET /topics/", GetHandler{Svc: svc})

	mux.Handle("POST /topics", auth.Authz(CreateHandler{Svc: svc}))
}
