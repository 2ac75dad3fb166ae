package comment

import (
	"net/http"

	comUC "github.com/maviles7/dailydose/internal/usecase/comment"
)

// Register wires the comment endpoints onto the mux.
func Register(mux *http.ServeMux, svc *comUC.Service) {
	mux.Handle("GET /articles/{id}/comments", ListHandler{svc})
	mux.Handle("POST /articles/{id}/comments", CreateHandler{svc})
	mux.Handle("PUT /comments/{id}", UpdateHandler{svc})
	mux.Handle("DELETE /comments/{id}", DeleteHandler{svc})
}
