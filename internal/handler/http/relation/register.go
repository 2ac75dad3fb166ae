package relation

import (
	"net/http"

	interUC "github.com/maviles7/dailydose/internal/usecase/interaction"
)

// Register wires the favorite and bookmark endpoints onto the mux. The two
// services share handler types; only the relation kind behind them differs.
func Register(mux *http.ServeMux, favorites, bookmarks *interUC.Service) {
	mux.Handle("POST /articles/{id}/favorite", AddHandler{favorites})
	mux.Handle("DELETE /articles/{id}/favorite", RemoveHandler{favorites})
	mux.Handle("GET /favorites", ListHandler{favorites})

	mux.Handle("POST /articles/{id}/bookmark", AddHandler{bookmarks})
	mux.Handle("DELETE /articles/{id}/bookmark", RemoveHandler{bookmarks})
	mux.Handle("GET /bookmarks", ListHandler{bookmarks})
}
