package article

import (
	"log/slog"
	"net/http"

	"github.com/maviles7/dailydose/internal/common/pagination"
	artUC "github.com/maviles7/dailydose/internal/usecase/article"
)

// Register wires the article read endpoints onto the mux. Authorization is
// applied by the server-wide middleware chain, not per route.
func Register(mux *http.ServeMux, svc *artUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET /articles", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("GET /articles/search", SearchHandler{svc})
	mux.Handle("GET /articles/{id}", GetHandler{svc})
}
