package article

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/maviles7/dailydose/internal/common/pagination"
	"github.com/maviles7/dailydose/internal/handler/http/respond"
	"github.com/maviles7/dailydose/internal/observability/logging"
	artUC "github.com/maviles7/dailydose/internal/usecase/article"
)

type ListHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP returns one page of articles, newest first.
// @Summary      List articles
// @Description  Returns stored articles one page at a time, newest first, each with its source name.
// @Tags         articles
// @Security     BearerAuth
// @Produce      json
// @Param        page   query    int  false  "Page number (1-based)" default(1) minimum(1)
// @Param        limit  query    int  false  "Items per page" default(20) minimum(1) maximum(100)
// @Success      200 {object} pagination.Response[DTO] "Paginated article list"
// @Failure      400 {string} string "Invalid query parameters"
// @Failure      401 {string} string "Authentication required"
// @Failure      500 {string} string "Server error"
// @Router       /articles [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	logger := logging.WithRequestID(ctx, h.Logger)

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		logger.Warn("invalid pagination parameters", "error", err.Error())
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.ListPaginated(ctx, params)
	if err != nil {
		logger.Error("failed to list articles",
			"error", err.Error(),
			"page", params.Page,
			"limit", params.Limit)
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := toDTOs(result.Data)
	logger.Info("article list served",
		"page", params.Page,
		"limit", params.Limit,
		"returned_count", len(dtos),
		"duration_ms", time.Since(start).Milliseconds())

	respond.JSON(w, http.StatusOK, pagination.NewResponse(dtos, result.Pagination))
}
