package article

import (
	"errors"
	"net/http"

	"github.com/maviles7/dailydose/internal/handler/http/pathutil"
	"github.com/maviles7/dailydose/internal/handler/http/respond"
	artUC "github.com/maviles7/dailydose/internal/usecase/article"
)

type GetHandler struct{ Svc *artUC.Service }

// ServeHTTP returns one article with its source name and comment count.
// @Summary      Get article detail
// @Description  Returns the article with the given ID, including its source name and comment count.
// @Tags         articles
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Article ID"
// @Success      200 {object} DetailDTO "Article detail"
// @Failure      400 {string} string "Invalid article ID"
// @Failure      401 {string} string "Authentication required"
// @Failure      404 {string} string "Article not found"
// @Failure      500 {string} string "Server error"
// @Router       /articles/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	detail, err := h.Svc.GetDetail(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, artUC.ErrInvalidArticleID) {
			code = http.StatusBadRequest
		} else if errors.Is(err, artUC.ErrArticleNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	out := DetailDTO{
		DTO:          toDTO(detail.Article, detail.SourceName),
		CommentCount: detail.CommentCount,
	}
	respond.JSON(w, http.StatusOK, out)
}
