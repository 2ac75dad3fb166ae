package article

import (
	"errors"
	"net/http"
	"strings"

	"github.com/maviles7/dailydose/internal/handler/http/respond"
	artUC "github.com/maviles7/dailydose/internal/usecase/article"
)

// maxKeywordLength caps user input passed into the search query.
const maxKeywordLength = 100

type SearchHandler struct{ Svc *artUC.Service }

// ServeHTTP searches articles by keyword.
// @Summary      Search articles
// @Description  Searches article titles and descriptions for the given keyword, case-insensitive.
// @Tags         articles
// @Security     BearerAuth
// @Produce      json
// @Param        keyword query string true "Search keyword"
// @Success      200 {array} DTO "Matching articles"
// @Failure      400 {string} string "Missing or invalid keyword"
// @Failure      401 {string} string "Authentication required"
// @Failure      500 {string} string "Server error"
// @Router       /articles/search [get]
func (h SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	kw := strings.TrimSpace(r.URL.Query().Get("keyword"))
	if kw == "" {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("keyword query param required"))
		return
	}
	if len(kw) > maxKeywordLength {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("keyword too long"))
		return
	}

	list, err := h.Svc.Search(r.Context(), kw)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]DTO, 0, len(list))
	for _, a := range list {
		out = append(out, toDTO(a, ""))
	}
	respond.JSON(w, http.StatusOK, out)
}
