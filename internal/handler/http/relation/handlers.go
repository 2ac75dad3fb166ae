// Package relation provides HTTP handlers for per-user article relations.
// The same handler set serves both favorites and bookmarks: each route is
// registered against an interaction service fixed to one relation kind.
package relation

import (
	"errors"
	"net/http"
	"time"

	"github.com/maviles7/dailydose/internal/handler/http/auth"
	"github.com/maviles7/dailydose/internal/handler/http/pathutil"
	"github.com/maviles7/dailydose/internal/handler/http/respond"
	"github.com/maviles7/dailydose/internal/repository"
	interUC "github.com/maviles7/dailydose/internal/usecase/interaction"
)

// DTO represents one related article in a list response.
type DTO struct {
	ID          int64     `json:"id" example:"1"`
	SourceID    int64     `json:"source_id" example:"1"`
	SourceName  string    `json:"source_name" example:"The Daily Wire"`
	Title       string    `json:"title" example:"Markets rally after rate decision"`
	Description string    `json:"description" example:"Stocks climbed on Friday after..."`
	URL         string    `json:"url" example:"https://example.com/article/1"`
	ImageURL    *string   `json:"image_url,omitempty"`
	PublishedAt time.Time `json:"published_at" example:"2026-08-29T10:00:00Z"`
	Category    string    `json:"category" example:"business"`
}

func toDTOs(list []repository.ArticleWithSource) []DTO {
	out := make([]DTO, 0, len(list))
	for _, item := range list {
		out = append(out, DTO{
			ID:          item.Article.ID,
			SourceID:    item.Article.SourceID,
			SourceName:  item.SourceName,
			Title:       item.Article.Title,
			Description: item.Article.Description,
			URL:         item.Article.URL,
			ImageURL:    item.Article.ImageURL,
			PublishedAt: item.Article.PublishedAt,
			Category:    item.Article.Category,
		})
	}
	return out
}

type AddHandler struct{ Svc *interUC.Service }

// ServeHTTP marks an article with the service's relation kind. Adding twice,
// or adding an article that has since disappeared, succeeds without effect.
// @Summary      Add favorite or bookmark
// @Tags         relations
// @Security     BearerAuth
// @Param        id path int true "Article ID"
// @Success      204 "No Content"
// @Failure      400 {string} string "Invalid article ID"
// @Failure      401 {string} string "Authentication required"
// @Failure      500 {string} string "Server error"
// @Router       /articles/{id}/favorite [post]
func (h AddHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserFromContext(r.Context())
	if userID == "" {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}
	id, err := pathutil.ID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Add(r.Context(), userID, id); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, interUC.ErrInvalidArticleID) || errors.Is(err, interUC.ErrMissingUserID) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type RemoveHandler struct{ Svc *interUC.Service }

// ServeHTTP clears the relation if present. Removing an absent pair also
// succeeds.
// @Summary      Remove favorite or bookmark
// @Tags         relations
// @Security     BearerAuth
// @Param        id path int true "Article ID"
// @Success      204 "No Content"
// @Failure      400 {string} string "Invalid article ID"
// @Failure      401 {string} string "Authentication required"
// @Failure      500 {string} string "Server error"
// @Router       /articles/{id}/favorite [delete]
func (h RemoveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserFromContext(r.Context())
	if userID == "" {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}
	id, err := pathutil.ID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Remove(r.Context(), userID, id); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, interUC.ErrInvalidArticleID) || errors.Is(err, interUC.ErrMissingUserID) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type ListHandler struct{ Svc *interUC.Service }

// ServeHTTP returns the caller's related articles, newest relation first.
// @Summary      List favorites or bookmarks
// @Tags         relations
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} DTO "Related articles"
// @Failure      401 {string} string "Authentication required"
// @Failure      500 {string} string "Server error"
// @Router       /favorites [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserFromContext(r.Context())
	if userID == "" {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	list, err := h.Svc.ListByUser(r.Context(), userID)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(list))
}
