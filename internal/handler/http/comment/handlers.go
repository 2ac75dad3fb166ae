// Package comment provides HTTP handlers for article comments.
package comment

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/maviles7/dailydose/internal/domain/entity"
	"github.com/maviles7/dailydose/internal/handler/http/auth"
	"github.com/maviles7/dailydose/internal/handler/http/pathutil"
	"github.com/maviles7/dailydose/internal/handler/http/respond"
	comUC "github.com/maviles7/dailydose/internal/usecase/comment"
)

// DTO represents the JSON structure for comment data transfer.
type DTO struct {
	ID        int64     `json:"id" example:"1"`
	ArticleID int64     `json:"article_id" example:"7"`
	UserID    string    `json:"user_id" example:"reader@example.com"`
	Text      string    `json:"text" example:"Great coverage of the rate decision."`
	CreatedAt time.Time `json:"created_at" example:"2026-08-29T12:00:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2026-08-29T12:00:00Z"`
}

func toDTO(c *entity.Comment) DTO {
	return DTO{
		ID:        c.ID,
		ArticleID: c.ArticleID,
		UserID:    c.UserID,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type textRequest struct {
	Text string `json:"text" example:"Great coverage of the rate decision."`
}

func statusFor(err error) int {
	var vErr *entity.ValidationError
	switch {
	case errors.As(err, &vErr),
		errors.Is(err, comUC.ErrInvalidArticleID),
		errors.Is(err, comUC.ErrInvalidCommentID),
		errors.Is(err, comUC.ErrMissingUserID):
		return http.StatusBadRequest
	case errors.Is(err, comUC.ErrArticleNotFound),
		errors.Is(err, comUC.ErrCommentNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

type CreateHandler struct{ Svc *comUC.Service }

// ServeHTTP posts a comment on an article as the authenticated user.
// @Summary      Post comment
// @Tags         comments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Article ID"
// @Param        request body textRequest true "Comment text, at most 250 characters"
// @Success      201 {object} DTO "Created comment"
// @Failure      400 {string} string "Invalid ID or comment text"
// @Failure      401 {string} string "Authentication required"
// @Failure      404 {string} string "Article not found"
// @Failure      500 {string} string "Server error"
// @Router       /articles/{id}/comments [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserFromContext(r.Context())
	if userID == "" {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}
	articleID, err := pathutil.ID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req textRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	c, err := h.Svc.Create(r.Context(), articleID, userID, req.Text)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(c))
}

type ListHandler struct{ Svc *comUC.Service }

// ServeHTTP lists an article's comments, newest first.
// @Summary      List comments
// @Tags         comments
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Article ID"
// @Success      200 {array} DTO "Comments"
// @Failure      400 {string} string "Invalid article ID"
// @Failure      401 {string} string "Authentication required"
// @Failure      500 {string} string "Server error"
// @Router       /articles/{id}/comments [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articleID, err := pathutil.ID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	list, err := h.Svc.ListByArticle(r.Context(), articleID)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	out := make([]DTO, 0, len(list))
	for _, c := range list {
		out = append(out, toDTO(c))
	}
	respond.JSON(w, http.StatusOK, out)
}

type UpdateHandler struct{ Svc *comUC.Service }

// ServeHTTP replaces the comment text. Only the author's edit takes effect;
// anyone else gets the same success response with nothing changed.
// @Summary      Edit comment
// @Tags         comments
// @Security     BearerAuth
// @Accept       json
// @Param        id path int true "Comment ID"
// @Param        request body textRequest true "Replacement text, at most 250 characters"
// @Success      204 "No Content"
// @Failure      400 {string} string "Invalid ID or comment text"
// @Failure      401 {string} string "Authentication required"
// @Failure      404 {string} string "Comment not found"
// @Failure      500 {string} string "Server error"
// @Router       /comments/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	var req textRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	if err := h.Svc.Edit(r.Context(), id, userID, req.Text); err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type DeleteHandler struct{ Svc *comUC.Service }

// ServeHTTP deletes the comment. Only the author's delete takes effect;
// anyone else gets the same success response with the comment intact.
// @Summary      Delete comment
// @Tags         comments
// @Security     BearerAuth
// @Param        id path int true "Comment ID"
// @Success      204 "No Content"
// @Failure      400 {string} string "Invalid comment ID"
// @Failure      401 {string} string "Authentication required"
// @Failure      404 {string} string "Comment not found"
// @Failure      500 {string} string "Server error"
// @Router       /comments/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Svc.Delete(r.Context(), id, userID); err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
