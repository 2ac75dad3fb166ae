// Package source provides HTTP handlers for the source endpoints. Sources
// are created by ingestion, so the API surface is read-only.
package source

import (
	"errors"
	"net/http"
	"time"

	"github.com/maviles7/dailydose/internal/handler/http/pathutil"
	"github.com/maviles7/dailydose/internal/handler/http/respond"
	srcUC "github.com/maviles7/dailydose/internal/usecase/source"
)

// DTO represents the JSON structure for source data transfer.
type DTO struct {
	ID        int64     `json:"id" example:"1"`
	Name      string    `json:"name" example:"The Daily Wire"`
	CreatedAt time.Time `json:"created_at" example:"2026-08-01T09:00:00Z"`
}

type ListHandler struct{ Svc *srcUC.Service }

// ServeHTTP lists all known sources.
// @Summary      List sources
// @Tags         sources
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} DTO "Sources"
// @Failure      401 {string} string "Authentication required"
// @Failure      500 {string} string "Server error"
// @Router       /sources [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]DTO, 0, len(list))
	for _, s := range list {
		out = append(out, DTO{ID: s.ID, Name: s.Name, CreatedAt: s.CreatedAt})
	}
	respond.JSON(w, http.StatusOK, out)
}

type GetHandler struct{ Svc *srcUC.Service }

// ServeHTTP returns one source by ID.
// @Summary      Get source
// @Tags         sources
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Source ID"
// @Success      200 {object} DTO "Source"
// @Failure      400 {string} string "Invalid source ID"
// @Failure      401 {string} string "Authentication required"
// @Failure      404 {string} string "Source not found"
// @Failure      500 {string} string "Server error"
// @Router       /sources/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	s, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, srcUC.ErrInvalidSourceID) {
			code = http.StatusBadRequest
		} else if errors.Is(err, srcUC.ErrSourceNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}
	respond.JSON(w, http.StatusOK, DTO{ID: s.ID, Name: s.Name, CreatedAt: s.CreatedAt})
}

// Register wires the source read endpoints onto the mux.
func Register(mux *http.ServeMux, svc *srcUC.Service) {
	mux.Handle("GET /sources", ListHandler{svc})
	mux.Handle("GET /sources/{id}", GetHandler{svc})
}
