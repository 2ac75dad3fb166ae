// Package ingestrun provides the manual ingestion trigger endpoint.
// Scheduled runs happen in the worker process; this endpoint lets an
// operator pull headlines on demand without waiting for the next tick.
package ingestrun

import (
	"log/slog"
	"net/http"

	"github.com/maviles7/dailydose/internal/handler/http/respond"
	"github.com/maviles7/dailydose/internal/observability/logging"
	ingUC "github.com/maviles7/dailydose/internal/usecase/ingest"
)

// ResultDTO reports the outcome of a completed ingestion run.
type ResultDTO struct {
	Fetched    int   `json:"fetched" example:"40"`
	Ingested   int64 `json:"ingested" example:"12"`
	Updated    int64 `json:"updated" example:"25"`
	Skipped    int64 `json:"skipped" example:"2"`
	Errors     int64 `json:"errors" example:"1"`
	DurationMs int64 `json:"duration_ms" example:"1843"`
}

type Handler struct {
	Svc    *ingUC.Service
	Logger *slog.Logger
}

// ServeHTTP runs one ingestion cycle synchronously and reports its stats.
// @Summary      Trigger ingestion run
// @Description  Fetches the current top headlines and upserts them. Admin only.
// @Tags         ingest
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} ResultDTO "Run statistics"
// @Failure      401 {string} string "Authentication required"
// @Failure      403 {string} string "Admin role required"
// @Failure      500 {string} string "Run failed"
// @Router       /ingest/run [post]
func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := logging.WithRequestID(r.Context(), h.Logger)
	logger.Info("manual ingestion run requested")

	stats, err := h.Svc.Run(r.Context())
	if err != nil {
		logger.Error("manual ingestion run failed", "error", err.Error())
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := ResultDTO{
		Fetched:    stats.Fetched,
		Ingested:   stats.Ingested,
		Updated:    stats.Updated,
		Skipped:    stats.Skipped,
		Errors:     stats.Errors,
		DurationMs: stats.Duration.Milliseconds(),
	}
	logger.Info("manual ingestion run finished",
		"fetched", out.Fetched,
		"ingested", out.Ingested,
		"updated", out.Updated,
		"errors", out.Errors)
	respond.JSON(w, http.StatusOK, out)
}

// Register wires the manual trigger onto the mux. The authorization table
// limits this route to admins.
func Register(mux *http.ServeMux, svc *ingUC.Service, logger *slog.Logger) {
	mux.Handle("POST /ingest/run", Handler{Svc: svc, Logger: logger})
}
