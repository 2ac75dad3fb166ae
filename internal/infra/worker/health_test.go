package worker

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthServer_Probes(t *testing.T) {
	h := NewHealthServer(":0", discardLogger())

	rec := httptest.NewRecorder()
	h.handleLiveness(rec, httptest.NewRequest("GET", "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("liveness: expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.handleReadiness(rec, httptest.NewRequest("GET", "/health/ready", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("readiness before SetReady: expected 503, got %d", rec.Code)
	}

	h.SetReady(true)
	rec = httptest.NewRecorder()
	h.handleReadiness(rec, httptest.NewRequest("GET", "/health/ready", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("readiness after SetReady: expected 200, got %d", rec.Code)
	}

	h.SetReady(false)
	rec = httptest.NewRecorder()
	h.handleReadiness(rec, httptest.NewRequest("GET", "/health/ready", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("readiness after SetReady(false): expected 503, got %d", rec.Code)
	}
}
