package source

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/maviles7/dailydose/internal/domain/entity"
	srcUC "github.com/maviles7/dailydose/internal/usecase/source"
)

type stubSourceRepo struct {
	sources map[int64]*entity.Source
}

func (s *stubSourceRepo) GetOrCreate(ctx context.Context, name string) (*entity.Source, error) {
	return nil, nil
}

func (s *stubSourceRepo) Get(ctx context.Context, id int64) (*entity.Source, error) {
	return s.sources[id], nil
}

func (s *stubSourceRepo) List(ctx context.Context) ([]*entity.Source, error) {
	out := make([]*entity.Source, 0, len(s.sources))
	for _, src := range s.sources {
		out = append(out, src)
	}
	return out, nil
}

func newTestMux(repo *stubSourceRepo) *http.ServeMux {
	mux := http.NewServeMux()
	Register(mux, &srcUC.Service{Repo: repo})
	return mux
}

func TestListHandler(t *testing.T) {
	repo := &stubSourceRepo{sources: map[int64]*entity.Source{
		1: {ID: 1, Name: "Example Wire", CreatedAt: time.Now()},
		2: {ID: 2, Name: "Daily Bugle", CreatedAt: time.Now()},
	}}
	mux := newTestMux(repo)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/sources", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var out []DTO
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(out) != 2 {
		t.Errorf("expected 2 sources, got %d", len(out))
	}
}

func TestGetHandler(t *testing.T) {
	repo := &stubSourceRepo{sources: map[int64]*entity.Source{
		1: {ID: 1, Name: "Example Wire", CreatedAt: time.Now()},
	}}
	mux := newTestMux(repo)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/sources/1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var out DTO
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Name != "Example Wire" {
		t.Errorf("unexpected source: %+v", out)
	}
}

func TestGetHandler_NotFound(t *testing.T) {
	mux := newTestMux(&stubSourceRepo{sources: map[int64]*entity.Source{}})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/sources/9", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestGetHandler_InvalidID(t *testing.T) {
	mux := newTestMux(&stubSourceRepo{sources: map[int64]*entity.Source{}})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/sources/abc", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
