package web

import (
	"context"
	"encoding/json"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/hpungsan/facet/internal/config"
	"github.com/hpungsan/facet/internal/content"
	"github.com/hpungsan/facet/internal/db"
	"github.com/hpungsan/facet/internal/ops"
)

var testNow = time.Date(2026, time.September, 21, 12, 0, 0, 0, time.UTC)

func newTestPipeline(t *testing.T, h *Handlers, reg prometheus.Registerer) *ops.Pipeline {
	t.Helper()
	p, err := ops.NewPipeline(ops.PipelineDeps{
		Store:    ops.NewSQLStore(h.db),
		Crystals: &db.CrystalRepo{DB: h.db},
		Metrics:  ops.NewMetrics(reg),
		Now:      func() time.Time { return testNow },
		Config:   h.cfg,
	})
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}
	return p
}

func setupTest(t *testing.T) *Handlers {
	t.Helper()
	tmpDir := t.TempDir()
	database, err := db.Init(tmpDir)
	if err != nil {
		t.Fatalf("db.Init: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	templateSub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		t.Fatalf("template sub-FS: %v", err)
	}

	h := &Handlers{
		db:       database,
		cfg:      config.DefaultConfig(),
		renderer: NewRenderer(templateSub, "test", nil),
		logger:   zap.NewNop(),
	}
	h.pipeline = newTestPipeline(t, h, nil)
	return h
}

// seedPost generates a chakra guide and returns its output.
func seedPost(t *testing.T, h *Handlers, chakra string) *ops.GenerateOutput {
	t.Helper()
	out, err := h.pipeline.GenerateChakraGuide(context.Background(), content.Context{"chakra": chakra})
	if err != nil {
		t.Fatalf("seed post %q: %v", chakra, err)
	}
	return out
}

// --- HandleList ---

func TestHandleList_Default(t *testing.T) {
	h := setupTest(t)
	seedPost(t, h, "Heart")

	req := httptest.NewRequest("GET", "/posts", nil)
	rec := httptest.NewRecorder()
	h.HandleList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Heart Chakra Crystals") {
		t.Error("expected post title in list")
	}
	if !strings.Contains(body, "<!DOCTYPE html>") {
		t.Error("expected full layout")
	}
}

func TestHandleList_JSON(t *testing.T) {
	h := setupTest(t)
	seedPost(t, h, "Crown")
	seedPost(t, h, "Root")

	req := httptest.NewRequest("GET", "/posts?archetype=chakra&limit=1", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	h.HandleList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var out ops.ListOutput
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Items) != 1 || out.Pagination.Total != 2 || !out.Pagination.HasMore {
		t.Errorf("items=%d total=%d has_more=%v", len(out.Items), out.Pagination.Total, out.Pagination.HasMore)
	}
}

func TestHandleList_HTMXRendersContentOnly(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("GET", "/posts", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	h.HandleList(rec, req)

	if strings.Contains(rec.Body.String(), "<!DOCTYPE html>") {
		t.Error("htmx response should not include the layout")
	}
	if !strings.Contains(rec.Body.String(), "No posts yet.") {
		t.Error("expected empty state")
	}
}

func TestHandleList_InvalidStatus(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("GET", "/posts?status=archived", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	h.HandleList(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var payload map[string]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload["error"]["code"] != "INVALID_REQUEST" {
		t.Errorf("code = %v", payload["error"]["code"])
	}
}

// --- HandleDetail ---

func TestHandleDetail_ByIDAndSlug(t *testing.T) {
	h := setupTest(t)
	out := seedPost(t, h, "Throat")

	for _, ref := range []string{out.ID, out.Slug} {
		req := httptest.NewRequest("GET", "/posts/"+ref, nil)
		req.SetPathValue("id", ref)
		rec := httptest.NewRecorder()
		h.HandleDetail(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d, want 200", ref, rec.Code)
		}
		body := rec.Body.String()
		if !strings.Contains(body, out.Slug) {
			t.Errorf("%s: expected slug in detail page", ref)
		}
		if !strings.Contains(body, "<h2") {
			t.Errorf("%s: expected rendered post body", ref)
		}
	}
}

func TestHandleDetail_NotFound(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("GET", "/posts/nope", nil)
	req.SetPathValue("id", "nope")
	rec := httptest.NewRecorder()
	h.HandleDetail(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Back to posts") {
		t.Error("expected error page")
	}
}

// --- HandleGenerate ---

func TestHandleGenerate_Form(t *testing.T) {
	h := setupTest(t)

	form := url.Values{"chakra": {"Solar Plexus"}, "ignored": {"x"}}
	req := httptest.NewRequest("POST", "/generate/chakra_guide", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetPathValue("archetype", "chakra_guide")
	rec := httptest.NewRecorder()
	h.HandleGenerate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Draft created") || !strings.Contains(body, "Solar Plexus Chakra Crystals") {
		t.Error("expected generated summary page")
	}
	if !strings.Contains(body, "falling_back") {
		t.Error("expected trace on the page")
	}
}

func TestHandleGenerate_JSON(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("POST", "/generate/seasonal", strings.NewReader(`{"context":{"season":"autumn"}}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.SetPathValue("archetype", "seasonal")
	rec := httptest.NewRecorder()
	h.HandleGenerate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var out ops.GenerateOutput
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Status != "draft" || out.Source != content.SourceFallback {
		t.Errorf("status/source = %q/%q", out.Status, out.Source)
	}
	if !strings.HasPrefix(out.Title, "Best Crystals for Fall 2026") {
		t.Errorf("Title = %q", out.Title)
	}
}

func TestHandleGenerate_Errors(t *testing.T) {
	h := setupTest(t)

	tests := []struct {
		name      string
		archetype string
		body      string
		wantCode  int
	}{
		{name: "unknown archetype", archetype: "tarot", body: `{}`, wantCode: http.StatusBadRequest},
		{name: "bad json", archetype: "chakra_guide", body: `{"context":`, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/generate/"+tt.archetype, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Accept", "application/json")
			req.SetPathValue("archetype", tt.archetype)
			rec := httptest.NewRecorder()
			h.HandleGenerate(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
		})
	}
}

func TestHandleGenerate_All(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("POST", "/generate/all", strings.NewReader(""))
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetPathValue("archetype", "all")
	rec := httptest.NewRecorder()
	h.HandleGenerate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var out ops.GenerateAllOutput
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Generated != 5 {
		t.Errorf("Generated = %d, want 5", out.Generated)
	}
}

// --- Server wiring ---

func TestServer_RoutesAndMetrics(t *testing.T) {
	h := setupTest(t)
	reg := prometheus.NewRegistry()
	pipeline := newTestPipeline(t, h, reg)

	srv, err := NewServer(h.db, h.cfg, pipeline, Options{Version: "test", Bind: "127.0.0.1", Port: 0, Gatherer: reg})
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}

	req := httptest.NewRequest("POST", "/generate/birthstone", strings.NewReader("month=June"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("generate status = %d, want 201", rec.Code)
	}
	if rec.Header().Get("X-Frame-Options") != "DENY" {
		t.Error("expected security headers")
	}

	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `facet_generation_runs_total{archetype="birthstone_guide",source="fallback"} 1`) {
		t.Errorf("metrics missing run counter:\n%s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/posts" {
		t.Errorf("root redirect = %d %q", rec.Code, rec.Header().Get("Location"))
	}

	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/static/style.css", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("static status = %d, want 200", rec.Code)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[int]string{0: "0", 999: "999", 1000: "1,000", 1234567: "1,234,567", -2500: "-2,500"}
	for in, want := range tests {
		if got := formatNumber(in); got != want {
			t.Errorf("formatNumber(%d) = %q, want %q", in, got, want)
		}
	}
}
