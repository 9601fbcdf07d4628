package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestStaticHandlerServesKnownTypes(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"index.html": "<html></html>",
		"app.js":     "console.log(1)",
		"style.css":  "body{}",
		"frame.png":  "not-really-png",
		"data.bin":   "\x00\x01",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	h := staticHandler(dir)

	tests := []struct {
		path     string
		wantType string
		wantBody string
	}{
		{"/", "text/html; charset=utf-8", "<html></html>"},
		{"/index.html", "text/html; charset=utf-8", "<html></html>"},
		{"/app.js", "text/javascript; charset=utf-8", "console.log(1)"},
		{"/style.css", "text/css; charset=utf-8", "body{}"},
		{"/frame.png", "image/png", "not-really-png"},
		{"/data.bin", "application/octet-stream", "\x00\x01"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h(rec, httptest.NewRequest("GET", tt.path, nil))
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			if got := rec.Header().Get("Content-Type"); got != tt.wantType {
				t.Errorf("expected content type %q, got %q", tt.wantType, got)
			}
			if rec.Body.String() != tt.wantBody {
				t.Errorf("expected body %q, got %q", tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestStaticHandlerMissingFileIs404(t *testing.T) {
	h := staticHandler(t.TempDir())
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest("GET", "/nope.html", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestStaticHandlerDoesNotEscapeRoot(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("ok"), 0o644); err != nil {
		t.Fatal(err)
	}
	h := staticHandler(dir)
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest("GET", "/../main.go", nil))
	// path.Clean collapses the traversal; whatever resolves must not be 200
	// on a file outside the tempdir
	if rec.Code == http.StatusOK && rec.Body.String() != "ok" {
		t.Errorf("expected traversal to stay inside root, got %q", rec.Body.String())
	}
}
