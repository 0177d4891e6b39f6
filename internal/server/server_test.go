package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestServer(t *testing.T, live bool) (*Server, string) {
	t.Helper()
	dir := t.TempDir()

	page := `<html><head></head><body><h1>Dashboard mockup</h1></body></html>`
	if err := os.WriteFile(filepath.Join(dir, "dashboard.html"), []byte(page), 0o644); err != nil {
		t.Fatal(err)
	}
	notes := "# Handoff notes\n\nSidebar colors are final.\n"
	if err := os.WriteFile(filepath.Join(dir, "NOTES.md"), []byte(notes), 0o644); err != nil {
		t.Fatal(err)
	}

	srv := New(Config{
		DesignDir: dir,
		Port:      0,
		Pages: []PageLink{
			{File: "dashboard.html", Title: "Dashboard"},
			{File: "reports.html", Title: "Reports & Docs"},
		},
		LiveReload: live,
	})
	return srv, dir
}

func get(t *testing.T, ts *httptest.Server, path string) (int, string) {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp.StatusCode, string(body)
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t, false)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	code, body := get(t, ts, "/healthz")
	if code != http.StatusOK {
		t.Errorf("status = %d, want 200", code)
	}
	if body != `{"status":"ok"}` {
		t.Errorf("body = %q", body)
	}
}

func TestIndexListsPagesAndNotes(t *testing.T) {
	srv, _ := newTestServer(t, false)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	code, body := get(t, ts, "/")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}

	if !strings.Contains(body, `<a href="/dashboard.html">Dashboard</a>`) {
		t.Error("index missing link to present page")
	}
	if !strings.Contains(body, "Reports &amp; Docs") {
		t.Error("index missing configured page title")
	}
	if !strings.Contains(body, "missing") {
		t.Error("index does not flag the absent page")
	}
	if !strings.Contains(body, "Handoff notes") {
		t.Error("index missing rendered NOTES.md")
	}
}

func TestServedPageGetsReloadScript(t *testing.T) {
	srv, _ := newTestServer(t, true)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	code, body := get(t, ts, "/dashboard.html")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if !strings.Contains(body, "__livereload") {
		t.Error("live reload script was not injected")
	}
	if !strings.Contains(body, "Dashboard mockup") {
		t.Error("page content missing")
	}
}

func TestServedPageWithoutLiveReload(t *testing.T) {
	srv, _ := newTestServer(t, false)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	_, body := get(t, ts, "/dashboard.html")
	if strings.Contains(body, "__livereload") {
		t.Error("reload script injected with live reload off")
	}
}

func TestUnknownPathIs404(t *testing.T) {
	srv, _ := newTestServer(t, true)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	if code, _ := get(t, ts, "/nope.html"); code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", code)
	}
}

func TestInjectReloadScript(t *testing.T) {
	withBody := []byte("<html><body>x</body></html>")
	got := string(injectReloadScript(withBody))
	if !strings.Contains(got, reloadScript+"\n</body>") {
		t.Error("script not inserted before </body>")
	}

	noBody := []byte("<html>x</html>")
	got = string(injectReloadScript(noBody))
	if !strings.HasSuffix(got, reloadScript) {
		t.Error("script not appended when no </body> present")
	}
}
