package scan

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("<html></html>"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestHTMLFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "dashboard.html")
	writeFile(t, dir, "extra.htm")
	writeFile(t, dir, "sub/nested.html")
	writeFile(t, dir, "notes.md")
	writeFile(t, dir, "assets/fragment.html")

	files, err := HTMLFiles(dir, []string{"assets/**"})
	if err != nil {
		t.Fatalf("HTMLFiles: %v", err)
	}

	var got []string
	for _, f := range files {
		got = append(got, f.RelPath)
	}
	want := []string{"dashboard.html", "extra.htm", "sub/nested.html"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("files = %v, want %v", got, want)
	}
}

func TestHTMLFilesMissingDir(t *testing.T) {
	if _, err := HTMLFiles(filepath.Join(t.TempDir(), "nope"), nil); err == nil {
		t.Error("expected an error for a missing directory")
	}
}

func TestReconcile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "dashboard.html")
	writeFile(t, dir, "profile.html")
	writeFile(t, dir, "scratch.html")

	st, err := Reconcile(dir, []string{"dashboard.html", "reports.html", "profile.html"}, nil)
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}

	if want := []string{"dashboard.html", "profile.html"}; !reflect.DeepEqual(st.Present, want) {
		t.Errorf("present = %v, want %v", st.Present, want)
	}
	if want := []string{"reports.html"}; !reflect.DeepEqual(st.Missing, want) {
		t.Errorf("missing = %v, want %v", st.Missing, want)
	}
	if want := []string{"scratch.html"}; !reflect.DeepEqual(st.Unknown, want) {
		t.Errorf("unknown = %v, want %v", st.Unknown, want)
	}
	// writeFile always writes the same 13-byte document.
	for _, f := range []string{"dashboard.html", "profile.html", "scratch.html"} {
		if got := st.Sizes[f]; got != 13 {
			t.Errorf("size of %s = %d, want 13", f, got)
		}
	}
	if _, ok := st.Sizes["reports.html"]; ok {
		t.Error("missing page should have no recorded size")
	}
}

func TestMatchesAny(t *testing.T) {
	tests := []struct {
		path     string
		patterns []string
		want     bool
	}{
		{"dashboard.html", []string{"dash*"}, true},
		{"sub/dashboard.html", []string{"dash*"}, true},
		{"dashboard.html", []string{"*.htm"}, false},
		{"assets/logo.html", []string{"assets/**"}, true},
		{"dashboard.html", nil, false},
	}

	for _, tt := range tests {
		if got := MatchesAny(tt.path, tt.patterns); got != tt.want {
			t.Errorf("MatchesAny(%q, %v) = %v, want %v", tt.path, tt.patterns, got, tt.want)
		}
	}
}
