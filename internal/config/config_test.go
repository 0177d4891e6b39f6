package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DesignDir != ".designs" {
		t.Errorf("expected default design_dir %q, got %q", ".designs", cfg.DesignDir)
	}
	if len(cfg.Pages) != 8 {
		t.Fatalf("expected 8 default pages, got %d", len(cfg.Pages))
	}
	if cfg.Pages[0].File != "dashboard.html" || cfg.Pages[0].Title != "Dashboard" {
		t.Errorf("first page = (%q, %q), want dashboard", cfg.Pages[0].File, cfg.Pages[0].Title)
	}
	if cfg.Pages[2].Title != "Reports & Docs" {
		t.Errorf("third page title = %q, want %q", cfg.Pages[2].Title, "Reports & Docs")
	}
	if cfg.Serve.Port != 8080 {
		t.Errorf("expected default serve.port 8080, got %d", cfg.Serve.Port)
	}
	if !cfg.Serve.LiveReload {
		t.Error("expected live reload on by default")
	}
}

func TestDefaultPagesOrderIsStable(t *testing.T) {
	wantOrder := []string{
		"dashboard.html", "participants.html", "reports.html", "ai.html",
		"toolkit.html", "ndisplans.html", "general.html", "profile.html",
	}
	cfg := DefaultConfig()
	for i, want := range wantOrder {
		if cfg.Pages[i].File != want {
			t.Errorf("pages[%d] = %q, want %q", i, cfg.Pages[i].File, want)
		}
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.designsync.yml")

	original := DefaultConfig()
	original.DesignDir = "mockups"
	original.Pages = []Page{
		{File: "index.html", Title: "Home"},
		{File: "about.html", Title: "About"},
	}
	original.Serve.Port = 9999
	original.Serve.LiveReload = false

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if loaded.DesignDir != original.DesignDir {
		t.Errorf("design_dir: got %q, want %q", loaded.DesignDir, original.DesignDir)
	}
	if len(loaded.Pages) != 2 {
		t.Fatalf("pages: got %d, want 2", len(loaded.Pages))
	}
	if loaded.Pages[1].File != "about.html" || loaded.Pages[1].Title != "About" {
		t.Errorf("pages[1] = (%q, %q), want about", loaded.Pages[1].File, loaded.Pages[1].Title)
	}
	if loaded.Serve.Port != 9999 {
		t.Errorf("serve.port: got %d, want 9999", loaded.Serve.Port)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DesignDir != ".designs" {
		t.Errorf("design_dir = %q, want default", cfg.DesignDir)
	}
	if len(cfg.Pages) != len(DefaultPages) {
		t.Errorf("pages = %d, want %d", len(cfg.Pages), len(DefaultPages))
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("DESIGNSYNC_DESIGN_DIR", "overridden")

	cfg, err := Load(filepath.Join(t.TempDir(), "none.yml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DesignDir != "overridden" {
		t.Errorf("design_dir = %q, want %q", cfg.DesignDir, "overridden")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"empty design dir", func(c *Config) { c.DesignDir = "" }, true},
		{"no pages", func(c *Config) { c.Pages = nil }, true},
		{"page without file", func(c *Config) { c.Pages[0].File = "" }, true},
		{"page without title", func(c *Config) { c.Pages[0].Title = "" }, true},
		{"duplicate page file", func(c *Config) { c.Pages[1].File = c.Pages[0].File }, true},
		{"port zero", func(c *Config) { c.Serve.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Serve.Port = 70000 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
