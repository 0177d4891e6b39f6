package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (DESIGNSYNC_*). A missing file is not
// an error; the defaults are used as is.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: DESIGNSYNC_DESIGN_DIR -> design_dir, etc.
	if err := k.Load(env.Provider("DESIGNSYNC_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "DESIGNSYNC_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.DesignDir == "" {
		return fmt.Errorf("design_dir is required")
	}

	if len(c.Pages) == 0 {
		return fmt.Errorf("at least one page is required")
	}

	seen := make(map[string]bool, len(c.Pages))
	for i, p := range c.Pages {
		if p.File == "" {
			return fmt.Errorf("pages[%d]: file is required", i)
		}
		if p.Title == "" {
			return fmt.Errorf("pages[%d] (%s): title is required", i, p.File)
		}
		if seen[p.File] {
			return fmt.Errorf("duplicate page file %q", p.File)
		}
		seen[p.File] = true
	}

	if c.Serve.Port <= 0 || c.Serve.Port > 65535 {
		return fmt.Errorf("serve.port must be between 1 and 65535")
	}

	return nil
}
