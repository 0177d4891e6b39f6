package config

// Page maps a mockup filename to the display name shown in the sidebar.
type Page struct {
	File  string `yaml:"file" koanf:"file"`
	Title string `yaml:"title" koanf:"title"`
}

// ServeConfig holds preview server settings.
type ServeConfig struct {
	Port       int  `yaml:"port" koanf:"port"`
	Open       bool `yaml:"open" koanf:"open"`
	LiveReload bool `yaml:"live_reload" koanf:"live_reload"`
}

// Config is the top-level designsync configuration, corresponding to
// .designsync.yml. The defaults reproduce the canonical Quantum mockup
// layout, so running without a config file just works.
type Config struct {
	DesignDir string      `yaml:"design_dir" koanf:"design_dir"`
	Pages     []Page      `yaml:"pages" koanf:"pages"`
	Exclude   []string    `yaml:"exclude" koanf:"exclude"`
	HistoryDB string      `yaml:"history_db" koanf:"history_db"`
	Serve     ServeConfig `yaml:"serve" koanf:"serve"`
}
