package config

// DefaultPages is the canonical page set for the Quantum mockups, in
// sidebar order. Titles must match the nav link labels exactly; the
// comparison in the fragment builder is plain string equality.
var DefaultPages = []Page{
	{File: "dashboard.html", Title: "Dashboard"},
	{File: "participants.html", Title: "Participants"},
	{File: "reports.html", Title: "Reports & Docs"},
	{File: "ai.html", Title: "AI Assistant"},
	{File: "toolkit.html", Title: "Toolkit"},
	{File: "ndisplans.html", Title: "NDIS Plans"},
	{File: "general.html", Title: "General"},
	{File: "profile.html", Title: "Profile"},
}

// DefaultExcludes are glob patterns ignored when scanning the designs
// directory for mockup files.
var DefaultExcludes = []string{
	".git/**",
	"node_modules/**",
	"assets/**",
	"*.bak",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	pages := make([]Page, len(DefaultPages))
	copy(pages, DefaultPages)
	return &Config{
		DesignDir: ".designs",
		Pages:     pages,
		Exclude:   DefaultExcludes,
		HistoryDB: ".designsync/history.db",
		Serve: ServeConfig{
			Port:       8080,
			LiveReload: true,
		},
	}
}
