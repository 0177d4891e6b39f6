package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/quantumcare/designsync/internal/config"
	"github.com/quantumcare/designsync/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Preview the mockups in a local browser",
	Long: `Starts a local HTTP server for the designs directory with an index of
all configured pages. Connected browsers reload automatically when a
mockup changes, so a designsync sync shows up immediately.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().AddFlagSet(serveFlags())
	rootCmd.AddCommand(serveCmd)
}

func serveFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	fs.Int("port", 0, "port for the preview server (overrides config)")
	fs.Bool("open", false, "open browser automatically")
	fs.Bool("live", true, "enable live reload")
	fs.Bool("allow-all", false, "allow all CORS origins")
	return fs
}

type serveOptions struct {
	port     int
	live     bool
	open     bool
	allowAll bool
}

// resolveServeOptions merges config defaults with the serve flags. A
// flag wins over the config only when it was set explicitly, so
// --open=false and --live=false can switch off config-enabled behavior.
func resolveServeOptions(flags *pflag.FlagSet, cfg *config.Config) serveOptions {
	opts := serveOptions{
		port: cfg.Serve.Port,
		live: cfg.Serve.LiveReload,
		open: cfg.Serve.Open,
	}
	if p, _ := flags.GetInt("port"); p > 0 {
		opts.port = p
	}
	if flags.Changed("live") {
		opts.live, _ = flags.GetBool("live")
	}
	if flags.Changed("open") {
		opts.open, _ = flags.GetBool("open")
	}
	opts.allowAll, _ = flags.GetBool("allow-all")
	return opts
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if _, err := os.Stat(cfg.DesignDir); os.IsNotExist(err) {
		return fmt.Errorf("designs directory not found at %s", cfg.DesignDir)
	}

	opts := resolveServeOptions(cmd.Flags(), cfg)

	pages := make([]server.PageLink, len(cfg.Pages))
	for i, p := range cfg.Pages {
		pages[i] = server.PageLink{File: p.File, Title: p.Title}
	}

	srv := server.New(server.Config{
		DesignDir:  cfg.DesignDir,
		Port:       opts.port,
		Pages:      pages,
		LiveReload: opts.live,
		AllowAll:   opts.allowAll,
	})

	url := fmt.Sprintf("http://localhost:%d", opts.port)
	if opts.open {
		go openBrowser(url)
	}

	fmt.Printf("Serving mockups at %s — press Ctrl+C to stop\n", url)
	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("serving mockups: %w", err)
	}
	return nil
}

// openBrowser launches the system browser at the given URL.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open browser: %v\n", err)
	}
}
