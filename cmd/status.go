package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quantumcare/designsync/internal/scan"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which configured pages exist and what else is in the designs directory",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	files := make([]string, len(cfg.Pages))
	for i, p := range cfg.Pages {
		files[i] = p.File
	}

	st, err := scan.Reconcile(cfg.DesignDir, files, cfg.Exclude)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", cfg.DesignDir, err)
	}

	fmt.Printf("Designs directory: %s\n\n", cfg.DesignDir)

	fmt.Printf("Configured pages (%d present, %d missing):\n", len(st.Present), len(st.Missing))
	for _, p := range cfg.Pages {
		if contains(st.Missing, p.File) {
			fmt.Printf("  [missing] %-22s %s\n", p.File, p.Title)
			continue
		}
		fmt.Printf("  [ok     ] %-22s %-20s %s\n", p.File, p.Title, formatSize(st.Sizes[p.File]))
	}

	if len(st.Unknown) > 0 {
		fmt.Printf("\nUnmanaged HTML files (not in the page set):\n")
		for _, f := range st.Unknown {
			fmt.Printf("  %-22s %s\n", f, formatSize(st.Sizes[f]))
		}
	}

	return nil
}

// formatSize renders a byte count for the status listing.
func formatSize(n int64) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	return fmt.Sprintf("%.1f KB", float64(n)/1024)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
