package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quantumcare/designsync/internal/config"
	"github.com/quantumcare/designsync/internal/db"
	"github.com/quantumcare/designsync/internal/history"
	"github.com/quantumcare/designsync/internal/patch"
	"github.com/quantumcare/designsync/internal/progress"
	"github.com/quantumcare/designsync/internal/scan"
	"github.com/quantumcare/designsync/internal/sidebar"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Rewrite the sidebar and icon link across all mockup pages",
	Long: `Rebuilds the navigation sidebar for every configured page, splices it
over the existing <aside> element, and inserts the Material Icons Round
stylesheet link where it is missing. Missing files are skipped.`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().Bool("dry-run", false, "report what would change without writing files")
	syncCmd.Flags().String("only", "", "only sync pages whose filename matches this glob")
	syncCmd.Flags().Bool("no-history", false, "do not record this run in the history database")
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	only, _ := cmd.Flags().GetString("only")
	noHistory, _ := cmd.Flags().GetBool("no-history")

	pages := cfg.Pages
	if only != "" {
		pages = filterPages(pages, only)
		if len(pages) == 0 {
			fmt.Printf("No configured pages match %q\n", only)
			return nil
		}
	}

	runner := &patch.Runner{
		Dir:      cfg.DesignDir,
		Pages:    toPatchPages(pages),
		DryRun:   dryRun,
		Fragment: sidebar.Build,
	}

	reporter := progress.NewReporter()
	reporter.Start(len(pages))
	done := 0

	results, err := runner.Run(func(res patch.Result) {
		done++
		reporter.Update(done, res.File)
		printResult(res)
	})
	reporter.Finish()
	if err != nil {
		return fmt.Errorf("syncing pages: %w", err)
	}

	run := summarize(cfg.DesignDir, dryRun, results)
	fmt.Printf("All files processed: %d updated, %d skipped, %d warnings, %d icon links added.\n",
		run.Updated, run.Skipped, run.Warned, run.LinksAdded)

	// History is best effort; a broken database never fails a sync.
	if !noHistory && !dryRun {
		if err := recordRun(cfg, run, results); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not record sync history: %v\n", err)
		}
	}

	return nil
}

// printResult emits the per-file status lines.
func printResult(res patch.Result) {
	switch res.Outcome {
	case patch.OutcomeSkipped:
		fmt.Printf("Skipping %s, does not exist\n", res.File)
	case patch.OutcomeWarned:
		fmt.Printf("Warning: No aside tag found in %s\n", res.File)
	case patch.OutcomeUpdated:
		fmt.Printf("Updated sidebar in %s\n", res.File)
	}
	if res.IconLinkAdded {
		fmt.Printf("Added Material Icons link to %s\n", res.File)
	}
}

// summarize folds per-file results into run totals.
func summarize(designDir string, dryRun bool, results []patch.Result) history.Run {
	run := history.Run{DesignDir: designDir, DryRun: dryRun}
	for _, res := range results {
		switch res.Outcome {
		case patch.OutcomeUpdated:
			run.Updated++
		case patch.OutcomeSkipped:
			run.Skipped++
		case patch.OutcomeWarned:
			run.Warned++
		}
		if res.IconLinkAdded {
			run.LinksAdded++
		}
	}
	return run
}

// recordRun persists the run and its results to the history database.
func recordRun(cfg *config.Config, run history.Run, results []patch.Result) error {
	database, err := db.Open(cfg.HistoryDB)
	if err != nil {
		return err
	}
	defer database.Close()

	fileResults := make([]history.FileResult, 0, len(results))
	for _, res := range results {
		fileResults = append(fileResults, history.FileResult{
			File:            res.File,
			Title:           res.Title,
			Outcome:         string(res.Outcome),
			SidebarReplaced: res.SidebarReplaced,
			IconLinkAdded:   res.IconLinkAdded,
		})
	}

	id, err := history.NewStore(database).Log(context.Background(), run, fileResults)
	if err != nil {
		return err
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Recorded sync run %s\n", id)
	}
	return nil
}

// filterPages keeps only pages whose filename matches the glob.
func filterPages(pages []config.Page, glob string) []config.Page {
	var out []config.Page
	for _, p := range pages {
		if scan.MatchesAny(p.File, []string{glob}) {
			out = append(out, p)
		}
	}
	return out
}

// toPatchPages converts config pages into the patcher's page type.
func toPatchPages(pages []config.Page) []patch.Page {
	out := make([]patch.Page, len(pages))
	for i, p := range pages {
		out[i] = patch.Page{File: p.File, Title: p.Title}
	}
	return out
}
