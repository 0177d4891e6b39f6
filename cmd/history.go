package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quantumcare/designsync/internal/db"
	"github.com/quantumcare/designsync/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent sync runs",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 10, "number of runs to show")
	historyCmd.Flags().Bool("files", false, "also list per-file outcomes")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if _, err := os.Stat(cfg.HistoryDB); os.IsNotExist(err) {
		fmt.Println("No sync history yet. Run `designsync sync` first.")
		return nil
	}

	database, err := db.Open(cfg.HistoryDB)
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer database.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	showFiles, _ := cmd.Flags().GetBool("files")

	store := history.NewStore(database)
	ctx := context.Background()

	runs, err := store.Recent(ctx, limit)
	if err != nil {
		return fmt.Errorf("listing sync runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Println("No sync history yet. Run `designsync sync` first.")
		return nil
	}

	for _, run := range runs {
		fmt.Printf("%s  %s  %d updated, %d skipped, %d warnings, %d icon links added\n",
			run.Timestamp.Format("2006-01-02 15:04:05"), run.DesignDir,
			run.Updated, run.Skipped, run.Warned, run.LinksAdded)
		if showFiles {
			results, err := store.Results(ctx, run.ID)
			if err != nil {
				return fmt.Errorf("listing results for run %s: %w", run.ID, err)
			}
			for _, res := range results {
				fmt.Printf("    %-8s %s\n", res.Outcome, res.File)
			}
		}
	}

	return nil
}
