package history

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/quantumcare/designsync/internal/db"
)

// Store provides persistence for sync runs.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Log inserts a run and its per-file results in one transaction. If
// run.ID is empty a UUID is generated; the final ID is returned.
func (s *Store) Log(ctx context.Context, run Run, results []FileResult) (string, error) {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO sync_runs (id, design_dir, dry_run, updated, skipped, warned, links_added)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.DesignDir,
		boolToInt(run.DryRun),
		run.Updated,
		run.Skipped,
		run.Warned,
		run.LinksAdded,
	)
	if err != nil {
		return "", fmt.Errorf("inserting sync run: %w", err)
	}

	for _, r := range results {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO sync_results (run_id, file, title, outcome, sidebar_replaced, icon_link_added)
			VALUES (?, ?, ?, ?, ?, ?)`,
			run.ID,
			r.File,
			r.Title,
			r.Outcome,
			boolToInt(r.SidebarReplaced),
			boolToInt(r.IconLinkAdded),
		)
		if err != nil {
			return "", fmt.Errorf("inserting result for %s: %w", r.File, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing sync run: %w", err)
	}
	return run.ID, nil
}

// Recent returns the most recent runs, newest first. A limit of 0 means
// a default of 10.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, timestamp, design_dir, dry_run, updated, skipped, warned, links_added
		FROM sync_runs ORDER BY timestamp DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying sync runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r      Run
			ts     string
			dryRun int
		)
		if err := rows.Scan(&r.ID, &ts, &r.DesignDir, &dryRun, &r.Updated, &r.Skipped, &r.Warned, &r.LinksAdded); err != nil {
			return nil, fmt.Errorf("scanning sync run: %w", err)
		}
		r.DryRun = dryRun != 0
		r.Timestamp, err = parseTimestamp(ts)
		if err != nil {
			return nil, fmt.Errorf("parsing timestamp for run %s: %w", r.ID, err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Results returns the per-file results for a run, in insertion order.
func (s *Store) Results(ctx context.Context, runID string) ([]FileResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, file, title, outcome, sidebar_replaced, icon_link_added
		FROM sync_results WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying sync results: %w", err)
	}
	defer rows.Close()

	var results []FileResult
	for rows.Next() {
		var r fileResultRow
		if err := rows.Scan(&r.RunID, &r.File, &r.Title, &r.Outcome, &r.SidebarReplaced, &r.IconLinkAdded); err != nil {
			return nil, fmt.Errorf("scanning sync result: %w", err)
		}
		results = append(results, FileResult{
			RunID:           r.RunID,
			File:            r.File,
			Title:           r.Title,
			Outcome:         r.Outcome,
			SidebarReplaced: r.SidebarReplaced != 0,
			IconLinkAdded:   r.IconLinkAdded != 0,
		})
	}
	return results, rows.Err()
}

// parseTimestamp decodes the timestamp column. The sqlite driver hands
// CURRENT_TIMESTAMP back as RFC 3339 text; accept the space-separated
// form too in case the database was written by another tool.
func parseTimestamp(ts string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		return t, nil
	}
	return time.Parse(time.DateTime, ts)
}

type fileResultRow struct {
	RunID           string
	File            string
	Title           string
	Outcome         string
	SidebarReplaced int
	IconLinkAdded   int
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
