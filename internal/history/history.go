// Package history records sync runs so past batches can be inspected
// after the fact.
package history

import "time"

// Run summarizes one invocation of the sync command.
type Run struct {
	ID         string
	Timestamp  time.Time
	DesignDir  string
	DryRun     bool
	Updated    int
	Skipped    int
	Warned     int
	LinksAdded int
}

// FileResult is the recorded outcome for one file within a run.
type FileResult struct {
	RunID           string
	File            string
	Title           string
	Outcome         string
	SidebarReplaced bool
	IconLinkAdded   bool
}
