// Package scan inspects the designs directory and reconciles what is on
// disk against the configured page set.
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileInfo holds metadata about one HTML file found in the designs dir.
type FileInfo struct {
	RelPath string // Path relative to the designs directory.
	Size    int64  // File size in bytes.
}

// HTMLFiles walks the designs directory and returns every HTML file not
// matched by an exclude pattern, sorted by relative path. A missing
// directory is an error; an empty one is not.
func HTMLFiles(dir string, exclude []string) ([]FileInfo, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("scan: resolve %s: %w", dir, err)
	}
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	var files []FileInfo
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Skip entries we cannot read instead of aborting.
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if rel != "." && MatchesAny(rel, exclude) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(rel))
		if ext != ".html" && ext != ".htm" {
			return nil
		}
		if MatchesAny(rel, exclude) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		files = append(files, FileInfo{RelPath: filepath.ToSlash(rel), Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan: walking %s: %w", dir, err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].RelPath < files[j].RelPath })
	return files, nil
}

// Status reconciles the configured page filenames against the designs
// directory contents.
type Status struct {
	Present []string         // Configured pages found on disk.
	Missing []string         // Configured pages absent from disk.
	Unknown []string         // HTML files on disk not in the page set.
	Sizes   map[string]int64 // Size in bytes per on-disk file, keyed by RelPath.
}

// Reconcile computes a Status for the given page filenames. Page order is
// preserved for Present and Missing; Unknown is sorted.
func Reconcile(dir string, pages []string, exclude []string) (Status, error) {
	files, err := HTMLFiles(dir, exclude)
	if err != nil {
		return Status{}, err
	}

	onDisk := make(map[string]bool, len(files))
	sizes := make(map[string]int64, len(files))
	for _, f := range files {
		onDisk[f.RelPath] = true
		sizes[f.RelPath] = f.Size
	}

	configured := make(map[string]bool, len(pages))
	st := Status{Sizes: sizes}
	for _, page := range pages {
		configured[page] = true
		if onDisk[page] {
			st.Present = append(st.Present, page)
		} else {
			st.Missing = append(st.Missing, page)
		}
	}
	for _, f := range files {
		if !configured[f.RelPath] {
			st.Unknown = append(st.Unknown, f.RelPath)
		}
	}
	return st, nil
}
