// Package patch rewrites mockup HTML documents in place: it splices the
// generated sidebar fragment over the existing <aside> element and makes
// sure the Material Icons Round stylesheet is linked.
package patch

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Outcome classifies what happened to a single document.
type Outcome string

const (
	// OutcomeUpdated means the sidebar was replaced and the file rewritten.
	OutcomeUpdated Outcome = "updated"
	// OutcomeSkipped means the file does not exist and was left untouched.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeWarned means no <aside> was found; the file was still
	// rewritten (possibly unchanged) so the icon link check applies.
	OutcomeWarned Outcome = "warned"
)

// Result records the outcome of patching one document.
type Result struct {
	File            string
	Title           string
	Outcome         Outcome
	SidebarReplaced bool
	IconLinkAdded   bool
}

// IconLink is the stylesheet link inserted into pages missing the icon font.
const IconLink = `<link href="https://fonts.googleapis.com/icon?family=Material+Icons+Round" rel="stylesheet"/>`

// iconMarker is the substring whose presence means the icon font is
// already linked, regardless of how the link tag is formatted.
const iconMarker = "family=Material+Icons+Round"

// asidePattern matches the first <aside ...> ... </aside> span, with "."
// matching newlines. Matching is by tag name only: attributes are ignored
// and so is nesting, so a nested <aside> inside the container makes the
// match end at the first inner close. The mockups have a single flat
// sidebar per page, so this holds in practice. Keep the behavior as is;
// switching to a structural parser would change what gets replaced.
var asidePattern = regexp.MustCompile(`(?s)<aside.*?>.*?</aside>`)

// ReplaceSidebar substitutes the first <aside> element in doc with the
// given fragment. The second return is false when no <aside> was found,
// in which case doc is returned unchanged.
func ReplaceSidebar(doc, fragment string) (string, bool) {
	loc := asidePattern.FindStringIndex(doc)
	if loc == nil {
		return doc, false
	}
	return doc[:loc[0]] + fragment + doc[loc[1]:], true
}

// EnsureIconLink inserts the Material Icons stylesheet link before the
// closing </head> when the icon font is not already referenced. If the
// document has no </head> the insertion is a no-op. The second return is
// true when a link was added.
func EnsureIconLink(doc string) (string, bool) {
	if strings.Contains(doc, iconMarker) {
		return doc, false
	}
	patched := strings.ReplaceAll(doc, "</head>", IconLink+"\n</head>")
	return patched, patched != doc
}

// File applies both transformations to the document at path and writes it
// back. A missing file yields OutcomeSkipped and touches nothing on disk.
// When dryRun is set the transformations run but nothing is written.
func File(path, fragment string, dryRun bool) (Result, error) {
	res := Result{File: path}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		res.Outcome = OutcomeSkipped
		return res, nil
	} else if err != nil {
		return res, fmt.Errorf("stat %s: %w", path, err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return res, fmt.Errorf("reading %s: %w", path, err)
	}
	doc := string(raw)

	doc, res.SidebarReplaced = ReplaceSidebar(doc, fragment)
	if res.SidebarReplaced {
		res.Outcome = OutcomeUpdated
	} else {
		res.Outcome = OutcomeWarned
	}

	doc, res.IconLinkAdded = EnsureIconLink(doc)

	// The file is rewritten even when nothing matched, mirroring the
	// original maintenance script: existence is the only write guard.
	if !dryRun {
		if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
			return res, fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return res, nil
}
