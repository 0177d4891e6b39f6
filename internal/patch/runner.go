package patch

import "path/filepath"

// Page maps a mockup filename to the display name shown in the sidebar.
type Page struct {
	File  string
	Title string
}

// Runner patches a fixed set of pages under one directory. The page set
// and directory are provided by the caller so tests can substitute their
// own; Runner never consults global state.
type Runner struct {
	Dir      string
	Pages    []Page
	DryRun   bool
	Fragment func(activePage string) string // builds the sidebar for a page
}

// Run patches every configured page in order. The report callback, if
// non-nil, is invoked after each file with its result. Processing stops
// at the first I/O error; earlier files stay modified.
func (r *Runner) Run(report func(Result)) ([]Result, error) {
	results := make([]Result, 0, len(r.Pages))
	for _, page := range r.Pages {
		path := filepath.Join(r.Dir, page.File)
		res, err := File(path, r.Fragment(page.Title), r.DryRun)
		res.File = page.File
		res.Title = page.Title
		if err != nil {
			return results, err
		}
		results = append(results, res)
		if report != nil {
			report(res)
		}
	}
	return results, nil
}
