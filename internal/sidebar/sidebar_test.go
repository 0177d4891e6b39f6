package sidebar

import (
	"strings"
	"testing"
)

func TestBuildMarksActivePage(t *testing.T) {
	out := Build("Dashboard")

	activeLink := linkBase + linkActive
	if got := strings.Count(out, `class="`+activeLink+`"`); got != 1 {
		t.Errorf("active link count = %d, want 1", got)
	}
	if !strings.Contains(out, `class="`+activeLink+`" href="dashboard.html"`) {
		t.Error("active link style not applied to dashboard.html")
	}

	// The active icon class has no hover suffix, so its closing quote
	// follows the base class directly.
	if got := strings.Count(out, iconBase+`"`); got != 1 {
		t.Errorf("active icon count = %d, want 1", got)
	}

	// Every other link carries the hover pair.
	hoverLinks := strings.Count(out, `class="`+linkBase+linkHover+`"`)
	if want := len(Links()) - 1; hoverLinks != want {
		t.Errorf("hover link count = %d, want %d", hoverLinks, want)
	}
}

func TestBuildEachConfiguredPage(t *testing.T) {
	for _, link := range Links() {
		out := Build(link.Label)
		if got := strings.Count(out, `class="`+linkBase+linkActive+`"`); got != 1 {
			t.Errorf("Build(%q): active link count = %d, want 1", link.Label, got)
		}
		if !strings.Contains(out, `class="`+linkBase+linkActive+`" href="`+link.Href+`"`) {
			t.Errorf("Build(%q): active style not on href %q", link.Label, link.Href)
		}
	}
}

func TestBuildUnknownLabelActivatesNothing(t *testing.T) {
	out := Build("Not A Page")

	if got := strings.Count(out, `class="`+linkBase+linkActive+`"`); got != 0 {
		t.Errorf("active link count = %d, want 0", got)
	}
	if got := strings.Count(out, `class="`+linkBase+linkHover+`"`); got != len(Links()) {
		t.Errorf("hover link count = %d, want %d", got, len(Links()))
	}
}

func TestBuildStaticContent(t *testing.T) {
	out := Build("Dashboard")

	if !strings.HasPrefix(out, "<aside ") {
		t.Error("fragment does not start with <aside")
	}
	if !strings.HasSuffix(out, "</aside>") {
		t.Error("fragment does not end with </aside>")
	}

	for _, want := range []string{
		">Quantum</span>",
		profileName,
		profileRole,
		avatarURL,
		`placeholder="Search data..."`,
		">NEW</span>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("fragment missing %q", want)
		}
	}

	// Section headings render once each.
	for _, section := range navSections {
		if got := strings.Count(out, ">"+section.Title+"</h3>"); got != 1 {
			t.Errorf("section %q heading count = %d, want 1", section.Title, got)
		}
	}

	if got := strings.Count(out, "<li>"); got != len(Links()) {
		t.Errorf("list item count = %d, want %d", got, len(Links()))
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	if Build("Toolkit") != Build("Toolkit") {
		t.Error("Build is not deterministic for the same label")
	}
}

func TestBuildContainsNoNestedAside(t *testing.T) {
	// The patcher's container matching is not nesting-aware, so the
	// generated fragment must never contain an inner <aside>.
	out := Build("Dashboard")
	if got := strings.Count(out, "<aside"); got != 1 {
		t.Errorf("fragment contains %d <aside> tags, want 1", got)
	}
}
