// Package sidebar builds the shared navigation sidebar fragment for the
// Quantum dashboard mockups. Every mockup page carries the same sidebar;
// only the entry matching the active page is styled as selected.
package sidebar

import (
	"fmt"
	"strings"
)

// NavLink is one entry in the sidebar navigation.
type NavLink struct {
	Label string
	Href  string
	Icon  string // Material Icons Round glyph name.
	Badge string // Optional badge text rendered after the label.
}

// navSection groups nav links under a section heading.
type navSection struct {
	Title string
	Links []NavLink
}

// navSections is the fixed sidebar navigation. Edit here to change the
// sidebar across all mockup pages.
var navSections = []navSection{
	{
		Title: "Clinical Workflow",
		Links: []NavLink{
			{Label: "Dashboard", Href: "dashboard.html", Icon: "dashboard"},
			{Label: "Participants", Href: "participants.html", Icon: "people"},
			{Label: "Reports & Docs", Href: "reports.html", Icon: "assignment"},
			{Label: "AI Assistant", Href: "ai.html", Icon: "psychology", Badge: "NEW"},
			{Label: "Toolkit", Href: "toolkit.html", Icon: "construction"},
		},
	},
	{
		Title: "Compliance",
		Links: []NavLink{
			{Label: "Audits", Href: "#", Icon: "verified_user"},
			{Label: "NDIS Plans", Href: "ndisplans.html", Icon: "history_edu"},
		},
	},
	{
		Title: "Settings",
		Links: []NavLink{
			{Label: "General", Href: "general.html", Icon: "settings"},
			{Label: "Help Center", Href: "#", Icon: "help_outline"},
		},
	},
}

// Style class fragments for nav links. The active page gets the primary
// accent; everything else gets the hover treatment.
const (
	linkBase    = "flex items-center gap-3 px-2 py-2.5 rounded-DEFAULT transition-colors group"
	linkActive  = " bg-primary/10 text-primary"
	linkHover   = " text-text-sub-light dark:text-text-sub-dark hover:bg-gray-50 dark:hover:bg-slate-700/50 hover:text-gray-900 dark:hover:text-white"
	iconBase    = "material-icons-round text-[20px] transition-colors"
	iconHover   = " group-hover:text-primary"
	avatarURL   = "https://lh3.googleusercontent.com/aida-public/AB6AXuC3PRJomuYWo10PIj-wZ4oATztLJHU09M0yzJNrEj9PExcDf5irhFSknCmiKVhIpHuE4326mJFaMwoiucPKgNbVWJYxfzdkmyA-t4lIl6dIWQMk6zReuWABMGjJb68EgIVNIwi_wIUQVkBLhK3I9Gt-mQSt3N1NR1couViFXGZXp6c9r1JSV1qz03QqNMe4LrKh9goVNRi7QBvro3HK6SDVnBkcQwmT3-bgiNqy6TS7PRK8rgX7QlIiZMYr0io3FhCbpUqj8sqRCIs"
	profileName = "Sarah Chen"
	profileRole = "Senior OT"
)

// linkClass returns the anchor class list for a nav link.
func linkClass(label, activePage string) string {
	if label == activePage {
		return linkBase + linkActive
	}
	return linkBase + linkHover
}

// iconClass returns the icon span class list for a nav link. The active
// icon inherits the link text color.
func iconClass(label, activePage string) string {
	if label == activePage {
		return iconBase
	}
	return iconBase + iconHover
}

// header is everything above the nav sections: logo block and search input.
const header = `<aside class="w-64 bg-surface-light dark:bg-surface-dark border-r border-border-light dark:border-border-dark flex flex-col h-full flex-shrink-0 z-20">
    <div class="h-16 flex items-center px-6 border-b border-border-light dark:border-border-dark lg:border-none">
        <div class="flex items-center gap-2">
            <div class="w-8 h-8 rounded-lg bg-primary flex items-center justify-center text-white">
                <span class="material-icons-round text-xl">all_inclusive</span>
            </div>
            <span class="text-lg font-bold text-gray-900 dark:text-white tracking-tight">Quantum</span>
        </div>
    </div>
    <div class="px-5 mt-4 mb-2">
        <div class="relative">
            <span class="absolute inset-y-0 left-0 pl-3 flex items-center pointer-events-none">
                <span class="material-icons-round text-gray-400 text-sm">search</span>
            </span>
            <input class="w-full bg-gray-50 dark:bg-slate-700/50 border-none rounded-lg py-2 pl-9 pr-3 text-sm text-gray-700 dark:text-gray-200 focus:ring-1 focus:ring-primary placeholder-gray-400 dark:placeholder-slate-500" placeholder="Search data..." type="text"/>
            <div class="absolute inset-y-0 right-0 pr-2 flex items-center pointer-events-none">
                <span class="text-gray-400 text-xs border border-gray-200 dark:border-gray-600 rounded px-1.5 py-0.5">⌘K</span>
            </div>
        </div>
    </div>
    <nav class="flex-1 overflow-y-auto px-4 py-4 space-y-6">
`

// footer is everything below the nav sections: the profile link.
const footer = `    </nav>
    <div class="p-4 border-t border-border-light dark:border-border-dark">
        <a href="profile.html" class="flex items-center gap-3 w-full hover:bg-gray-50 dark:hover:bg-slate-700/50 p-2 rounded-lg transition-colors">
            <img alt="User avatar" class="w-8 h-8 rounded-full border border-gray-200 dark:border-gray-600" src="` + avatarURL + `"/>
            <div class="text-left">
                <p class="text-sm font-medium text-gray-900 dark:text-white">` + profileName + `</p>
                <p class="text-xs text-text-sub-light dark:text-text-sub-dark">` + profileRole + `</p>
            </div>
        </a>
    </div>
</aside>`

// Build renders the complete sidebar fragment with the given page marked
// active. Labels are compared with exact string equality; a label that
// matches no nav link produces a fully inactive sidebar, which is fine.
func Build(activePage string) string {
	var b strings.Builder
	b.WriteString(header)

	for _, section := range navSections {
		b.WriteString("        <div>\n")
		fmt.Fprintf(&b, "            <h3 class=\"px-2 text-xs font-semibold text-text-sub-light dark:text-text-sub-dark uppercase tracking-wider mb-2\">%s</h3>\n", section.Title)
		b.WriteString("            <ul class=\"space-y-1\">\n")
		for _, link := range section.Links {
			writeLink(&b, link, activePage)
		}
		b.WriteString("            </ul>\n")
		b.WriteString("        </div>\n")
	}

	b.WriteString(footer)
	return b.String()
}

// writeLink renders one <li> nav entry.
func writeLink(b *strings.Builder, link NavLink, activePage string) {
	b.WriteString("                <li>\n")
	fmt.Fprintf(b, "                    <a class=\"%s\" href=\"%s\">\n", linkClass(link.Label, activePage), link.Href)
	fmt.Fprintf(b, "                        <span class=\"%s\">%s</span>\n", iconClass(link.Label, activePage), link.Icon)
	fmt.Fprintf(b, "                        <span class=\"font-medium text-sm\">%s</span>\n", link.Label)
	if link.Badge != "" {
		fmt.Fprintf(b, "                        <span class=\"ml-auto bg-indigo-100 dark:bg-indigo-900/40 text-primary text-[10px] font-bold px-1.5 py-0.5 rounded\">%s</span>\n", link.Badge)
	}
	b.WriteString("                    </a>\n")
	b.WriteString("                </li>\n")
}

// Links returns the flat list of all nav links in render order.
func Links() []NavLink {
	var all []NavLink
	for _, s := range navSections {
		all = append(all, s.Links...)
	}
	return all
}
