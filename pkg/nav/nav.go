// Package nav models the declared navigation of a documentation site.
//
// A site declares two ordered sequences of link paths: the top-level menu
// (topnav) and the per-section sidebar. Both are kept exactly as declared,
// duplicates included, so that consistency rules can report them.
package nav

import "strings"

// Location names a navigation sequence a link can appear in.
const (
	LocationTopNav  = "topnav"
	LocationSidebar = "sidebar"
)

// RootRoute is the site root. It always maps to the root index file.
const RootRoute = "/"

// Structure is the flattened navigation of a site.
type Structure struct {
	TopNav  []string `json:"topnav"`
	Sidebar []string `json:"sidebar"`
}

// All returns every declared link, topnav first, in declaration order.
func (s Structure) All() []string {
	all := make([]string, 0, len(s.TopNav)+len(s.Sidebar))
	all = append(all, s.TopNav...)
	return append(all, s.Sidebar...)
}

// Unique returns the union of both sequences in first-seen order.
func (s Structure) Unique() []string {
	seen := make(map[string]bool)
	var unique []string
	for _, link := range s.All() {
		if seen[link] {
			continue
		}
		seen[link] = true
		unique = append(unique, link)
	}
	return unique
}

// Locations returns the sequences that declare route, topnav first.
func (s Structure) Locations(route string) []string {
	var locations []string
	if contains(s.TopNav, route) {
		locations = append(locations, LocationTopNav)
	}
	if contains(s.Sidebar, route) {
		locations = append(locations, LocationSidebar)
	}
	return locations
}

// IsEmpty reports whether no links are declared at all.
func (s Structure) IsEmpty() bool {
	return len(s.TopNav) == 0 && len(s.Sidebar) == 0
}

// Duplicates returns every occurrence of a link after its first one, in
// declaration order. A link declared three times is returned twice.
func Duplicates(links []string) []string {
	seen := make(map[string]bool, len(links))
	var dups []string
	for _, link := range links {
		if seen[link] {
			dups = append(dups, link)
			continue
		}
		seen[link] = true
	}
	return dups
}

// IsDirectoryLink reports whether route names a section directory.
// The root is never a directory link.
func IsDirectoryLink(route string) bool {
	return route != RootRoute && strings.HasSuffix(route, "/")
}

func contains(links []string, route string) bool {
	for _, link := range links {
		if link == route {
			return true
		}
	}
	return false
}
