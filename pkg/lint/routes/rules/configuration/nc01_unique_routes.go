package configuration

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/navcheck/pkg/lint"
	"github.com/leapstack-labs/navcheck/pkg/lint/routes"
	"github.com/leapstack-labs/navcheck/pkg/nav"
)

func init() {
	routes.Register(routes.RuleDef{
		ID:          "NC01",
		Name:        "unique-routes",
		Group:       "configuration",
		Description: "Routes should be unique within their sections",
		Title:       "Found duplicate routes",
		Severity:    lint.SeverityError,
		Check:       checkUniqueRoutes,
		Format:      formatUniqueRoutes,
	})
}

var sectionTitles = map[string]string{
	nav.LocationTopNav:  "Found duplicate routes in top navigation:",
	nav.LocationSidebar: "Found duplicate routes in sidebar:",
}

// checkUniqueRoutes flags links repeated within topnav and, independently,
// within sidebar. A link declared in both sequences is expected and allowed.
func checkUniqueRoutes(ctx *routes.Context) ([]routes.Diagnostic, error) {
	s := ctx.Nav()

	var diagnostics []routes.Diagnostic
	diagnostics = append(diagnostics, duplicatesIn(nav.LocationTopNav, s.TopNav)...)
	diagnostics = append(diagnostics, duplicatesIn(nav.LocationSidebar, s.Sidebar)...)
	return diagnostics, nil
}

func duplicatesIn(location string, links []string) []routes.Diagnostic {
	var diagnostics []routes.Diagnostic
	for _, route := range nav.Duplicates(links) {
		diagnostics = append(diagnostics, routes.Diagnostic{
			RuleID:           "NC01",
			Severity:         lint.SeverityError,
			Kind:             lint.KindConfigurationDefect,
			Route:            route,
			Locations:        []string{location},
			Reason:           "appears multiple times in " + location,
			Message:          fmt.Sprintf("%q appears multiple times in %s", route, location),
			DocumentationURL: lint.BuildDocURL("NC01"),
		})
	}
	return diagnostics
}

// formatUniqueRoutes writes one block per section that has duplicates.
func formatUniqueRoutes(_ routes.RuleDef, diags []routes.Diagnostic) string {
	var blocks []string
	for _, location := range []string{nav.LocationTopNav, nav.LocationSidebar} {
		var section []routes.Diagnostic
		for _, d := range diags {
			if len(d.Locations) > 0 && d.Locations[0] == location {
				section = append(section, d)
			}
		}
		if len(section) > 0 {
			blocks = append(blocks, routes.FormatList(sectionTitles[location], section))
		}
	}
	return strings.Join(blocks, "\n")
}
