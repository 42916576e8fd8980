package resolution

import (
	"github.com/leapstack-labs/navcheck/pkg/lint"
	"github.com/leapstack-labs/navcheck/pkg/lint/routes"
	"github.com/leapstack-labs/navcheck/pkg/nav"
)

func init() {
	routes.Register(routes.RuleDef{
		ID:          "NC03",
		Name:        "topnav-directories",
		Group:       "resolution",
		Description: "All nav items should point to directories with an index file",
		Title:       "Navigation structure validation failed:",
		Severity:    lint.SeverityError,
		Check:       checkTopNavDirectories,
	})
}

// checkTopNavDirectories requires every topnav entry except the root to be a
// section: a directory whose index file exists. File links in topnav are
// therefore flagged too.
func checkTopNavDirectories(ctx *routes.Context) ([]routes.Diagnostic, error) {
	return checkDirectories(ctx, "NC03", ctx.Nav().TopNav, func(route string) bool {
		return route != nav.RootRoute
	})
}

func checkDirectories(ctx *routes.Context, ruleID string, links []string, include func(string) bool) ([]routes.Diagnostic, error) {
	var diagnostics []routes.Diagnostic

	for _, route := range links {
		if !include(route) {
			continue
		}
		v, err := resolveDirectory(ctx.Tree(), route)
		if err != nil {
			return nil, err
		}
		if v == nil {
			continue
		}
		diagnostics = append(diagnostics, routes.Diagnostic{
			RuleID:           ruleID,
			Severity:         lint.SeverityError,
			Kind:             v.kind,
			Route:            route,
			Locations:        ctx.Nav().Locations(route),
			Reason:           v.reason,
			Path:             v.path,
			Message:          route + " -> " + v.reason,
			DocumentationURL: lint.BuildDocURL(ruleID),
		})
	}

	return diagnostics, nil
}
