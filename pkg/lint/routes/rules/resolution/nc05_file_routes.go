package resolution

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/navcheck/pkg/lint"
	"github.com/leapstack-labs/navcheck/pkg/lint/routes"
	"github.com/leapstack-labs/navcheck/pkg/nav"
)

func init() {
	routes.Register(routes.RuleDef{
		ID:          "NC05",
		Name:        "file-routes",
		Group:       "resolution",
		Description: "All non-directory routes should have corresponding content files",
		Title:       "Non-directory route validation failed:",
		Severity:    lint.SeverityError,
		Check:       checkFileRoutes,
	})
}

// checkFileRoutes resolves every link that is neither the root nor a
// directory link to <path><ext>, checking the parent directory first.
func checkFileRoutes(ctx *routes.Context) ([]routes.Diagnostic, error) {
	s := ctx.Nav()

	var diagnostics []routes.Diagnostic
	for _, route := range s.All() {
		if route == nav.RootRoute || strings.HasSuffix(route, "/") {
			continue
		}

		v, err := resolveFile(ctx.Tree(), route)
		if err != nil {
			return nil, err
		}
		if v == nil {
			continue
		}

		locations := s.Locations(route)
		diagnostics = append(diagnostics, routes.Diagnostic{
			RuleID:           "NC05",
			Severity:         lint.SeverityError,
			Kind:             v.kind,
			Route:            route,
			Locations:        locations,
			Reason:           v.reason,
			Path:             v.path,
			Message:          fmt.Sprintf("%s (in %s) -> %s", route, strings.Join(locations, ", "), v.reason),
			DocumentationURL: lint.BuildDocURL("NC05"),
		})
	}

	return diagnostics, nil
}
