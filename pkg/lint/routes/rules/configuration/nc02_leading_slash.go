package configuration

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/navcheck/pkg/lint"
	"github.com/leapstack-labs/navcheck/pkg/lint/routes"
)

func init() {
	routes.Register(routes.RuleDef{
		ID:          "NC02",
		Name:        "leading-slash",
		Group:       "configuration",
		Description: "All routes should start with /",
		Title:       "Found routes that don't start with /:",
		Severity:    lint.SeverityError,
		Check:       checkLeadingSlash,
	})
}

func checkLeadingSlash(ctx *routes.Context) ([]routes.Diagnostic, error) {
	s := ctx.Nav()

	var diagnostics []routes.Diagnostic
	for _, route := range s.All() {
		if strings.HasPrefix(route, "/") {
			continue
		}
		diagnostics = append(diagnostics, routes.Diagnostic{
			RuleID:           "NC02",
			Severity:         lint.SeverityError,
			Kind:             lint.KindConfigurationDefect,
			Route:            route,
			Locations:        s.Locations(route),
			Reason:           "does not start with /",
			Message:          fmt.Sprintf(`"%s"`, route),
			DocumentationURL: lint.BuildDocURL("NC02"),
		})
	}
	return diagnostics, nil
}
