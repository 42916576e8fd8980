package coverage

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/navcheck/pkg/lint"
	"github.com/leapstack-labs/navcheck/pkg/lint/routes"
)

const (
	reasonUnlinked = "file exists but is not linked in navigation"
	reasonMissing  = "navigation link has no corresponding file"
)

func init() {
	routes.Register(routes.RuleDef{
		ID:          "NC06",
		Name:        "route-coverage",
		Group:       "coverage",
		Description: "Linked files should match the content files on disk",
		Title:       "Navigation structure mismatch:",
		Severity:    lint.SeverityError,
		Check:       checkRouteCoverage,
		Format:      formatRouteCoverage,
	})
}

// checkRouteCoverage diffs the scanned content routes against the unique
// declared links. Unlinked files come first in scan order, then missing
// files in linked-file order.
func checkRouteCoverage(ctx *routes.Context) ([]routes.Diagnostic, error) {
	linked, err := ctx.LinkedFiles()
	if err != nil {
		return nil, err
	}
	actual, err := ctx.ContentRoutes()
	if err != nil {
		return nil, err
	}

	declared := make(map[string]struct{}, len(linked))
	for _, f := range linked {
		declared[f.Route] = struct{}{}
	}

	tree := ctx.Tree()
	var diagnostics []routes.Diagnostic

	for _, route := range actual {
		if _, ok := declared[route]; ok {
			continue
		}
		path := tree.ExpectedPath(route)
		diagnostics = append(diagnostics, routes.Diagnostic{
			RuleID:           "NC06",
			Severity:         lint.SeverityError,
			Kind:             lint.KindOrphanFile,
			Route:            route,
			Reason:           reasonUnlinked,
			Path:             path,
			Message:          fmt.Sprintf("%s -> %s: %s", route, reasonUnlinked, path),
			DocumentationURL: lint.BuildDocURL("NC06"),
		})
	}

	for _, f := range linked {
		if f.Exists {
			continue
		}
		diagnostics = append(diagnostics, routes.Diagnostic{
			RuleID:           "NC06",
			Severity:         lint.SeverityError,
			Kind:             lint.KindDanglingLink,
			Route:            f.Route,
			Locations:        f.Locations,
			Reason:           reasonMissing,
			Path:             f.ExpectedPath,
			Message:          fmt.Sprintf("%s -> %s: %s", f.Route, reasonMissing, f.ExpectedPath),
			DocumentationURL: lint.BuildDocURL("NC06"),
		})
	}

	return diagnostics, nil
}

// formatRouteCoverage writes the unlinked and missing blocks followed by a
// summary of both counts.
func formatRouteCoverage(rule routes.RuleDef, diags []routes.Diagnostic) string {
	var unlinked, missing []string
	for _, d := range diags {
		switch d.Kind {
		case lint.KindOrphanFile:
			unlinked = append(unlinked, fmt.Sprintf("  - %s (%s)", d.Route, d.Path))
		case lint.KindDanglingLink:
			missing = append(missing, fmt.Sprintf("  - %s (should be at: %s)", d.Route, d.Path))
		}
	}

	var b strings.Builder
	b.WriteString(rule.Title)
	if len(unlinked) > 0 {
		b.WriteString("\nUnlinked files:\n")
		b.WriteString(strings.Join(unlinked, "\n"))
	}
	if len(missing) > 0 {
		b.WriteString("\nMissing files:\n")
		b.WriteString(strings.Join(missing, "\n"))
	}
	fmt.Fprintf(&b, "\n\nSummary:\n- %d files exist but are not linked in navigation\n- %d navigation links don't have corresponding files",
		len(unlinked), len(missing))
	return b.String()
}
