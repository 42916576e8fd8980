package resolution

import (
	"github.com/leapstack-labs/navcheck/pkg/lint"
	"github.com/leapstack-labs/navcheck/pkg/lint/routes"
	"github.com/leapstack-labs/navcheck/pkg/nav"
)

func init() {
	routes.Register(routes.RuleDef{
		ID:          "NC04",
		Name:        "sidebar-directories",
		Group:       "resolution",
		Description: "All sidebar directory routes should have an index file",
		Title:       "Sidebar directory structure validation failed:",
		Severity:    lint.SeverityError,
		Check:       checkSidebarDirectories,
	})
}

func checkSidebarDirectories(ctx *routes.Context) ([]routes.Diagnostic, error) {
	return checkDirectories(ctx, "NC04", ctx.Nav().Sidebar, nav.IsDirectoryLink)
}
