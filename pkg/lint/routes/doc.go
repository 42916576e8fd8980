// Package routes provides route consistency linting for documentation sites.
//
// The analyzer cross-checks a site's declared navigation (topnav and
// sidebar links) against the content files on disk. Each rule is independent
// and collects every violation it finds before reporting, so a maintainer
// can fix all issues in one pass.
//
// # Rule Categories
//
//   - configuration (NC01, NC02): duplicate links and malformed link paths
//   - resolution (NC03-NC05): links that do not resolve to a content file
//   - coverage (NC06): content files without links and links without files
//
// # Usage
//
// Build a Context from the navigation and the content tree and run the analyzer:
//
//	ctx := routes.NewContext(site.Structure(), content.NewTree("docs", ".md"))
//	report, err := routes.NewAnalyzer(nil).Analyze(ctx)
//	if err != nil {
//		return err // file-system failure
//	}
//	return report.Err() // one failure per violated rule
package routes
