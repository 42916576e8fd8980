// Package routerules registers all route consistency rules.
// Import this package to register every rule with the global registry.
package routerules

import (
	// Blank imports trigger init() functions that register rules with the global registry.
	_ "github.com/leapstack-labs/navcheck/pkg/lint/routes/rules/configuration" // registers NC01, NC02
	_ "github.com/leapstack-labs/navcheck/pkg/lint/routes/rules/coverage"      // registers NC06
	_ "github.com/leapstack-labs/navcheck/pkg/lint/routes/rules/resolution"    // registers NC03-NC05
)
