// Package navtest runs the route consistency rules from Go tests.
//
// A documentation site checks itself with a test like:
//
//	func TestNavigation(t *testing.T) {
//		s, tree := navtest.LoadSite(t, "docs/.vitepress/nav.yaml", "docs", ".md")
//		navtest.Run(t, s, tree)
//	}
//
// Every registered rule becomes a subtest that fails with the rule's
// multi-line message listing all of its violations.
package navtest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/navcheck/pkg/content"
	"github.com/leapstack-labs/navcheck/pkg/lint"
	"github.com/leapstack-labs/navcheck/pkg/lint/routes"
	_ "github.com/leapstack-labs/navcheck/pkg/lint/routes/rules" // registers NC01-NC06
	"github.com/leapstack-labs/navcheck/pkg/nav"
)

// Run checks s against tree with every registered rule.
func Run(t *testing.T, s nav.Structure, tree *content.Tree) {
	t.Helper()
	RunConfig(t, s, tree, nil)
}

// RunConfig is Run with rules disabled by cfg skipped.
func RunConfig(t *testing.T, s nav.Structure, tree *content.Tree, cfg *lint.Config) {
	t.Helper()

	ctx := routes.NewContext(s, tree)
	for _, rule := range routes.GetAll() {
		if cfg != nil && cfg.IsDisabled(rule.ID) {
			continue
		}
		t.Run(rule.ID+"_"+rule.Name, func(t *testing.T) {
			diags, err := rule.Check(ctx)
			if err != nil {
				t.Fatalf("%s could not run: %v", rule.ID, err)
			}
			if failure := routes.NewRuleFailure(rule, diags); failure != nil {
				t.Error(failure.Error())
			}
		})
	}
}

// LoadSite reads a navigation file and opens the content tree it describes.
func LoadSite(t testing.TB, navFile, contentDir, ext string) (nav.Structure, *content.Tree) {
	t.Helper()

	cfg, err := nav.LoadFile(navFile)
	if err != nil {
		t.Fatalf("load navigation: %v", err)
	}
	return cfg.Structure(), content.NewTree(contentDir, ext)
}

// WriteTree creates files below root, each holding a single heading.
// Names use forward slashes; parent directories are created as needed.
func WriteTree(t testing.TB, root string, files ...string) {
	t.Helper()

	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatalf("create directory for %s: %v", f, err)
		}
		if err := os.WriteFile(path, []byte("# "+filepath.Base(f)+"\n"), 0o600); err != nil {
			t.Fatalf("write %s: %v", f, err)
		}
	}
}
