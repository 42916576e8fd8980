package navtest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/navcheck/pkg/content"
	"github.com/leapstack-labs/navcheck/pkg/lint"
	"github.com/leapstack-labs/navcheck/pkg/lint/routes"
	"github.com/leapstack-labs/navcheck/pkg/nav"
	"github.com/leapstack-labs/navcheck/pkg/navtest"
)

const navYAML = `
nav:
  - text: Home
    link: /
  - text: Guide
    link: /guide/
sidebar:
  /guide/:
    - text: Guide
      items:
        - text: Overview
          link: /guide/
        - text: Markdown
          link: /guide/markdown
`

func writeSite(t *testing.T) (navFile, docs string) {
	t.Helper()
	dir := t.TempDir()
	docs = filepath.Join(dir, "docs")
	navtest.WriteTree(t, docs, "index.md", "guide/index.md", "guide/markdown.md", ".vitepress/theme/notes.md")

	navFile = filepath.Join(docs, ".vitepress", "nav.yaml")
	require.NoError(t, os.WriteFile(navFile, []byte(navYAML), 0o600))
	return navFile, docs
}

func TestRun_ConsistentSite(t *testing.T) {
	navFile, docs := writeSite(t)

	s, tree := navtest.LoadSite(t, navFile, docs, ".md")
	navtest.Run(t, s, tree)
}

func TestRunConfig_SkipsDisabledRules(t *testing.T) {
	_, docs := writeSite(t)
	navtest.WriteTree(t, docs, "drafts/unlisted.md")

	cfg := lint.NewConfig()
	cfg.Disable("NC06")

	navtest.RunConfig(t, nav.Structure{
		TopNav:  []string{"/", "/guide/"},
		Sidebar: []string{"/guide/", "/guide/markdown"},
	}, content.NewTree(docs, ".md"), cfg)
}

func TestWriteTree(t *testing.T) {
	root := t.TempDir()
	navtest.WriteTree(t, root, "a.md", "nested/deep/b.md")

	data, err := os.ReadFile(filepath.Join(root, "nested", "deep", "b.md"))
	require.NoError(t, err)
	assert.Equal(t, "# b.md\n", string(data))

	routesFound, err := content.NewTree(root, ".md").Routes()
	require.NoError(t, err)
	assert.Equal(t, []string{"/a", "/nested/deep/b"}, routesFound)
}

func TestRulesRegistered(t *testing.T) {
	var ids []string
	for _, rule := range routes.GetAll() {
		ids = append(ids, rule.ID)
	}
	assert.Equal(t, []string{"NC01", "NC02", "NC03", "NC04", "NC05", "NC06"}, ids)
}

func analyze(t *testing.T, s nav.Structure, docs string) *routes.Report {
	t.Helper()
	report, err := routes.NewAnalyzer(nil).Analyze(routes.NewContext(s, content.NewTree(docs, ".md")))
	require.NoError(t, err)
	return report
}

func diagnosticsFor(report *routes.Report, ruleID string) []routes.Diagnostic {
	for _, res := range report.Results {
		if res.Rule.ID == ruleID {
			return res.Diagnostics
		}
	}
	return nil
}

func TestScenarios(t *testing.T) {
	docs := filepath.Join(t.TempDir(), "docs")
	navtest.WriteTree(t, docs,
		"index.md",
		"guide/index.md",
		"examples/index.md",
		"examples/mermaid.md",
		"orphan.md",
	)

	report := analyze(t, nav.Structure{
		TopNav:  []string{"/", "/guide/", "/missing/"},
		Sidebar: []string{"/examples/", "/examples/mermaid", "/examples/mermaid"},
	}, docs)

	t.Run("existing section resolves", func(t *testing.T) {
		for _, d := range diagnosticsFor(report, "NC03") {
			assert.NotEqual(t, "/guide/", d.Route)
		}
	})

	t.Run("missing section directory", func(t *testing.T) {
		diags := diagnosticsFor(report, "NC03")
		require.Len(t, diags, 1)
		assert.Equal(t, "/missing/", diags[0].Route)
		assert.Equal(t, lint.KindDanglingLink, diags[0].Kind)
		assert.Equal(t, "directory does not exist: "+filepath.Join(docs, "missing"), diags[0].Reason)
	})

	t.Run("unlinked file", func(t *testing.T) {
		var unlinked []string
		for _, d := range diagnosticsFor(report, "NC06") {
			if d.Kind == lint.KindOrphanFile {
				unlinked = append(unlinked, d.Route)
			}
		}
		assert.Equal(t, []string{"/orphan"}, unlinked)
	})

	t.Run("duplicate sidebar route", func(t *testing.T) {
		diags := diagnosticsFor(report, "NC01")
		require.Len(t, diags, 1)
		assert.Equal(t, "/examples/mermaid", diags[0].Route)
		assert.Equal(t, lint.KindConfigurationDefect, diags[0].Kind)
	})

	t.Run("every failing rule is reported", func(t *testing.T) {
		err := report.Err()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Navigation structure validation failed:")
		assert.Contains(t, err.Error(), "Navigation structure mismatch:")
	})
}

func TestAnalyze_Idempotent(t *testing.T) {
	docs := filepath.Join(t.TempDir(), "docs")
	navtest.WriteTree(t, docs, "index.md", "b.md", "c/index.md", "stray.md")

	s := nav.Structure{
		TopNav:  []string{"/", "/c/", "/a/"},
		Sidebar: []string{"/b", "/b", "/missing"},
	}

	first := analyze(t, s, docs)
	second := analyze(t, s, docs)

	require.Error(t, first.Err())
	assert.Equal(t, first.Err().Error(), second.Err().Error())
	assert.Equal(t, first.Diagnostics(), second.Diagnostics())
}
