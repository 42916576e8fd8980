package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/navcheck/internal/cli/config"
	"github.com/leapstack-labs/navcheck/internal/cli/output"
	"github.com/leapstack-labs/navcheck/internal/cli/testutil"
	testlog "github.com/leapstack-labs/navcheck/internal/testutil"
	"github.com/leapstack-labs/navcheck/pkg/lint"
)

// loadSite creates a consistent test site and loads its config as the
// current configuration.
func loadSite(t *testing.T) string {
	t.Helper()

	dir := testutil.SetupTestSite(t)
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	_, err := config.LoadConfig(filepath.Join(dir, "navcheck.yaml"), nil)
	require.NoError(t, err)
	return dir
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCommandMetadata(t *testing.T) {
	tests := []struct {
		cmd   *cobra.Command
		use   string
		flags []string
	}{
		{cmd: NewCheckCommand(), use: "check", flags: []string{"format", "disable", "severity", "rule"}},
		{cmd: NewLinksCommand(), use: "links", flags: []string{"format", "missing"}},
		{cmd: NewFilesCommand(), use: "files", flags: []string{"format", "unlinked"}},
		{cmd: NewRulesCommand(), use: "rules [rule-id]", flags: []string{"group", "verbose", "format"}},
		{cmd: NewWatchCommand(), use: "watch", flags: []string{"format", "severity", "debounce"}},
		{cmd: NewVersionCommand("1.0.0"), use: "version"},
	}

	for _, tt := range tests {
		t.Run(tt.use, func(t *testing.T) {
			assert.Equal(t, tt.use, tt.cmd.Use)
			assert.NotEmpty(t, tt.cmd.Short)
			for _, name := range tt.flags {
				assert.NotNil(t, tt.cmd.Flags().Lookup(name), "flag %s", name)
			}
		})
	}

	assert.Contains(t, NewCheckCommand().Aliases, "lint")
}

func TestBuildLintConfig(t *testing.T) {
	cfg := &config.Config{Rules: map[string]string{"NC05": "warning", "NC02": "off"}}

	t.Run("project rules", func(t *testing.T) {
		lintCfg := buildLintConfig(cfg, nil, nil)
		assert.True(t, lintCfg.IsDisabled("NC02"))
		assert.False(t, lintCfg.IsDisabled("NC01"))
		assert.Equal(t, lint.SeverityWarning, lintCfg.SeverityOverrides["NC05"])
	})

	t.Run("disable flag", func(t *testing.T) {
		lintCfg := buildLintConfig(cfg, []string{" nc06 "}, nil)
		assert.True(t, lintCfg.IsDisabled("NC06"))
		assert.False(t, lintCfg.IsDisabled("NC03"))
	})

	t.Run("only flag", func(t *testing.T) {
		lintCfg := buildLintConfig(nil, nil, []string{"NC01"})
		assert.False(t, lintCfg.IsDisabled("NC01"))
		for _, id := range []string{"NC02", "NC03", "NC04", "NC05", "NC06"} {
			assert.True(t, lintCfg.IsDisabled(id), id)
		}
	})
}

func TestValidateRuleIDs(t *testing.T) {
	require.NoError(t, validateRuleIDs([]string{"nc01", "NC06"}))

	err := validateRuleIDs([]string{"NC01", "NC99", "bogus"})
	require.Error(t, err)
	assert.Equal(t, "unknown rule(s): NC99, BOGUS", err.Error())
}

func TestCheck_Passes(t *testing.T) {
	loadSite(t)

	stdout, _, err := execute(t, NewCheckCommand())
	require.NoError(t, err)

	testutil.AssertNoANSI(t, stdout)
	testutil.AssertValidMarkdown(t, stdout)
	assert.Contains(t, stdout, "# Navigation Check")
	assert.Contains(t, stdout, "- [success] NC01 unique-routes")
	assert.Contains(t, stdout, "**Summary:** all 6 rules passed")
}

func TestCheck_Fails(t *testing.T) {
	dir := loadSite(t)
	testutil.WriteFile(t, dir, "docs/orphan.md", "# orphan\n")

	stdout, _, err := execute(t, NewCheckCommand())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCheckFailed))
	assert.Contains(t, err.Error(), "1 of 6 rules reported violations")

	testutil.AssertValidMarkdown(t, stdout)
	assert.Contains(t, stdout, "- [error] NC06 route-coverage: 1 issue")
	assert.Contains(t, stdout, "## NC06 route-coverage")
	assert.Contains(t, stdout, "Navigation structure mismatch:")
	assert.Contains(t, stdout, "  - /orphan (")
}

func TestCheck_JSON(t *testing.T) {
	dir := loadSite(t)
	testutil.WriteFile(t, dir, "docs/orphan.md", "# orphan\n")

	stdout, _, err := execute(t, NewCheckCommand(), "--format", "json")
	require.ErrorIs(t, err, ErrCheckFailed)

	var out output.CheckOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.False(t, out.Passed)
	assert.Equal(t, 6, out.Summary.RulesRun)
	assert.Equal(t, 1, out.Summary.RulesFailed)
	assert.Equal(t, 1, out.Summary.Errors)
	require.Len(t, out.Diagnostics, 1)

	d := out.Diagnostics[0]
	assert.Equal(t, "NC06", d.RuleID)
	assert.Equal(t, string(lint.KindOrphanFile), d.Kind)
	assert.Equal(t, "/orphan", d.Route)
	assert.Equal(t, filepath.Join(dir, "docs", "orphan.md"), d.Path)
}

func TestCheck_DisableAndRule(t *testing.T) {
	dir := loadSite(t)
	testutil.WriteFile(t, dir, "docs/orphan.md", "# orphan\n")

	_, _, err := execute(t, NewCheckCommand(), "--disable", "NC06")
	require.NoError(t, err)

	stdout, _, err := execute(t, NewCheckCommand(), "--rule", "NC01", "-f", "json")
	require.NoError(t, err)

	var out output.CheckOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.True(t, out.Passed)
	require.Len(t, out.Rules, 1)
	assert.Equal(t, "NC01", out.Rules[0].ID)
}

func TestCheck_SeverityThreshold(t *testing.T) {
	dir := testutil.SetupTestSite(t)
	testutil.WriteFile(t, dir, "navcheck.yaml",
		"content_dir: docs\nnav_file: docs/.vitepress/nav.yaml\nrules:\n  NC06: info\n")
	testutil.WriteFile(t, dir, "docs/orphan.md", "# orphan\n")

	config.ResetConfig()
	t.Cleanup(config.ResetConfig)
	_, err := config.LoadConfig(filepath.Join(dir, "navcheck.yaml"), nil)
	require.NoError(t, err)

	// Info findings stay below the default warning threshold.
	_, _, err = execute(t, NewCheckCommand())
	require.NoError(t, err)

	_, _, err = execute(t, NewCheckCommand(), "--severity", "info")
	require.ErrorIs(t, err, ErrCheckFailed)
}

func TestCheck_InvalidInput(t *testing.T) {
	loadSite(t)

	_, _, err := execute(t, NewCheckCommand(), "--disable", "NC42")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown rule(s): NC42")

	_, _, err = execute(t, NewCheckCommand(), "--severity", "fatal")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid severity "fatal"`)
}

func TestCheck_MissingContentDir(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "navcheck.yaml", "content_dir: site\nnav_file: nav.yaml\n")
	testutil.WriteFile(t, dir, "nav.yaml", "nav: []\n")

	config.ResetConfig()
	t.Cleanup(config.ResetConfig)
	_, err := config.LoadConfig(filepath.Join(dir, "navcheck.yaml"), nil)
	require.NoError(t, err)

	_, _, err = execute(t, NewCheckCommand())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content directory does not exist")
	assert.False(t, errors.Is(err, ErrCheckFailed))
}

func TestLinks_JSON(t *testing.T) {
	dir := loadSite(t)
	testutil.WriteFile(t, dir, "docs/.vitepress/nav.yaml",
		testutil.SiteNav+"  /extra/:\n    - items:\n        - link: /extra/missing\n")

	stdout, _, err := execute(t, NewLinksCommand(), "--format", "json")
	require.NoError(t, err)

	var out output.LinksOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, output.LinksSummary{Total: 4, Directories: 1, Files: 3, Missing: 1}, out.Summary)
	require.Len(t, out.Links, 4)
	assert.Equal(t, "/", out.Links[0].Route)

	stdout, _, err = execute(t, NewLinksCommand(), "--format", "json", "--missing")
	require.NoError(t, err)
	out = output.LinksOutput{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	require.Len(t, out.Links, 1)
	assert.Equal(t, "/extra/missing", out.Links[0].Route)
	assert.False(t, out.Links[0].Exists)
}

func TestLinks_Markdown(t *testing.T) {
	loadSite(t)

	stdout, _, err := execute(t, NewLinksCommand())
	require.NoError(t, err)

	testutil.AssertNoANSI(t, stdout)
	assert.Contains(t, stdout, "# Linked Files")
	assert.Contains(t, stdout, "| Route |")
	assert.Contains(t, stdout, "guide/markdown.md")
	assert.Contains(t, stdout, "Summary: 3 links, 1 directories, 2 files, 0 missing")
}

func TestFiles_JSON(t *testing.T) {
	dir := loadSite(t)
	testutil.WriteFile(t, dir, "docs/orphan.md", "# orphan\n")

	stdout, _, err := execute(t, NewFilesCommand(), "-f", "json")
	require.NoError(t, err)

	var out output.FilesOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, output.FilesSummary{Total: 4, Linked: 3, Unlinked: 1}, out.Summary)
	assert.Equal(t, filepath.Join(dir, "docs"), out.ContentDir)

	stdout, _, err = execute(t, NewFilesCommand(), "-f", "json", "--unlinked")
	require.NoError(t, err)
	out = output.FilesOutput{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	require.Len(t, out.Files, 1)
	assert.Equal(t, output.FileEntry{
		Route: "/orphan",
		Title: "orphan",
		Path:  filepath.Join(dir, "docs", "orphan.md"),
	}, out.Files[0])
}

func TestRules_List(t *testing.T) {
	loadSite(t)

	stdout, _, err := execute(t, NewRulesCommand(), "--format", "json")
	require.NoError(t, err)

	var out output.RulesOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, 6, out.Count)
	assert.Equal(t, "NC01", out.Rules[0].ID)
	assert.True(t, out.Rules[0].Enabled)

	stdout, _, err = execute(t, NewRulesCommand(), "--format", "json", "--group", "resolution")
	require.NoError(t, err)
	out = output.RulesOutput{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, 3, out.Count)

	stdout, _, err = execute(t, NewRulesCommand())
	require.NoError(t, err)
	testutil.AssertValidMarkdown(t, stdout)
	assert.Contains(t, stdout, "# Check Rules")
	assert.Contains(t, stdout, "NC06")
}

func TestRules_Show(t *testing.T) {
	loadSite(t)

	stdout, _, err := execute(t, NewRulesCommand(), "nc05", "-f", "json")
	require.NoError(t, err)

	var info output.RuleInfo
	require.NoError(t, json.Unmarshal([]byte(stdout), &info))
	assert.Equal(t, "NC05", info.ID)
	assert.Equal(t, "file-routes", info.Name)
	assert.Equal(t, "Non-directory route validation failed:", info.Title)

	stdout, _, err = execute(t, NewRulesCommand(), "route-coverage")
	require.NoError(t, err)
	testutil.AssertValidMarkdown(t, stdout)
	assert.Contains(t, stdout, "# NC06 - route-coverage")

	_, _, err = execute(t, NewRulesCommand(), "NC99")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `rule "NC99" not found`)
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, NewVersionCommand("1.2.3"))
	require.NoError(t, err)
	assert.Equal(t, "navcheck v1.2.3\nNavigation and content consistency checker\n", stdout)
}

func TestFiles_TitleErrorIsLogged(t *testing.T) {
	dir := loadSite(t)
	testutil.WriteFile(t, dir, "docs/broken.md", "---\ntitle: [unclosed\n---\n")

	logger, logs := testlog.NewCaptureLogger()
	cmd := NewFilesCommand()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"-f", "json", "--unlinked"})
	require.NoError(t, cmd.ExecuteContext(config.WithLogger(context.Background(), logger)))

	var out output.FilesOutput
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	require.Len(t, out.Files, 1)
	assert.Equal(t, "/broken", out.Files[0].Route)
	assert.Empty(t, out.Files[0].Title)

	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "failed to read page title")
}

func TestRenderCheckReport_Modes(t *testing.T) {
	dir := loadSite(t)
	testutil.WriteFile(t, dir, "docs/orphan.md", "# orphan\n")

	cmdCtx := NewCommandContext(NewCheckCommand(), "")
	site, err := cmdCtx.LoadSite()
	require.NoError(t, err)
	report, err := checkSite(cmdCtx, site, lint.NewConfig())
	require.NoError(t, err)

	t.Run("text", func(t *testing.T) {
		tr := testutil.NewTestRenderer(output.ModeText, false)
		require.NoError(t, renderCheckReport(tr.Renderer, report))

		out := tr.Output()
		testutil.AssertNoANSI(t, out)
		assert.Contains(t, out, "Navigation Check")
		assert.Contains(t, out, "NC06  route-coverage")
		assert.Contains(t, out, "(1 issue)")
		assert.Contains(t, out, "      Unlinked files:")
		assert.Contains(t, out, "1 of 6 rules failed, 1 issue, 1 errors")
		assert.Empty(t, tr.ErrorOutput())
	})

	t.Run("markdown", func(t *testing.T) {
		tr := testutil.NewTestRenderer(output.ModeAuto, false)
		require.NoError(t, renderCheckReport(tr.Renderer, report))
		testutil.AssertValidMarkdown(t, tr.Output())
		assert.Contains(t, tr.Output(), "```text\nNavigation structure mismatch:")
	})

	t.Run("filtered below threshold", func(t *testing.T) {
		tr := testutil.NewTestRenderer(output.ModeText, false)
		require.NoError(t, renderCheckReport(tr.Renderer, report.Filter(lint.SeverityError)))
		assert.Contains(t, tr.Output(), "1 of 6 rules failed")
	})
}

func TestCheck_DocsURLFollowsConfig(t *testing.T) {
	t.Cleanup(lint.ResetDocsBaseURL)

	checkDocURL := func(t *testing.T, dir string) string {
		t.Helper()
		testutil.WriteFile(t, dir, "docs/orphan.md", "# orphan\n")
		stdout, _, err := execute(t, NewCheckCommand(), "--format", "json")
		require.ErrorIs(t, err, ErrCheckFailed)

		var out output.CheckOutput
		require.NoError(t, json.Unmarshal([]byte(stdout), &out))
		require.Len(t, out.Diagnostics, 1)
		return out.Diagnostics[0].DocumentationURL
	}

	dir := loadSite(t)
	testutil.WriteFile(t, dir, "navcheck.yaml",
		"content_dir: docs\nnav_file: docs/.vitepress/nav.yaml\ndocs_url: https://docs.example.com/rules/\n")
	config.ResetConfig()
	_, err := config.LoadConfig(filepath.Join(dir, "navcheck.yaml"), nil)
	require.NoError(t, err)

	assert.Equal(t, "https://docs.example.com/rules/nc06.md", checkDocURL(t, dir))

	stdout, _, err := execute(t, NewRulesCommand(), "NC01", "-f", "json")
	require.NoError(t, err)
	assert.Contains(t, stdout, "https://docs.example.com/rules/nc01.md")

	// A later run without docs_url goes back to the default.
	dir = loadSite(t)
	assert.Equal(t, lint.DefaultDocsBaseURL+"/nc06.md", checkDocURL(t, dir))
}
