package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/navcheck/internal/cli/output"
	"github.com/leapstack-labs/navcheck/pkg/lint"
	"github.com/leapstack-labs/navcheck/pkg/lint/routes"
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Format   string   // Output format: text, markdown, json
	Disable  []string // Rule IDs to disable
	Severity string   // Minimum severity: error, warning, info, hint
	Rules    []string // Run only specific rules
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:     "check",
		Aliases: []string{"lint"},
		Short:   "Check navigation links against content files",
		Long: `Cross-check the declared navigation against the content directory.

Every rule runs and reports all of its violations at once:
  NC01  links repeated within topnav or within sidebar
  NC02  links not starting with /
  NC03  topnav links without a directory holding an index file
  NC04  sidebar directory links without an index file
  NC05  file links without a content file
  NC06  content files nobody links to, and links with no file

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Check the site in ./docs
  navcheck check

  # Check another content directory
  navcheck check --content-dir site/docs --nav-file site/nav.yaml

  # Skip the coverage rule
  navcheck check --disable NC06

  # Run only the uniqueness rule, as JSON
  navcheck check --rule NC01 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringVar(&opts.Severity, "severity", "warning", "Minimum severity that fails the check: error, warning, info, hint")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")

	_ = cmd.RegisterFlagCompletionFunc("severity", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"error", "warning", "info", "hint"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runCheck(cmd *cobra.Command, opts *CheckOptions) error {
	cmdCtx := NewCommandContext(cmd, opts.Format)
	r := cmdCtx.Renderer

	if err := validateRuleIDs(append(append([]string{}, opts.Disable...), opts.Rules...)); err != nil {
		return err
	}
	threshold, ok := lint.ParseSeverity(opts.Severity)
	if !ok {
		return fmt.Errorf("invalid severity %q: expected error, warning, info or hint", opts.Severity)
	}

	site, err := cmdCtx.LoadSite()
	if err != nil {
		return err
	}

	report, err := checkSite(cmdCtx, site, buildLintConfig(cmdCtx.Cfg, opts.Disable, opts.Rules))
	if err != nil {
		return err
	}
	report = report.Filter(threshold)

	if err := renderCheckReport(r, report); err != nil {
		return err
	}
	if report.Failed() {
		return fmt.Errorf("%w: %d of %d rules reported violations", ErrCheckFailed, countFailed(report), len(report.Results))
	}
	return nil
}

// checkSite runs the analyzer once against a freshly loaded site.
func checkSite(cmdCtx *CommandContext, site *Site, lintCfg *lint.Config) (*routes.Report, error) {
	analyzerCfg := routes.NewAnalyzerConfigFrom(lintCfg)
	analyzerCfg.Logger = cmdCtx.Logger
	analyzer := routes.NewAnalyzer(analyzerCfg)

	report, err := analyzer.Analyze(site.Context())
	if err != nil {
		return nil, fmt.Errorf("check aborted: %w", err)
	}
	return report, nil
}

func countFailed(report *routes.Report) int {
	n := 0
	for _, res := range report.Results {
		if !res.Passed() {
			n++
		}
	}
	return n
}

func summarize(report *routes.Report) output.CheckSummary {
	summary := output.CheckSummary{
		RulesRun:    len(report.Results),
		RulesFailed: countFailed(report),
	}
	for _, d := range report.Diagnostics() {
		summary.TotalIssues++
		switch d.Severity {
		case lint.SeverityError:
			summary.Errors++
		case lint.SeverityWarning:
			summary.Warnings++
		case lint.SeverityInfo:
			summary.Info++
		case lint.SeverityHint:
			summary.Hints++
		}
	}
	return summary
}

func renderCheckReport(r *output.Renderer, report *routes.Report) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(checkJSON(report))
	case output.ModeMarkdown:
		renderCheckMarkdown(r, report)
	default:
		renderCheckText(r, report)
	}
	return nil
}

func checkJSON(report *routes.Report) output.CheckOutput {
	out := output.CheckOutput{
		Passed:      !report.Failed(),
		Summary:     summarize(report),
		Rules:       make([]output.CheckRule, 0, len(report.Results)),
		Diagnostics: make([]output.CheckDiagnostic, 0),
	}
	for _, res := range report.Results {
		rule := output.CheckRule{
			ID:       res.Rule.ID,
			Name:     res.Rule.Name,
			Severity: res.Severity.String(),
			Passed:   res.Passed(),
			Issues:   len(res.Diagnostics),
		}
		if err := res.Failure(); err != nil {
			rule.Failure = err.Error()
		}
		out.Rules = append(out.Rules, rule)
	}
	for _, d := range report.Diagnostics() {
		out.Diagnostics = append(out.Diagnostics, output.CheckDiagnostic{
			RuleID:           d.RuleID,
			Severity:         d.Severity.String(),
			Kind:             string(d.Kind),
			Route:            d.Route,
			Locations:        d.Locations,
			Reason:           d.Reason,
			Path:             d.Path,
			Message:          d.Message,
			DocumentationURL: d.DocumentationURL,
		})
	}
	return out
}

// ruleStatus maps a rule result to a status line marker.
func ruleStatus(res routes.RuleResult) string {
	if res.Passed() {
		return "success"
	}
	for _, d := range res.Diagnostics {
		if d.Severity == lint.SeverityError {
			return "error"
		}
	}
	return "warning"
}

func issueCount(n int) string {
	if n == 1 {
		return "1 issue"
	}
	return fmt.Sprintf("%d issues", n)
}

func renderCheckText(r *output.Renderer, report *routes.Report) {
	styles := r.Styles()

	r.Println("")
	r.Header(1, "Navigation Check")
	r.Println("")

	for _, res := range report.Results {
		detail := ""
		if !res.Passed() {
			detail = "(" + issueCount(len(res.Diagnostics)) + ")"
		}
		r.StatusLine(res.Rule.ID+"  "+res.Rule.Name, ruleStatus(res), detail)

		if err := res.Failure(); err != nil {
			for _, line := range strings.Split(err.Error(), "\n") {
				r.Println(styles.Muted.Render("      " + line))
			}
		}
	}

	r.Println("")
	r.Println(summaryLine(report))
}

func renderCheckMarkdown(r *output.Renderer, report *routes.Report) {
	r.Println(output.FormatHeader(1, "Navigation Check"))
	r.Println("")

	for _, res := range report.Results {
		detail := ""
		if !res.Passed() {
			detail = issueCount(len(res.Diagnostics))
		}
		r.StatusLine(res.Rule.ID+" "+res.Rule.Name, ruleStatus(res), detail)
	}

	for _, res := range report.Results {
		err := res.Failure()
		if err == nil {
			continue
		}
		r.Println("")
		r.Println(output.FormatHeader(2, res.Rule.ID+" "+res.Rule.Name))
		r.Println("")
		r.Println(output.FormatCodeBlock("text", err.Error()))
	}

	r.Println("")
	r.Println("**Summary:** " + summaryLine(report))
}

func summaryLine(report *routes.Report) string {
	s := summarize(report)
	if s.RulesFailed == 0 {
		return fmt.Sprintf("all %d rules passed", s.RulesRun)
	}

	parts := []string{issueCount(s.TotalIssues)}
	if s.Errors > 0 {
		parts = append(parts, fmt.Sprintf("%d errors", s.Errors))
	}
	if s.Warnings > 0 {
		parts = append(parts, fmt.Sprintf("%d warnings", s.Warnings))
	}
	if s.Info > 0 {
		parts = append(parts, fmt.Sprintf("%d info", s.Info))
	}
	if s.Hints > 0 {
		parts = append(parts, fmt.Sprintf("%d hints", s.Hints))
	}
	return fmt.Sprintf("%d of %d rules failed, %s", s.RulesFailed, s.RulesRun, strings.Join(parts, ", "))
}
