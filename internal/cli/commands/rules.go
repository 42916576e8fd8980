package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/navcheck/internal/cli/output"
	"github.com/leapstack-labs/navcheck/pkg/lint"
	"github.com/leapstack-labs/navcheck/pkg/lint/routes"
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group   string // Filter by group
	Verbose bool   // Show descriptions and failure titles
	Format  string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List available check rules",
		Long: `List all route consistency rules, grouped by what they check.

Severities reflect the rules map of navcheck.yaml; rules set to "off"
are shown as disabled.`,
		Example: `  # List all rules
  navcheck rules

  # Show details for a specific rule
  navcheck rules NC06

  # List rules in the resolution group
  navcheck rules --group resolution

  # Output as JSON
  navcheck rules --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group: configuration, resolution, coverage")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "V", false, "Show full documentation")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, markdown")

	return cmd
}

// ruleInfos describes the registered rules under the configured levels.
func ruleInfos(lintCfg *lint.Config, group string) []output.RuleInfo {
	var infos []output.RuleInfo
	for _, rule := range routes.GetAll() {
		if group != "" && rule.Group != group {
			continue
		}
		infos = append(infos, output.RuleInfo{
			ID:               rule.ID,
			Name:             rule.Name,
			Group:            rule.Group,
			Description:      rule.Description,
			Title:            rule.Title,
			DefaultSeverity:  rule.Severity.String(),
			Severity:         lintCfg.GetSeverity(rule.ID, rule.Severity).String(),
			Enabled:          !lintCfg.IsDisabled(rule.ID),
			DocumentationURL: lint.BuildDocURL(rule.ID),
		})
	}
	return infos
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	cmdCtx := NewCommandContext(cmd, opts.Format)
	r := cmdCtx.Renderer

	rules := ruleInfos(buildLintConfig(cmdCtx.Cfg, nil, nil), opts.Group)

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(output.RulesOutput{Rules: rules, Count: len(rules)})
	case output.ModeMarkdown:
		listRulesMarkdown(r, rules, opts.Verbose)
	default:
		listRulesText(r, rules, opts.Verbose)
	}
	return nil
}

// listRulesText outputs rules in styled text format.
func listRulesText(r *output.Renderer, rules []output.RuleInfo, verbose bool) {
	styles := r.Styles()
	titleCaser := cases.Title(language.English)

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("Check Rules (%d)", len(rules))))
	r.Println("")

	currentGroup := ""
	for _, rule := range rules {
		if rule.Group != currentGroup {
			currentGroup = rule.Group
			r.Println(styles.Bold.Render("  " + titleCaser.String(currentGroup)))
		}

		level := severityStyle(r, rule.Severity)
		if !rule.Enabled {
			level = styles.Muted.Render("off")
		}
		r.Printf("    %s  %s - %s\n", styles.Muted.Render(rule.ID), rule.Name, level)

		if verbose {
			r.Println(styles.Muted.Render("        " + rule.Description))
			r.Println("")
		}
	}

	r.Println("")
	r.Println(styles.Muted.Render("Use 'navcheck rules <rule-id>' for detailed documentation"))
	r.Println("")
}

// listRulesMarkdown outputs rules in markdown format.
func listRulesMarkdown(r *output.Renderer, rules []output.RuleInfo, verbose bool) {
	titleCaser := cases.Title(language.English)

	r.Println("# Check Rules")
	r.Println("")

	currentGroup := ""
	for _, rule := range rules {
		if rule.Group != currentGroup {
			if currentGroup != "" {
				r.Println("")
			}
			currentGroup = rule.Group
			r.Println("## " + titleCaser.String(currentGroup))
			r.Println("")
		}

		level := rule.Severity
		if !rule.Enabled {
			level = "off"
		}
		r.Printf("- **%s** - %s (`%s`)\n", rule.ID, rule.Name, level)
		if verbose {
			r.Println("  " + rule.Description)
		}
	}

	r.Println("")
}

func showRule(cmd *cobra.Command, ruleID string, opts *RulesOptions) error {
	cmdCtx := NewCommandContext(cmd, opts.Format)
	r := cmdCtx.Renderer

	var rule *output.RuleInfo
	for _, info := range ruleInfos(buildLintConfig(cmdCtx.Cfg, nil, nil), "") {
		if strings.EqualFold(info.ID, ruleID) || info.Name == ruleID {
			rule = &info
			break
		}
	}
	if rule == nil {
		return fmt.Errorf("rule %q not found", ruleID)
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(rule)
	case output.ModeMarkdown:
		r.Printf("# %s - %s\n\n", rule.ID, rule.Name)
		r.Printf("**Group:** %s | **Severity:** `%s` | **Enabled:** %t\n\n", rule.Group, rule.Severity, rule.Enabled)
		r.Println(rule.Description)
		r.Println("")
		r.Println("## Failure Title")
		r.Println("")
		r.Println(output.FormatCodeBlock("text", rule.Title))
		r.Println("")
		r.Println(output.FormatKeyValue("Documentation", rule.DocumentationURL))
	default:
		styles := r.Styles()
		r.Println("")
		r.Println(styles.Header1.Render(fmt.Sprintf("%s - %s", rule.ID, rule.Name)))
		r.Println("")
		r.Printf("  %s: %s\n", styles.Bold.Render("Group"), rule.Group)
		r.Printf("  %s: %s\n", styles.Bold.Render("Severity"), rule.Severity)
		r.Printf("  %s: %t\n", styles.Bold.Render("Enabled"), rule.Enabled)
		r.Println("")
		r.Println(styles.Bold.Render("Description"))
		r.Println("  " + rule.Description)
		r.Println("")
		r.Println(styles.Bold.Render("Failure Title"))
		r.Println(styles.Muted.Render("  " + rule.Title))
		r.Println("")
		r.Printf("  %s: %s\n", styles.Bold.Render("Docs"), rule.DocumentationURL)
	}
	return nil
}

func severityStyle(r *output.Renderer, sev string) string {
	switch sev {
	case "error":
		return r.Styles().Error.Render(sev)
	case "warning":
		return r.Styles().Warning.Render(sev)
	case "info":
		return r.Styles().Info.Render(sev)
	default:
		return r.Styles().Muted.Render(sev)
	}
}
