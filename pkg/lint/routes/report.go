package routes

import (
	"errors"
	"strings"

	"github.com/leapstack-labs/navcheck/pkg/lint"
)

// RuleResult is the outcome of one rule in one run.
type RuleResult struct {
	Rule        RuleDef
	Severity    lint.Severity // Effective severity after overrides
	Diagnostics []Diagnostic
}

// Passed reports whether the rule found no violations.
func (r RuleResult) Passed() bool {
	return len(r.Diagnostics) == 0
}

// Failure returns the rule's failure, or nil when it passed.
func (r RuleResult) Failure() error {
	if r.Passed() {
		return nil
	}
	return &RuleFailure{Rule: r.Rule, Diagnostics: r.Diagnostics}
}

// Report collects the results of every rule that ran.
type Report struct {
	Results []RuleResult
}

// Failed reports whether any rule found violations.
func (r *Report) Failed() bool {
	for _, res := range r.Results {
		if !res.Passed() {
			return true
		}
	}
	return false
}

// Diagnostics returns the findings of all rules in rule order.
func (r *Report) Diagnostics() []Diagnostic {
	var diags []Diagnostic
	for _, res := range r.Results {
		diags = append(diags, res.Diagnostics...)
	}
	return diags
}

// Err joins the failures of all failing rules. It is nil when every rule passed.
func (r *Report) Err() error {
	var errs []error
	for _, res := range r.Results {
		if err := res.Failure(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Filter returns a report keeping only diagnostics at or above threshold.
// Rules keep their place in the report even when all findings are dropped.
func (r *Report) Filter(threshold lint.Severity) *Report {
	filtered := &Report{Results: make([]RuleResult, 0, len(r.Results))}
	for _, res := range r.Results {
		var diags []Diagnostic
		for _, d := range res.Diagnostics {
			if d.Severity <= threshold {
				diags = append(diags, d)
			}
		}
		filtered.Results = append(filtered.Results, RuleResult{
			Rule:        res.Rule,
			Severity:    res.Severity,
			Diagnostics: diags,
		})
	}
	return filtered
}

// RuleFailure is the single failure a rule raises for all its violations.
type RuleFailure struct {
	Rule        RuleDef
	Diagnostics []Diagnostic
}

// NewRuleFailure returns the failure of rule for diags, or nil when diags is empty.
func NewRuleFailure(rule RuleDef, diags []Diagnostic) *RuleFailure {
	if len(diags) == 0 {
		return nil
	}
	return &RuleFailure{Rule: rule, Diagnostics: diags}
}

// Error renders the multi-line failure message.
func (f *RuleFailure) Error() string {
	if f.Rule.Format != nil {
		return f.Rule.Format(f.Rule, f.Diagnostics)
	}
	return FormatList(f.Rule.Title, f.Diagnostics)
}

// FormatList renders a title line followed by one indented line per diagnostic.
func FormatList(title string, diags []Diagnostic) string {
	var b strings.Builder
	b.WriteString(title)
	for _, d := range diags {
		b.WriteString("\n  ")
		b.WriteString(d.Message)
	}
	return b.String()
}
