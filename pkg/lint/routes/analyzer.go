package routes

import (
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/navcheck/pkg/lint"
)

// Analyzer runs route rules against a check context.
type Analyzer struct {
	config        *AnalyzerConfig
	disabledRules map[string]bool
	logger        *slog.Logger
}

// AnalyzerConfig holds configuration for the route analyzer.
type AnalyzerConfig struct {
	// DisabledRules contains rule IDs to skip
	DisabledRules map[string]bool

	// SeverityOverrides changes the default severity of rules
	SeverityOverrides map[string]lint.Severity

	// Logger receives per-rule debug output. Nil discards it.
	Logger *slog.Logger
}

// NewAnalyzerConfig creates a default configuration.
func NewAnalyzerConfig() *AnalyzerConfig {
	return &AnalyzerConfig{
		DisabledRules:     make(map[string]bool),
		SeverityOverrides: make(map[string]lint.Severity),
	}
}

// NewAnalyzerConfigFrom builds an analyzer configuration from a lint.Config.
func NewAnalyzerConfigFrom(cfg *lint.Config) *AnalyzerConfig {
	ac := NewAnalyzerConfig()
	if cfg == nil {
		return ac
	}
	for id, disabled := range cfg.DisabledRules {
		ac.DisabledRules[id] = disabled
	}
	for id, sev := range cfg.SeverityOverrides {
		ac.SeverityOverrides[id] = sev
	}
	return ac
}

// NewAnalyzer creates a new route analyzer with optional configuration.
func NewAnalyzer(config *AnalyzerConfig) *Analyzer {
	if config == nil {
		config = NewAnalyzerConfig()
	}
	if config.DisabledRules == nil {
		config.DisabledRules = make(map[string]bool)
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Analyzer{
		config:        config,
		disabledRules: config.DisabledRules,
		logger:        logger,
	}
}

// Analyze runs every enabled rule, in ID order, against ctx. Rules run one
// after another and each reports independently. A returned error is a
// file-system failure that stopped the run.
func (a *Analyzer) Analyze(ctx *Context) (*Report, error) {
	report := &Report{}
	if ctx == nil {
		return report, nil
	}

	for _, rule := range GetAll() {
		if a.isDisabled(rule.ID) {
			a.logger.Debug("rule disabled", "rule", rule.ID)
			continue
		}

		diags, err := rule.Check(ctx)
		if err != nil {
			return nil, fmt.Errorf("rule %s (%s): %w", rule.ID, rule.Name, err)
		}

		// Apply severity overrides
		for i := range diags {
			diags[i].Severity = a.getSeverity(rule.ID, diags[i].Severity)
		}

		a.logger.Debug("rule checked", "rule", rule.ID, "name", rule.Name, "violations", len(diags))
		report.Results = append(report.Results, RuleResult{
			Rule:        rule,
			Severity:    a.getSeverity(rule.ID, rule.Severity),
			Diagnostics: diags,
		})
	}

	return report, nil
}

// Name returns the analyzer name.
func (a *Analyzer) Name() string {
	return "route-consistency"
}

func (a *Analyzer) isDisabled(ruleID string) bool {
	return a.disabledRules[ruleID]
}

func (a *Analyzer) getSeverity(ruleID string, defaultSev lint.Severity) lint.Severity {
	if a.config != nil {
		if sev, ok := a.config.SeverityOverrides[ruleID]; ok {
			return sev
		}
	}
	return defaultSev
}

// Disable disables a rule by ID.
func (a *Analyzer) Disable(ruleID string) {
	a.disabledRules[ruleID] = true
}

// Enable enables a previously disabled rule.
func (a *Analyzer) Enable(ruleID string) {
	delete(a.disabledRules, ruleID)
}
