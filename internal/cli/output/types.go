package output

import "github.com/leapstack-labs/navcheck/pkg/content"

// CheckOutput is the JSON output of the check command.
type CheckOutput struct {
	Passed      bool              `json:"passed"`
	Summary     CheckSummary      `json:"summary"`
	Rules       []CheckRule       `json:"rules"`
	Diagnostics []CheckDiagnostic `json:"diagnostics"`
}

// CheckSummary counts rules and findings of one run.
type CheckSummary struct {
	RulesRun    int `json:"rules_run"`
	RulesFailed int `json:"rules_failed"`
	TotalIssues int `json:"total_issues"`
	Errors      int `json:"errors"`
	Warnings    int `json:"warnings"`
	Info        int `json:"info"`
	Hints       int `json:"hints"`
}

// CheckRule is the outcome of one rule.
type CheckRule struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Severity string `json:"severity"`
	Passed   bool   `json:"passed"`
	Issues   int    `json:"issues"`
	Failure  string `json:"failure,omitempty"`
}

// CheckDiagnostic is a single finding.
type CheckDiagnostic struct {
	RuleID           string   `json:"rule_id"`
	Severity         string   `json:"severity"`
	Kind             string   `json:"kind"`
	Route            string   `json:"route"`
	Locations        []string `json:"locations,omitempty"`
	Reason           string   `json:"reason,omitempty"`
	Path             string   `json:"path,omitempty"`
	Message          string   `json:"message"`
	DocumentationURL string   `json:"documentation_url,omitempty"`
}

// LinksOutput is the JSON output of the links command.
type LinksOutput struct {
	Links   []content.LinkedFile `json:"links"`
	Summary LinksSummary         `json:"summary"`
}

// LinksSummary counts linked files.
type LinksSummary struct {
	Total       int `json:"total"`
	Directories int `json:"directories"`
	Files       int `json:"files"`
	Missing     int `json:"missing"`
}

// FilesOutput is the JSON output of the files command.
type FilesOutput struct {
	ContentDir string       `json:"content_dir"`
	Files      []FileEntry  `json:"files"`
	Summary    FilesSummary `json:"summary"`
}

// FileEntry is one content file and its route.
type FileEntry struct {
	Route  string `json:"route"`
	Title  string `json:"title,omitempty"`
	Path   string `json:"path"`
	Linked bool   `json:"linked"`
}

// FilesSummary counts content files.
type FilesSummary struct {
	Total    int `json:"total"`
	Linked   int `json:"linked"`
	Unlinked int `json:"unlinked"`
}

// RuleInfo describes a registered rule.
type RuleInfo struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Group            string `json:"group"`
	Description      string `json:"description"`
	Title            string `json:"title"`
	DefaultSeverity  string `json:"default_severity"`
	Severity         string `json:"severity"`
	Enabled          bool   `json:"enabled"`
	DocumentationURL string `json:"documentation_url"`
}

// RulesOutput is the JSON output of the rules command.
type RulesOutput struct {
	Rules []RuleInfo `json:"rules"`
	Count int        `json:"count"`
}
