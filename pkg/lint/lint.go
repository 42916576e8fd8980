// Package lint defines the contracts shared by navcheck's rule packages:
// severities, finding kinds and rule configuration.
//
// Rule implementations and the analyzer live in pkg/lint/routes and its
// rules subpackages so that this package stays free of import cycles.
package lint

import "strings"

// Severity indicates the importance of a diagnostic.
type Severity int

// Severity levels for diagnostics.
const (
	// SeverityError indicates a defect that fails the check.
	SeverityError Severity = iota
	// SeverityWarning indicates a potential issue that should be reviewed.
	SeverityWarning
	// SeverityInfo indicates informational feedback.
	SeverityInfo
	// SeverityHint indicates a suggestion for improvement.
	SeverityHint
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	case SeverityHint:
		return "hint"
	default:
		return "unknown"
	}
}

// ParseSeverity converts a severity name. Matching is case-insensitive.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return SeverityError, true
	case "warning", "warn":
		return SeverityWarning, true
	case "info":
		return SeverityInfo, true
	case "hint":
		return SeverityHint, true
	default:
		return SeverityWarning, false
	}
}

// Kind classifies what is wrong between the navigation and the content tree.
type Kind string

// Finding kinds.
const (
	// KindConfigurationDefect is a duplicate link or a link without a leading slash.
	KindConfigurationDefect Kind = "configuration-defect"
	// KindDanglingLink is a declared link whose content file does not exist.
	KindDanglingLink Kind = "dangling-link"
	// KindOrphanFile is a content file no declared link points to.
	KindOrphanFile Kind = "orphan-file"
	// KindWrongKind is a path that exists with the wrong file-system type.
	KindWrongKind Kind = "wrong-kind"
)
