package routes

import (
	"sort"
	"sync"

	"github.com/leapstack-labs/navcheck/pkg/lint"
)

// globalRegistry is the single global registry for route rules.
var globalRegistry = &Registry{
	rules: make(map[string]RuleDef),
}

// Registry stores registered route rules for discovery.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]RuleDef // keyed by ID
}

// RuleDef is a route consistency rule definition.
type RuleDef struct {
	ID          string        // Unique identifier, e.g., "NC01"
	Name        string        // Human-readable name, e.g., "unique-routes"
	Group       string        // Category: "configuration", "resolution", "coverage"
	Description string        // Human-readable description
	Title       string        // First line of the failure message
	Severity    lint.Severity // Default severity
	Check       Check         // The check function
	Format      Format        // Optional failure formatter; defaults to Title plus one line per diagnostic
}

// Check is the function signature for route checks. An error means the
// check could not run, not that it found violations.
type Check func(ctx *Context) ([]Diagnostic, error)

// Format renders the failure message of a rule from its diagnostics.
type Format func(rule RuleDef, diags []Diagnostic) string

// Register adds a rule to the global registry.
// Call this from init() functions in rule packages.
func Register(rule RuleDef) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules[rule.ID] = rule
}

// GetAll returns all registered rules ordered by ID.
func GetAll() []RuleDef {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	rules := make([]RuleDef, 0, len(globalRegistry.rules))
	for _, rule := range globalRegistry.rules {
		rules = append(rules, rule)
	}
	sort.Slice(rules, func(i, j int) bool {
		return rules[i].ID < rules[j].ID
	})
	return rules
}

// GetByID returns a rule by its ID.
func GetByID(id string) (RuleDef, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	rule, ok := globalRegistry.rules[id]
	return rule, ok
}

// GetByGroup returns all rules in a specific group ordered by ID.
func GetByGroup(group string) []RuleDef {
	var rules []RuleDef
	for _, rule := range GetAll() {
		if rule.Group == group {
			rules = append(rules, rule)
		}
	}
	return rules
}

// Count returns the number of registered rules.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.rules)
}

// Clear removes all registered rules. Used for testing.
func Clear() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules = make(map[string]RuleDef)
}
