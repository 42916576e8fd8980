package routes

import (
	"github.com/leapstack-labs/navcheck/pkg/content"
	"github.com/leapstack-labs/navcheck/pkg/lint"
	"github.com/leapstack-labs/navcheck/pkg/nav"
)

// Context provides the data one check run analyzes. It is built fresh for
// every run; nothing read from disk is cached across runs.
type Context struct {
	nav  nav.Structure
	tree *content.Tree

	linked []content.LinkedFile
	routes []string
}

// NewContext creates a context for a navigation structure and a content tree.
func NewContext(structure nav.Structure, tree *content.Tree) *Context {
	return &Context{nav: structure, tree: tree}
}

// Nav returns the declared navigation.
func (c *Context) Nav() nav.Structure {
	return c.nav
}

// Tree returns the content tree.
func (c *Context) Tree() *content.Tree {
	return c.tree
}

// LinkedFiles derives the expected content file of every unique link.
// The result is computed once per context.
func (c *Context) LinkedFiles() ([]content.LinkedFile, error) {
	if c.linked != nil {
		return c.linked, nil
	}
	files, err := c.tree.LinkedFiles(c.nav)
	if err != nil {
		return nil, err
	}
	c.linked = files
	return files, nil
}

// ContentRoutes scans the content tree for the routes it provides.
// The scan runs once per context.
func (c *Context) ContentRoutes() ([]string, error) {
	if c.routes != nil {
		return c.routes, nil
	}
	routes, err := c.tree.Routes()
	if err != nil {
		return nil, err
	}
	if routes == nil {
		routes = []string{}
	}
	c.routes = routes
	return routes, nil
}

// Diagnostic is a single route consistency finding.
type Diagnostic struct {
	RuleID    string
	Severity  lint.Severity
	Kind      lint.Kind
	Route     string   // Offending link path or content route
	Locations []string // Navigation sequences declaring Route, if any
	Reason    string   // Why the route failed, e.g. "directory does not exist: <dir>"
	Path      string   // Concrete file-system location involved
	Message   string   // One human-readable line, without indentation

	DocumentationURL string
}
