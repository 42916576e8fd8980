// Package content maps navigation routes onto a content directory and scans
// that directory for the routes it actually provides.
package content

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/navcheck/pkg/nav"
)

// DefaultExtension is the extension of markdown content files.
const DefaultExtension = ".md"

// indexName is the base name of a section's landing page.
const indexName = "index"

// Kind classifies a linked route.
type Kind string

// Route kinds.
const (
	KindDirectory Kind = "directory"
	KindFile      Kind = "file"
)

// LinkedFile is the content file a declared route expects.
type LinkedFile struct {
	Route        string   `json:"route"`
	Kind         Kind     `json:"type"`
	Locations    []string `json:"location"`
	ExpectedPath string   `json:"expected_path"`
	Exists       bool     `json:"exists"`
}

// Tree is a content root holding files with a single content extension.
type Tree struct {
	Root string
	Ext  string
}

// NewTree creates a tree rooted at root. An empty ext selects markdown.
func NewTree(root, ext string) *Tree {
	if ext == "" {
		ext = DefaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return &Tree{Root: root, Ext: ext}
}

// IndexFile returns the file name of a section landing page, e.g. index.md.
func (t *Tree) IndexFile() string {
	return indexName + t.Ext
}

// ExpectedPath returns the content file a route resolves to:
// the root index for "/", <dir>/index<ext> for directory links and
// <path><ext> for file links.
func (t *Tree) ExpectedPath(route string) string {
	if route == nav.RootRoute {
		return filepath.Join(t.Root, t.IndexFile())
	}
	if nav.IsDirectoryLink(route) {
		_, index := t.DirectoryPaths(route)
		return index
	}
	file, _ := t.FilePaths(route)
	return file
}

// DirectoryPaths returns the directory a route names and its index file.
func (t *Tree) DirectoryPaths(route string) (dir, index string) {
	dir = filepath.Join(t.Root, filepath.FromSlash(strings.TrimSuffix(route, "/")))
	return dir, filepath.Join(dir, t.IndexFile())
}

// FilePaths returns the content file a file route names and its parent directory.
func (t *Tree) FilePaths(route string) (file, parent string) {
	file = filepath.Join(t.Root, filepath.FromSlash(route)+t.Ext)
	return file, filepath.Dir(file)
}

// LinkedFiles derives one record per unique declared route, sorted by route
// using locale-aware comparison. It only probes the file system.
func (t *Tree) LinkedFiles(s nav.Structure) ([]LinkedFile, error) {
	routes := s.Unique()
	files := make([]LinkedFile, 0, len(routes))

	for _, route := range routes {
		kind := KindFile
		if nav.IsDirectoryLink(route) {
			kind = KindDirectory
		}

		expected := t.ExpectedPath(route)
		state, err := Probe(expected)
		if err != nil {
			return nil, err
		}

		files = append(files, LinkedFile{
			Route:        route,
			Kind:         kind,
			Locations:    s.Locations(route),
			ExpectedPath: expected,
			Exists:       state != PathMissing,
		})
	}

	c := collate.New(language.English)
	sort.SliceStable(files, func(i, j int) bool {
		return c.CompareString(files[i].Route, files[j].Route) < 0
	})

	return files, nil
}

// Routes walks the tree and returns the route of every content file, sorted.
// Directories whose name starts with a dot are not descended into. Symbolic
// links are followed; a linked directory is scanned once per real path. The
// scan is repeated on every call.
func (t *Tree) Routes() ([]string, error) {
	var routes []string
	if err := t.walk(t.Root, "", make(map[string]bool), &routes); err != nil {
		return nil, fmt.Errorf("failed to scan content directory %s: %w", t.Root, err)
	}
	sort.Strings(routes)
	return routes, nil
}

// walk collects the routes below dir, which sits at rel inside the tree.
func (t *Tree) walk(dir, rel string, visited map[string]bool, routes *[]string) error {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return err
	}
	if visited[resolved] {
		return nil
	}
	visited[resolved] = true

	return filepath.WalkDir(resolved, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == resolved {
			return nil
		}

		sub, err := filepath.Rel(resolved, path)
		if err != nil {
			return err
		}
		sub = filepath.Join(rel, sub)
		hidden := strings.HasPrefix(d.Name(), ".")

		switch {
		case d.Type()&fs.ModeSymlink != 0:
			info, err := os.Stat(path)
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			if err != nil {
				return err
			}
			if info.IsDir() {
				if hidden {
					return nil
				}
				return t.walk(path, sub, visited, routes)
			}
		case d.IsDir():
			if hidden {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasSuffix(d.Name(), t.Ext) {
			*routes = append(*routes, RouteFor(sub, t.Ext))
		}
		return nil
	})
}

// RouteFor converts a content file path relative to the root into its route.
// A trailing /index collapses to the directory route.
func RouteFor(rel, ext string) string {
	route := "/" + strings.TrimSuffix(filepath.ToSlash(rel), ext)
	if strings.HasSuffix(route, "/"+indexName) {
		route = strings.TrimSuffix(route, indexName)
	}
	return route
}

// PathState is what a file-system probe found.
type PathState int

// Probe results.
const (
	PathMissing PathState = iota
	PathFile
	PathDirectory
)

// String returns the string representation of the state.
func (s PathState) String() string {
	switch s {
	case PathFile:
		return "file"
	case PathDirectory:
		return "directory"
	default:
		return "missing"
	}
}

// Probe stats path. A path below a regular file counts as missing; any
// other stat failure is returned.
func Probe(path string) (PathState, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return PathMissing, nil
		}
		return PathMissing, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return PathDirectory, nil
	}
	return PathFile, nil
}
