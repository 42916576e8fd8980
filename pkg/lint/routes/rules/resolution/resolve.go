package resolution

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/navcheck/pkg/content"
	"github.com/leapstack-labs/navcheck/pkg/lint"
)

// violation describes why a route does not resolve.
type violation struct {
	kind   lint.Kind
	path   string
	reason string
}

// resolveDirectory checks that route names a directory holding an index
// file. It returns nil when the route resolves.
func resolveDirectory(tree *content.Tree, route string) (*violation, error) {
	dir, index := tree.DirectoryPaths(route)
	indexName := tree.IndexFile()

	state, err := content.Probe(dir)
	if err != nil {
		return nil, err
	}
	switch state {
	case content.PathMissing:
		return &violation{lint.KindDanglingLink, dir, "directory does not exist: " + dir}, nil
	case content.PathFile:
		return &violation{lint.KindWrongKind, dir, "path exists but is not a directory: " + dir}, nil
	}

	state, err = content.Probe(index)
	if err != nil {
		return nil, err
	}
	switch state {
	case content.PathMissing:
		return &violation{lint.KindDanglingLink, index,
			fmt.Sprintf("directory exists but missing %s: %s", indexName, index)}, nil
	case content.PathDirectory:
		return &violation{lint.KindWrongKind, index,
			fmt.Sprintf("%s path exists but is not a file: %s", indexName, index)}, nil
	}
	return nil, nil
}

// resolveFile checks that route names an existing content file inside an
// existing directory. It returns nil when the route resolves.
func resolveFile(tree *content.Tree, route string) (*violation, error) {
	file, parent := tree.FilePaths(route)

	state, err := content.Probe(parent)
	if err != nil {
		return nil, err
	}
	switch state {
	case content.PathMissing:
		return &violation{lint.KindDanglingLink, parent, "parent directory does not exist: " + parent}, nil
	case content.PathFile:
		return &violation{lint.KindWrongKind, parent, "parent path exists but is not a directory: " + parent}, nil
	}

	state, err = content.Probe(file)
	if err != nil {
		return nil, err
	}
	switch state {
	case content.PathMissing:
		return &violation{lint.KindDanglingLink, file,
			fmt.Sprintf("%s file does not exist: %s", fileNoun(tree.Ext), file)}, nil
	case content.PathDirectory:
		return &violation{lint.KindWrongKind, file, "path exists but is not a file: " + file}, nil
	}
	return nil, nil
}

// fileNoun names content files in messages.
func fileNoun(ext string) string {
	switch strings.ToLower(ext) {
	case ".md", ".markdown":
		return "markdown"
	default:
		return "content"
	}
}
