package content

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

type pageMeta struct {
	Title string `yaml:"title" toml:"title" json:"title"`
}

// PageTitle returns the title of a content file: the frontmatter title,
// else the text of the first level-1 heading, else "".
func PageTitle(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the content tree
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	var meta pageMeta
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		return "", fmt.Errorf("failed to parse frontmatter of %s: %w", path, err)
	}
	if title := strings.TrimSpace(meta.Title); title != "" {
		return title, nil
	}
	return firstHeading(body), nil
}

func firstHeading(source []byte) string {
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
			title = inlineText(h, source)
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return title
}

// inlineText concatenates the text segments below n.
func inlineText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := c.(*ast.Text); ok {
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}
