package nav

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const siteYAML = `
nav:
  - text: Home
    link: /
  - text: Guide
    link: /guide/
  - text: Examples
    link: /examples/
  - text: More
    items:
      - text: Changelog
        link: /changelog

sidebar:
  /guide/:
    - text: Guide
      items:
        - text: Overview
          link: /guide/
        - text: Configuration
          link: /guide/configuration
  /:
    - text: Getting Started
      items:
        - text: Overview
          link: /
        - text: Installation
          link: /installation
  /examples/:
    - text: Examples
      items:
        - text: Overview
          link: /examples/
        - text: Mermaid
          link: /examples/mermaid
`

func TestParse_Structure(t *testing.T) {
	cfg, err := Parse([]byte(siteYAML))
	require.NoError(t, err)

	s := cfg.Structure()
	assert.Equal(t, []string{"/", "/guide/", "/examples/"}, s.TopNav)
	assert.Equal(t, []string{
		"/guide/", "/guide/configuration",
		"/", "/installation",
		"/examples/", "/examples/mermaid",
	}, s.Sidebar)
}

func TestParse_SidebarDeclarationOrder(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{
			name: "yaml",
			doc: `
sidebar:
  /zeta/:
    - items:
        - link: /zeta/
  /alpha/:
    - items:
        - link: /alpha/
  /mid/:
    - items:
        - link: /mid/
`,
			want: []string{"/zeta/", "/alpha/", "/mid/"},
		},
		{
			name: "json under themeConfig",
			doc:  `{"themeConfig": {"sidebar": {"/zeta/": [{"items": [{"link": "/zeta/a"}]}], "/alpha/": [{"items": [{"link": "/alpha/b"}]}]}}}`,
			want: []string{"/zeta/a", "/alpha/b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.doc))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Structure().Sidebar)
		})
	}
}

func TestStructure_UndeclaredSidebarSections(t *testing.T) {
	cfg := &SiteConfig{Sidebar: map[string][]Item{
		"/b/": {{Items: []Item{{Link: "/b/"}}}},
		"/a/": {{Items: []Item{{Link: "/a/"}}}},
	}}
	assert.Equal(t, []string{"/a/", "/b/"}, cfg.Structure().Sidebar)
}

func TestParse_ThemeConfigWrapper(t *testing.T) {
	doc := `{"themeConfig": {"nav": [{"text": "Guide", "link": "/guide/"}], "sidebar": [{"text": "All", "items": [{"text": "A", "link": "/a"}]}]}}`

	cfg, err := Parse([]byte(doc))
	require.NoError(t, err)

	s := cfg.Structure()
	assert.Equal(t, []string{"/guide/"}, s.TopNav)
	assert.Equal(t, []string{"/a"}, s.Sidebar)
}

func TestParse_SkipsObjectSections(t *testing.T) {
	doc := `
sidebar:
  /api/:
    base: /api/
    items:
      - link: /api/one
  /guide/:
    - items:
        - link: /guide/
`
	cfg, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"/guide/"}, cfg.Structure().Sidebar)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		errSubstr string
	}{
		{
			name:      "malformed yaml",
			doc:       "nav: [",
			errSubstr: "failed to parse navigation",
		},
		{
			name:      "sidebar scalar",
			doc:       "sidebar: 42",
			errSubstr: "invalid sidebar",
		},
		{
			name:      "nav item not a mapping",
			doc:       "nav:\n  - /guide/\n",
			errSubstr: "invalid nav",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nav.yaml")
	require.NoError(t, os.WriteFile(path, []byte(siteYAML), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Nav, 4)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read navigation file")
}

func TestStructure_Helpers(t *testing.T) {
	s := Structure{
		TopNav:  []string{"/", "/guide/"},
		Sidebar: []string{"/", "/guide/", "/guide/markdown"},
	}

	assert.Equal(t, []string{"/", "/guide/", "/", "/guide/", "/guide/markdown"}, s.All())
	assert.Equal(t, []string{"/", "/guide/", "/guide/markdown"}, s.Unique())
	assert.Equal(t, []string{LocationTopNav, LocationSidebar}, s.Locations("/guide/"))
	assert.Equal(t, []string{LocationSidebar}, s.Locations("/guide/markdown"))
	assert.Nil(t, s.Locations("/missing"))
	assert.False(t, s.IsEmpty())
	assert.True(t, Structure{}.IsEmpty())
}

func TestDuplicates(t *testing.T) {
	tests := []struct {
		name  string
		links []string
		want  []string
	}{
		{name: "none", links: []string{"/a", "/b"}, want: nil},
		{name: "one repeat", links: []string{"/a", "/b", "/a"}, want: []string{"/a"}},
		{name: "three times", links: []string{"/a", "/a", "/a"}, want: []string{"/a", "/a"}},
		{name: "empty", links: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Duplicates(tt.links))
		})
	}
}

func TestIsDirectoryLink(t *testing.T) {
	assert.False(t, IsDirectoryLink("/"))
	assert.True(t, IsDirectoryLink("/guide/"))
	assert.False(t, IsDirectoryLink("/guide/markdown"))
}
