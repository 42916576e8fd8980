package configuration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/navcheck/pkg/content"
	"github.com/leapstack-labs/navcheck/pkg/lint"
	"github.com/leapstack-labs/navcheck/pkg/lint/routes"
	"github.com/leapstack-labs/navcheck/pkg/nav"
)

func newContext(t *testing.T, s nav.Structure) *routes.Context {
	t.Helper()
	return routes.NewContext(s, content.NewTree(t.TempDir(), ""))
}

func TestNC01_UniqueRoutes(t *testing.T) {
	tests := []struct {
		name         string
		structure    nav.Structure
		wantMessages []string
	}{
		{
			name: "no duplicates",
			structure: nav.Structure{
				TopNav:  []string{"/", "/guide/"},
				Sidebar: []string{"/", "/guide/", "/guide/markdown"},
			},
		},
		{
			name: "repeat across sections is allowed",
			structure: nav.Structure{
				TopNav:  []string{"/examples/"},
				Sidebar: []string{"/examples/"},
			},
		},
		{
			name: "duplicate in sidebar",
			structure: nav.Structure{
				TopNav:  []string{"/", "/examples/"},
				Sidebar: []string{"/examples/", "/examples/mermaid", "/examples/mermaid"},
			},
			wantMessages: []string{`"/examples/mermaid" appears multiple times in sidebar`},
		},
		{
			name: "duplicates in both sections",
			structure: nav.Structure{
				TopNav:  []string{"/guide/", "/guide/", "/guide/"},
				Sidebar: []string{"/a", "/a"},
			},
			wantMessages: []string{
				`"/guide/" appears multiple times in topnav`,
				`"/guide/" appears multiple times in topnav`,
				`"/a" appears multiple times in sidebar`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags, err := checkUniqueRoutes(newContext(t, tt.structure))
			require.NoError(t, err)

			var messages []string
			for _, d := range diags {
				assert.Equal(t, "NC01", d.RuleID)
				assert.Equal(t, lint.KindConfigurationDefect, d.Kind)
				messages = append(messages, d.Message)
			}
			assert.Equal(t, tt.wantMessages, messages)
		})
	}
}

func TestNC01_FailureMessage(t *testing.T) {
	rule, ok := routes.GetByID("NC01")
	require.True(t, ok)

	diags, err := checkUniqueRoutes(newContext(t, nav.Structure{
		TopNav:  []string{"/guide/", "/guide/"},
		Sidebar: []string{"/examples/mermaid", "/examples/mermaid"},
	}))
	require.NoError(t, err)

	failure := routes.NewRuleFailure(rule, diags)
	require.NotNil(t, failure)
	assert.Equal(t,
		"Found duplicate routes in top navigation:\n"+
			"  \"/guide/\" appears multiple times in topnav\n"+
			"Found duplicate routes in sidebar:\n"+
			"  \"/examples/mermaid\" appears multiple times in sidebar",
		failure.Error())
}

func TestNC02_LeadingSlash(t *testing.T) {
	ctx := newContext(t, nav.Structure{
		TopNav:  []string{"/", "guide/"},
		Sidebar: []string{"/guide/markdown", "installation", "guide/"},
	})

	diags, err := checkLeadingSlash(ctx)
	require.NoError(t, err)
	require.Len(t, diags, 3)

	assert.Equal(t, "guide/", diags[0].Route)
	assert.Equal(t, []string{nav.LocationTopNav, nav.LocationSidebar}, diags[0].Locations)
	assert.Equal(t, "installation", diags[1].Route)
	assert.Equal(t, []string{nav.LocationSidebar}, diags[1].Locations)

	rule, ok := routes.GetByID("NC02")
	require.True(t, ok)
	assert.Equal(t,
		"Found routes that don't start with /:\n  \"guide/\"\n  \"installation\"\n  \"guide/\"",
		routes.NewRuleFailure(rule, diags).Error())
}

func TestNC02_AllValid(t *testing.T) {
	diags, err := checkLeadingSlash(newContext(t, nav.Structure{
		TopNav:  []string{"/"},
		Sidebar: []string{"/guide/"},
	}))
	require.NoError(t, err)
	assert.Empty(t, diags)
}
