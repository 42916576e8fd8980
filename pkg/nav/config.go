package nav

import (
	"fmt"
	"os"
	"sort"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

// Item is a navigation entry. Sidebar groups are items whose Items hold the
// linked pages.
type Item struct {
	Text  string `mapstructure:"text" json:"text,omitempty"`
	Link  string `mapstructure:"link" json:"link,omitempty"`
	Items []Item `mapstructure:"items" json:"items,omitempty"`
}

// SiteConfig is the navigation section of a site configuration.
//
// Sidebar maps a base path to its groups. A sidebar declared as a bare list
// of groups is stored under the empty base path.
type SiteConfig struct {
	Nav     []Item            `json:"nav"`
	Sidebar map[string][]Item `json:"sidebar"`

	// bases holds the sidebar base paths in declaration order.
	bases []string
}

// LoadFile reads a navigation file. JSON is accepted since it is valid YAML.
func LoadFile(path string) (*SiteConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from project config
	if err != nil {
		return nil, fmt.Errorf("failed to read navigation file %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a navigation document. The nav and sidebar keys may sit at
// the top level or under themeConfig.
func Parse(data []byte) (*SiteConfig, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse navigation: %w", err)
	}
	var raw map[string]any
	if len(doc.Content) > 0 {
		if err := doc.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to parse navigation: %w", err)
		}
	}
	if theme, ok := raw["themeConfig"].(map[string]any); ok {
		raw = theme
	}

	cfg := &SiteConfig{Sidebar: make(map[string][]Item)}
	cfg.bases = sidebarKeys(&doc)

	if v, ok := raw["nav"]; ok && v != nil {
		if err := decodeItems(v, &cfg.Nav); err != nil {
			return nil, fmt.Errorf("invalid nav: %w", err)
		}
	}

	switch sidebar := raw["sidebar"].(type) {
	case nil:
	case []any:
		var groups []Item
		if err := decodeItems(sidebar, &groups); err != nil {
			return nil, fmt.Errorf("invalid sidebar: %w", err)
		}
		cfg.Sidebar[""] = groups
		cfg.bases = []string{""}
	case map[string]any:
		for base, section := range sidebar {
			// Object-form sections ({base, items}) carry no group list; skip them.
			list, ok := section.([]any)
			if !ok {
				continue
			}
			var groups []Item
			if err := decodeItems(list, &groups); err != nil {
				return nil, fmt.Errorf("invalid sidebar section %q: %w", base, err)
			}
			cfg.Sidebar[base] = groups
		}
	default:
		return nil, fmt.Errorf("invalid sidebar: expected a mapping or a list, got %T", sidebar)
	}

	return cfg, nil
}

// Structure flattens the configuration into topnav and sidebar links.
// Items without a link are skipped. Sidebar sections are visited in the
// order they were declared, then any others by base path; only the direct
// items of each group contribute links.
func (c *SiteConfig) Structure() Structure {
	var s Structure
	if c == nil {
		return s
	}

	for _, item := range c.Nav {
		if item.Link != "" {
			s.TopNav = append(s.TopNav, item.Link)
		}
	}

	for _, base := range c.sidebarOrder() {
		for _, group := range c.Sidebar[base] {
			for _, item := range group.Items {
				if item.Link != "" {
					s.Sidebar = append(s.Sidebar, item.Link)
				}
			}
		}
	}

	return s
}

// sidebarOrder returns the declared sidebar bases followed by any
// undeclared ones, sorted.
func (c *SiteConfig) sidebarOrder() []string {
	order := make([]string, 0, len(c.Sidebar))
	seen := make(map[string]bool, len(c.Sidebar))
	for _, base := range c.bases {
		if _, ok := c.Sidebar[base]; ok && !seen[base] {
			order = append(order, base)
			seen[base] = true
		}
	}

	var rest []string
	for base := range c.Sidebar {
		if !seen[base] {
			rest = append(rest, base)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}

// sidebarKeys returns the keys of the sidebar mapping in document order,
// looking under themeConfig the way Parse does.
func sidebarKeys(doc *yaml.Node) []string {
	if len(doc.Content) == 0 {
		return nil
	}
	root := doc.Content[0]
	if theme := mappingValue(root, "themeConfig"); theme != nil && theme.Kind == yaml.MappingNode {
		root = theme
	}
	sidebar := mappingValue(root, "sidebar")
	if sidebar == nil || sidebar.Kind != yaml.MappingNode {
		return nil
	}

	keys := make([]string, 0, len(sidebar.Content)/2)
	for i := 0; i+1 < len(sidebar.Content); i += 2 {
		keys = append(keys, sidebar.Content[i].Value)
	}
	return keys
}

func mappingValue(n *yaml.Node, key string) *yaml.Node {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}

func decodeItems(input any, out *[]Item) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out,
		TagName: "mapstructure",
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}
