// Package config provides configuration management for the navcheck CLI.
//
// Configuration is layered with koanf: built-in defaults, then navcheck.yaml
// (or navcheck.yml), then NAVCHECK_ environment variables, then flags that
// were set explicitly on the command line.
package config

import "time"

// Config holds all CLI configuration options.
type Config struct {
	ContentDir   string            `koanf:"content_dir" json:"content_dir"`
	NavFile      string            `koanf:"nav_file" json:"nav_file"`
	Extension    string            `koanf:"extension" json:"extension"`
	Verbose      bool              `koanf:"verbose" json:"verbose"`
	OutputFormat string            `koanf:"output" json:"output"`
	DocsURL      string            `koanf:"docs_url" json:"docs_url,omitempty"`
	Rules        map[string]string `koanf:"rules" json:"rules,omitempty"` // rule ID -> off|error|warning|info|hint
	Watch        *WatchConfig      `koanf:"watch" json:"watch,omitempty"`

	// ProjectRoot is the directory relative paths were resolved against.
	ProjectRoot string `koanf:"-" json:"-"`
}

// WatchConfig holds configuration for the watch command.
type WatchConfig struct {
	Debounce time.Duration `koanf:"debounce" json:"debounce"`
}

// Default configuration values.
const (
	DefaultContentDir = "docs"
	DefaultNavFile    = "docs/.vitepress/nav.yaml"
	DefaultExtension  = ".md"
	DefaultOutput     = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultDebounce   = 200 * time.Millisecond
)

// configFileNames are the config files searched for, in order.
var configFileNames = []string{"navcheck.yaml", "navcheck.yml"}

// GetWatchConfig returns the watch config with defaults applied for any unset values.
func (c *Config) GetWatchConfig() *WatchConfig {
	if c.Watch == nil {
		return &WatchConfig{Debounce: DefaultDebounce}
	}
	w := *c.Watch
	if w.Debounce <= 0 {
		w.Debounce = DefaultDebounce
	}
	return &w
}
