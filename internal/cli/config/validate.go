package config

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/leapstack-labs/navcheck/pkg/lint"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.ContentDir, validation.Required),
		validation.Field(&c.NavFile, validation.Required),
		validation.Field(&c.Extension, validation.Required),
		validation.Field(&c.OutputFormat,
			validation.In("auto", "text", "markdown", "json").Error("expected auto, text, markdown or json")),
		validation.Field(&c.Rules, validation.By(validateRuleLevels)),
		validation.Field(&c.Watch),
	)
}

// Validate checks the watch settings.
func (w WatchConfig) Validate() error {
	return validation.ValidateStruct(&w,
		validation.Field(&w.Debounce, validation.Min(time.Duration(0))),
	)
}

func validateRuleLevels(value any) error {
	rules, _ := value.(map[string]string)
	for _, id := range slices.Sorted(maps.Keys(rules)) {
		level := rules[id]
		if level == "off" {
			continue
		}
		if _, ok := lint.ParseSeverity(level); !ok {
			return fmt.Errorf("invalid level %q for rule %s: expected off, error, warning, info or hint", level, id)
		}
	}
	return nil
}

// ValidateDirectories checks that the content directory and navigation file exist.
func (c *Config) ValidateDirectories() error {
	info, err := os.Stat(c.ContentDir)
	if os.IsNotExist(err) {
		return fmt.Errorf("content directory does not exist: %s\nHint: Create the directory or use --content-dir to specify a different path", c.ContentDir)
	}
	if err != nil {
		return fmt.Errorf("failed to stat content directory %s: %w", c.ContentDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("content path is not a directory: %s", c.ContentDir)
	}

	if _, err := os.Stat(c.NavFile); os.IsNotExist(err) {
		return fmt.Errorf("navigation file does not exist: %s\nHint: Use --nav-file to point at the site's navigation file", c.NavFile)
	}
	return nil
}

// LintConfig builds the rule configuration from the rules map.
func (c *Config) LintConfig() *lint.Config {
	cfg := lint.NewConfig()
	for id, level := range c.Rules {
		cfg.Apply(id, level)
	}
	return cfg
}
