package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/navcheck/internal/cli/config"
	"github.com/leapstack-labs/navcheck/internal/cli/output"
	"github.com/leapstack-labs/navcheck/pkg/content"
	"github.com/leapstack-labs/navcheck/pkg/lint"
	"github.com/leapstack-labs/navcheck/pkg/lint/routes"
	_ "github.com/leapstack-labs/navcheck/pkg/lint/routes/rules" // register route rules
	"github.com/leapstack-labs/navcheck/pkg/nav"
)

// ErrCheckFailed is returned when a check run reports failing rules.
var ErrCheckFailed = errors.New("navigation check failed")

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the loaded configuration.
// A non-empty format overrides the configured output mode.
func NewCommandContext(cmd *cobra.Command, format string) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	applyDocsURL(cfg.DocsURL)

	mode := output.Mode(cfg.OutputFormat)
	if format != "" {
		mode = output.Mode(format)
	}

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode),
	}
}

// applyDocsURL points rule documentation links at url, or back at the
// default when url is empty.
func applyDocsURL(url string) {
	if url == "" {
		lint.ResetDocsBaseURL()
		return
	}
	lint.SetDocsBaseURL(url)
}

// Site is the navigation and content tree of one check run.
type Site struct {
	Nav  nav.Structure
	Tree *content.Tree
}

// Context builds a fresh route check context for the site.
func (s *Site) Context() *routes.Context {
	return routes.NewContext(s.Nav, s.Tree)
}

// LoadSite reads the navigation file and opens the content tree. It runs
// on every check; nothing is cached between runs.
func (c *CommandContext) LoadSite() (*Site, error) {
	if err := c.Cfg.ValidateDirectories(); err != nil {
		return nil, err
	}

	siteCfg, err := nav.LoadFile(c.Cfg.NavFile)
	if err != nil {
		return nil, err
	}
	s := siteCfg.Structure()
	c.Logger.Debug("navigation loaded",
		"file", c.Cfg.NavFile,
		"topnav", len(s.TopNav),
		"sidebar", len(s.Sidebar))

	return &Site{
		Nav:  s,
		Tree: content.NewTree(c.Cfg.ContentDir, c.Cfg.Extension),
	}, nil
}

// Helper functions shared across commands

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	// Fallback: read from environment with defaults
	return &config.Config{
		ContentDir:   getEnvOrDefault("NAVCHECK_CONTENT_DIR", config.DefaultContentDir),
		NavFile:      getEnvOrDefault("NAVCHECK_NAV_FILE", config.DefaultNavFile),
		Extension:    getEnvOrDefault("NAVCHECK_EXTENSION", config.DefaultExtension),
		Verbose:      os.Getenv("NAVCHECK_VERBOSE") == "true",
		OutputFormat: os.Getenv("NAVCHECK_OUTPUT"),
		DocsURL:      os.Getenv("NAVCHECK_DOCS_URL"),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// splitIDs trims and upper-cases rule IDs given on the command line.
func splitIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.ToUpper(strings.TrimSpace(id)); id != "" {
			out = append(out, id)
		}
	}
	return out
}

// buildLintConfig merges the rules map of the project config with CLI flags.
// CLI flags take precedence.
func buildLintConfig(cfg *config.Config, disable, only []string) *lint.Config {
	lintCfg := lint.NewConfig()
	if cfg != nil {
		lintCfg = cfg.LintConfig()
	}

	for _, id := range splitIDs(disable) {
		lintCfg.Disable(id)
	}

	// If --rule specified, disable all others
	if enabled := splitIDs(only); len(enabled) > 0 {
		enabledSet := make(map[string]bool, len(enabled))
		for _, id := range enabled {
			enabledSet[id] = true
		}
		for _, rule := range routes.GetAll() {
			if !enabledSet[rule.ID] {
				lintCfg.Disable(rule.ID)
			}
		}
	}

	return lintCfg
}

// validateRuleIDs reports IDs that name no registered rule.
func validateRuleIDs(ids []string) error {
	var unknown []string
	for _, id := range splitIDs(ids) {
		if _, ok := routes.GetByID(id); !ok {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("unknown rule(s): %s", strings.Join(unknown, ", "))
	}
	return nil
}
