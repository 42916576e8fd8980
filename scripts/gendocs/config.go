package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/navcheck/internal/cli/config"
)

// ConfigField represents a navcheck.yaml key.
type ConfigField struct {
	Name        string
	Type        string
	Default     string
	Description string
	Flag        string
}

// getConfigSchema returns the keys of navcheck.yaml.
// This is based on internal/cli/config/types.go Config.
func getConfigSchema() []ConfigField {
	return []ConfigField{
		{Name: "content_dir", Type: "string", Default: config.DefaultContentDir, Description: "Directory holding the content files", Flag: "--content-dir"},
		{Name: "nav_file", Type: "string", Default: config.DefaultNavFile, Description: "YAML or JSON file declaring nav and sidebar", Flag: "--nav-file"},
		{Name: "extension", Type: "string", Default: config.DefaultExtension, Description: "Extension of content files", Flag: "--ext"},
		{Name: "output", Type: "string", Default: config.DefaultOutput, Description: "Output format: auto, text, markdown, json", Flag: "--output"},
		{Name: "verbose", Type: "bool", Default: "false", Description: "Debug logging on stderr", Flag: "--verbose"},
		{Name: "docs_url", Type: "string", Description: "Base URL of the rule documentation linked from findings"},
		{Name: "rules", Type: "map[string]string", Description: "Rule ID to level: off, error, warning, info, hint"},
		{Name: "watch.debounce", Type: "duration", Default: config.DefaultDebounce.String(), Description: "Quiet period before the watch command re-checks", Flag: "watch --debounce"},
	}
}

// generateConfigDocs generates the configuration reference page.
func generateConfigDocs(outDir string) error {
	log.Printf("Generating config docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	w := NewMarkdownWriter()

	w.Frontmatter("Configuration", "navcheck configuration reference")
	w.GeneratedMarker()

	w.Header(1, "Configuration")
	w.Paragraph("navcheck reads `navcheck.yaml` (or `navcheck.yml`) from the project root, searching upward from the working directory. Relative paths resolve against the directory holding the file.")

	w.Header(2, "Keys")
	var rows [][]string
	for _, f := range getConfigSchema() {
		defVal := "-"
		if f.Default != "" {
			defVal = InlineCode(f.Default)
		}
		flagName := "-"
		if f.Flag != "" {
			flagName = InlineCode(f.Flag)
		}
		rows = append(rows, []string{InlineCode(f.Name), f.Type, defVal, flagName, f.Description})
	}
	w.Table([]string{"Key", "Type", "Default", "Flag", "Description"}, rows)

	w.Header(2, "Precedence")
	w.BulletList([]string{
		"Command-line flags",
		"`NAVCHECK_` environment variables (`__` separates nested keys)",
		"`navcheck.yaml`",
		"Built-in defaults",
	})

	w.Header(2, "Example")
	w.CodeBlock("yaml", `content_dir: docs
nav_file: docs/.vitepress/nav.yaml
extension: .md
rules:
  NC06: warning   # report unlinked files without failing
  NC02: off       # allow relative links
watch:
  debounce: 300ms`)

	filename := filepath.Join(outDir, "configuration.md")
	if err := os.WriteFile(filename, w.Bytes(), 0600); err != nil {
		return err
	}
	log.Printf("  Generated configuration.md")
	return nil
}
