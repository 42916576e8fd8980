package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/leapstack-labs/navcheck/internal/cli"
	"github.com/leapstack-labs/navcheck/internal/cli/commands"
	"github.com/leapstack-labs/navcheck/pkg/lint/routes"
)

// exitCase documents one way a command ends.
type exitCase struct {
	Code    int
	Meaning string
}

// exitStatus lists how each command ends. Commands not listed use defaultExit.
var exitStatus = map[string][]exitCase{
	"check": {
		{0, "Every enabled rule passed at the `--severity` threshold"},
		{1, fmt.Sprintf("Rules reported violations; stderr reads `Error: %s: ...`", commands.ErrCheckFailed)},
		{1, "The configuration, navigation file or content directory could not be read"},
	},
	"watch": {
		{0, "Stopped with Ctrl+C or SIGTERM; failing checks do not stop the watch"},
		{1, "The configuration is invalid or the content directory cannot be watched"},
	},
	"links": {
		{0, "Links were listed, including links without a content file"},
		{1, "The configuration, navigation file or content directory could not be read"},
	},
	"files": {
		{0, "Files were listed, including unlinked files"},
		{1, "The configuration, navigation file or content directory could not be read"},
	},
}

var defaultExit = []exitCase{
	{0, "Success"},
	{1, "Invalid arguments or configuration"},
}

// ruleFlags are flags whose values are rule IDs.
var ruleFlags = []string{"rule", "disable"}

// generateCLIDocs writes one page per command plus an index.
func generateCLIDocs(outDir string) error {
	log.Printf("Generating CLI docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	root := cli.NewRootCmd()
	cmds := documentedCommands(root)

	if err := writePage(outDir, "index.md", cliIndex(root, cmds)); err != nil {
		return err
	}
	for _, cmd := range cmds {
		if err := writePage(outDir, cmd.Name()+".md", commandPage(cmd)); err != nil {
			return fmt.Errorf("failed to generate page for %s: %w", cmd.Name(), err)
		}
	}
	return nil
}

func writePage(outDir, name string, w *MarkdownWriter) error {
	if err := os.WriteFile(filepath.Join(outDir, name), w.Bytes(), 0600); err != nil {
		return err
	}
	log.Printf("  Generated %s", name)
	return nil
}

func documentedCommands(root *cobra.Command) []*cobra.Command {
	var cmds []*cobra.Command
	for _, cmd := range root.Commands() {
		if cmd.Hidden || cmd.Name() == "help" || cmd.Name() == "__complete" {
			continue
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}

func cliIndex(root *cobra.Command, cmds []*cobra.Command) *MarkdownWriter {
	w := NewMarkdownWriter()
	w.Frontmatter("CLI Reference", "Command-line interface reference for navcheck")
	w.GeneratedMarker()

	w.Header(1, "CLI Reference")
	w.Paragraph("navcheck compares a site's declared navigation with the content files on disk. `check` runs the rules once, `watch` re-runs them on every change, and `links`, `files` and `rules` inspect what the rules see.")
	w.CodeBlock("bash", "go install github.com/leapstack-labs/navcheck/cmd/navcheck@latest")

	w.Header(2, "Commands")
	var rows [][]string
	for _, cmd := range cmds {
		link := fmt.Sprintf("[%s](./%s.md)", InlineCode(cmd.Name()), cmd.Name())
		rows = append(rows, []string{link, cleanDescription(cmd.Short), failsOn(cmd.Name())})
	}
	w.Table([]string{"Command", "Description", "Exits 1 when"}, rows)

	w.Header(2, "Global Options")
	w.Paragraph("Every global flag that maps to a `navcheck.yaml` key can also be set through the environment. Flags win over the environment, which wins over the file.")
	w.Table([]string{"Flag", "Config key", "Environment", "Description"}, globalFlagRows(root.PersistentFlags()))

	return w
}

// failsOn summarizes the non-zero exits of a command in one cell.
func failsOn(name string) string {
	var reasons []string
	for _, c := range exitCases(name) {
		if c.Code != 0 {
			reasons = append(reasons, strings.TrimSuffix(c.Meaning, "."))
		}
	}
	return cleanDescription(strings.Join(reasons, "; "))
}

func exitCases(name string) []exitCase {
	if cases, ok := exitStatus[name]; ok {
		return cases
	}
	return defaultExit
}

// globalFlagRows cross-references persistent flags with config keys and
// their NAVCHECK_ variables.
func globalFlagRows(flags *pflag.FlagSet) [][]string {
	keys := make(map[string]string)
	for _, f := range getConfigSchema() {
		if strings.HasPrefix(f.Flag, "--") {
			keys[f.Flag] = f.Name
		}
	}

	var rows [][]string
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		key, env := "-", "-"
		if k, ok := keys["--"+f.Name]; ok {
			key = InlineCode(k)
			env = InlineCode(envName(k))
		}
		rows = append(rows, []string{flagName(f), key, env, cleanDescription(f.Usage)})
	})
	return rows
}

// envName returns the environment variable that sets a config key.
func envName(key string) string {
	return "NAVCHECK_" + strings.ToUpper(strings.ReplaceAll(key, ".", "__"))
}

func flagName(f *pflag.Flag) string {
	name := InlineCode("--" + f.Name)
	if f.Shorthand != "" {
		name += ", " + InlineCode("-"+f.Shorthand)
	}
	return name
}

func commandPage(cmd *cobra.Command) *MarkdownWriter {
	w := NewMarkdownWriter()
	w.Frontmatter(cmd.Name(), cmd.Short)
	w.GeneratedMarker()

	w.Header(1, cmd.Name())
	if cmd.Long != "" {
		w.Paragraph(cmd.Long)
	} else {
		w.Paragraph(cmd.Short)
	}
	w.CodeBlock("bash", cmd.UseLine())

	if cmd.HasLocalFlags() {
		w.Header(2, "Options")
		var rows [][]string
		cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
			if f.Hidden {
				return
			}
			def := "-"
			if f.DefValue != "" && f.DefValue != "[]" {
				def = InlineCode(f.DefValue)
			}
			rows = append(rows, []string{flagName(f), f.Value.Type(), def, cleanDescription(f.Usage)})
		})
		w.Table([]string{"Flag", "Type", "Default", "Description"}, rows)
	}

	if takesRuleIDs(cmd) {
		writeRuleIDs(w)
	}

	w.Header(2, "Exit Status")
	var rows [][]string
	for _, c := range exitCases(cmd.Name()) {
		rows = append(rows, []string{InlineCode(fmt.Sprint(c.Code)), c.Meaning})
	}
	w.Table([]string{"Code", "Meaning"}, rows)

	if cmd.Example != "" {
		w.Header(2, "Examples")
		w.CodeBlock("bash", dedent(cmd.Example))
	}

	w.Paragraph("Global options are listed in the [CLI reference](./index.md#global-options).")
	return w
}

// takesRuleIDs reports whether a command accepts rule IDs, as an argument
// or through a rule flag.
func takesRuleIDs(cmd *cobra.Command) bool {
	if strings.Contains(cmd.Use, "rule-id") {
		return true
	}
	for _, name := range ruleFlags {
		if cmd.LocalFlags().Lookup(name) != nil {
			return true
		}
	}
	return false
}

func writeRuleIDs(w *MarkdownWriter) {
	w.Header(2, "Rule IDs")
	w.Paragraph("Rule IDs are case-insensitive. Unknown IDs are rejected before any rule runs.")
	var rows [][]string
	for _, rule := range routes.GetAll() {
		link := fmt.Sprintf("[%s](../rules/%s)", rule.ID, rulePageName(rule.ID))
		rows = append(rows, []string{link, InlineCode(rule.Name), cleanDescription(rule.Description)})
	}
	w.Table([]string{"ID", "Name", "Checks"}, rows)
}

// dedent strips the indentation shared by every non-blank line.
func dedent(s string) string {
	lines := strings.Split(s, "\n")

	prefix, first := "", true
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if first {
			prefix, first = indent, false
			continue
		}
		for !strings.HasPrefix(indent, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}

	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, prefix)
	}
	return strings.Trim(strings.Join(lines, "\n"), "\n")
}
