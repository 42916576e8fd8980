package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/navcheck/pkg/lint"
	"github.com/leapstack-labs/navcheck/pkg/lint/routes"
	_ "github.com/leapstack-labs/navcheck/pkg/lint/routes/rules" // register route rules
)

// groupOrder lists rule groups in the order they are documented.
var groupOrder = []string{"configuration", "resolution", "coverage"}

// groupDescriptions provides human-readable descriptions for rule groups.
var groupDescriptions = map[string]string{
	"configuration": "Rules about the declared links themselves, before any file is consulted.",
	"resolution":    "Rules that resolve each declared link to a directory or file on disk.",
	"coverage":      "Rules that compare the set of linked routes with the content files present.",
}

// generateRulesDocs generates the rules reference page.
func generateRulesDocs(outDir string) error {
	log.Printf("Generating rules docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	rules := routes.GetAll()
	titleCaser := cases.Title(language.English)

	w := NewMarkdownWriter()

	w.Frontmatter("Rules", "Navigation consistency rules checked by navcheck")
	w.GeneratedMarker()

	w.Header(1, "Rules")
	w.Paragraph(fmt.Sprintf("navcheck runs **%d rules**. Every rule reports all of its violations in one run.", len(rules)))

	w.Header(2, "Severity Levels")
	w.Table(
		[]string{"Severity", "Description"},
		[][]string{
			{InlineCode(lint.SeverityError.String()), "Fails the check"},
			{InlineCode(lint.SeverityWarning.String()), "Fails the check at the default threshold"},
			{InlineCode(lint.SeverityInfo.String()), "Reported with `--severity info`"},
			{InlineCode(lint.SeverityHint.String()), "Reported with `--severity hint`"},
		},
	)

	var summary [][]string
	for _, rule := range rules {
		link := fmt.Sprintf("[%s](./%s)", rule.ID, rulePageName(rule.ID))
		summary = append(summary, []string{link, InlineCode(rule.Name), titleCaser.String(rule.Group), cleanDescription(rule.Description)})
	}
	w.Header(2, "Overview")
	w.Table([]string{"ID", "Name", "Group", "Description"}, summary)

	for _, group := range groupOrder {
		groupRules := routes.GetByGroup(group)
		if len(groupRules) == 0 {
			continue
		}

		w.Line(anchor(2, titleCaser.String(group), group))
		w.Newline()
		if desc, ok := groupDescriptions[group]; ok {
			w.Paragraph(desc)
		}

		for _, rule := range groupRules {
			writeRuleDoc(w, rule)
		}
	}

	filename := filepath.Join(outDir, "index.md")
	if err := os.WriteFile(filename, w.Bytes(), 0600); err != nil {
		return err
	}
	log.Printf("  Generated index.md")

	// One page per rule, linked from findings via lint.BuildDocURL
	for _, rule := range rules {
		page := NewMarkdownWriter()
		page.Frontmatter(rule.ID+" "+rule.Name, cleanDescription(rule.Description))
		page.GeneratedMarker()
		writeRuleDoc(page, rule)

		name := rulePageName(rule.ID)
		if err := os.WriteFile(filepath.Join(outDir, name), page.Bytes(), 0600); err != nil {
			return err
		}
		log.Printf("  Generated %s", name)
	}
	return nil
}

// rulePageName is the file name of a rule's page, matching lint.BuildDocURL.
func rulePageName(id string) string {
	return strings.ToLower(id) + ".md"
}

// writeRuleDoc writes detailed documentation for a single rule.
func writeRuleDoc(w *MarkdownWriter, rule routes.RuleDef) {
	// Rule header with anchor: ### NC01 - unique-routes {#NC01}
	w.Line(anchor(3, rule.ID+" - "+rule.Name, rule.ID))
	w.Newline()

	w.Line(fmt.Sprintf("**Severity:** %s", InlineCode(rule.Severity.String())))
	w.Newline()

	w.Paragraph(rule.Description)

	w.Header(4, "Failure Message")
	w.CodeBlock("text", rule.Title)

	w.Header(4, "Configuration")
	w.CodeBlock("yaml", fmt.Sprintf("rules:\n  %s: off", rule.ID))

	// Horizontal rule between rules for readability
	w.Line("---")
	w.Newline()
}
