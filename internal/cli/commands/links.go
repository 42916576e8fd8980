package commands

import (
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/navcheck/internal/cli/output"
	"github.com/leapstack-labs/navcheck/pkg/content"
)

// LinksOptions holds options for the links command.
type LinksOptions struct {
	Format      string // Output format
	MissingOnly bool   // Show only links without a content file
}

// NewLinksCommand creates the links command.
func NewLinksCommand() *cobra.Command {
	opts := &LinksOptions{}
	cmd := &cobra.Command{
		Use:   "links",
		Short: "List every navigation link and the file it expects",
		Long: `List each unique link declared in topnav or sidebar with its kind,
where it is declared, the content file it resolves to and whether that
file exists. Links are sorted by route.`,
		Example: `  # Table of all links
  navcheck links

  # Only links whose file is missing
  navcheck links --missing

  # As JSON
  navcheck links --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLinks(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().BoolVar(&opts.MissingOnly, "missing", false, "Show only links without a content file")

	return cmd
}

func runLinks(cmd *cobra.Command, opts *LinksOptions) error {
	cmdCtx := NewCommandContext(cmd, opts.Format)
	r := cmdCtx.Renderer

	site, err := cmdCtx.LoadSite()
	if err != nil {
		return err
	}
	links, err := site.Tree.LinkedFiles(site.Nav)
	if err != nil {
		return err
	}

	summary := output.LinksSummary{Total: len(links)}
	shown := make([]content.LinkedFile, 0, len(links))
	for _, l := range links {
		if l.Kind == content.KindDirectory {
			summary.Directories++
		} else {
			summary.Files++
		}
		if !l.Exists {
			summary.Missing++
		}
		if opts.MissingOnly && l.Exists {
			continue
		}
		shown = append(shown, l)
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(output.LinksOutput{Links: shown, Summary: summary})
	}

	r.Header(1, "Linked Files")

	rows := make([]table.Row, 0, len(shown))
	for _, l := range shown {
		rows = append(rows, table.Row{
			l.Route,
			string(l.Kind),
			strings.Join(l.Locations, ", "),
			relPath(site.Tree.Root, l.ExpectedPath),
			existsMark(r, l.Exists),
		})
	}
	r.Table(table.Row{"Route", "Type", "Location", "Expected Path", "Exists"}, rows)

	r.Println("")
	r.Printf("Summary: %d links, %d directories, %d files, %d missing\n",
		summary.Total, summary.Directories, summary.Files, summary.Missing)
	return nil
}

// relPath shows path relative to root when possible.
func relPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}

func existsMark(r *output.Renderer, exists bool) string {
	if r.EffectiveMode() == output.ModeMarkdown {
		if exists {
			return "yes"
		}
		return "no"
	}
	if exists {
		return r.Styles().Success.Render("✓")
	}
	return r.Styles().Error.Render("✗")
}
