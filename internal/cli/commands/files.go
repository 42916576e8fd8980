package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/navcheck/internal/cli/output"
	"github.com/leapstack-labs/navcheck/pkg/content"
)

// FilesOptions holds options for the files command.
type FilesOptions struct {
	Format       string // Output format
	UnlinkedOnly bool   // Show only files no link points to
}

// NewFilesCommand creates the files command.
func NewFilesCommand() *cobra.Command {
	opts := &FilesOptions{}
	cmd := &cobra.Command{
		Use:   "files",
		Short: "List content files and their routes",
		Long: `Scan the content directory and list every content file with the route
it is served at and its title (frontmatter title, else the first heading).
Hidden directories are skipped. A file is linked when
some topnav or sidebar entry declares its route.`,
		Example: `  # All content files
  navcheck files

  # Files missing from the navigation
  navcheck files --unlinked`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFiles(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().BoolVar(&opts.UnlinkedOnly, "unlinked", false, "Show only files not linked from navigation")

	return cmd
}

func runFiles(cmd *cobra.Command, opts *FilesOptions) error {
	cmdCtx := NewCommandContext(cmd, opts.Format)
	r := cmdCtx.Renderer

	site, err := cmdCtx.LoadSite()
	if err != nil {
		return err
	}
	contentRoutes, err := site.Tree.Routes()
	if err != nil {
		return err
	}

	declared := make(map[string]bool)
	for _, route := range site.Nav.Unique() {
		declared[route] = true
	}

	result := output.FilesOutput{
		ContentDir: site.Tree.Root,
		Files:      make([]output.FileEntry, 0, len(contentRoutes)),
	}
	for _, route := range contentRoutes {
		linked := declared[route]
		result.Summary.Total++
		if linked {
			result.Summary.Linked++
		} else {
			result.Summary.Unlinked++
		}
		if opts.UnlinkedOnly && linked {
			continue
		}
		path := site.Tree.ExpectedPath(route)
		title, err := content.PageTitle(path)
		if err != nil {
			cmdCtx.Logger.Warn("failed to read page title", "path", path, "error", err)
		}
		result.Files = append(result.Files, output.FileEntry{
			Route:  route,
			Title:  title,
			Path:   path,
			Linked: linked,
		})
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(result)
	}

	r.Header(1, "Content Files")

	rows := make([]table.Row, 0, len(result.Files))
	for _, f := range result.Files {
		rows = append(rows, table.Row{f.Route, f.Title, relPath(site.Tree.Root, f.Path), existsMark(r, f.Linked)})
	}
	r.Table(table.Row{"Route", "Title", "Path", "Linked"}, rows)

	r.Println("")
	r.Printf("Summary: %d files, %d linked, %d unlinked\n",
		result.Summary.Total, result.Summary.Linked, result.Summary.Unlinked)
	return nil
}
