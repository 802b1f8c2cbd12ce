package main

import (
	"fmt"
	"io"
	"os"

	"github.com/PanchamBro/mediawiki-projects-list/internal/resolver"
	"github.com/PanchamBro/mediawiki-projects-list/internal/rewrite"
	"github.com/spf13/cobra"
)

// NewFixLinkCmd creates the fixlink command.
func NewFixLinkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fixlink <page-url> [href]",
		Short: "Fix relative links stripped by a frontend proxy",
		Long: `Fixlink derives the link fixer for the frontend proxy serving page-url.

With an href argument it prints the fixed link target. With --html it
instead reads an HTML document from the given file (or stdin when the
path is "-"), rewrites every root-relative anchor, and writes the result
to stdout.

Examples:
  wikiresolve fixlink https://antifandom.com/gta/wiki/Main_Page /Vehicles
  wikiresolve fixlink --html page.html https://antifandom.com/gta/wiki/Main_Page`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runFixLinkCmd,
	}

	cmd.Flags().String("html", "",
		`Rewrite an HTML document instead of a single href ("-" for stdin)`)

	return cmd
}

// runFixLinkCmd executes the fixlink command.
func runFixLinkCmd(cmd *cobra.Command, args []string) error {
	pageURL := args[0]
	htmlPath, _ := cmd.Flags().GetString("html")

	cat, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	fix := resolver.New(cat).LinkFixer(pageURL)
	if fix == nil {
		return fmt.Errorf("no link fix applies to %q", pageURL)
	}

	if htmlPath != "" {
		var in io.Reader = cmd.InOrStdin()
		if htmlPath != "-" {
			f, err := os.Open(htmlPath) //nolint:gosec // User-provided document path is intentional
			if err != nil {
				return err
			}
			defer f.Close() //nolint:errcheck // Read-only file
			in = f
		}
		return rewrite.Document(cmd.OutOrStdout(), in, fix, pageURL)
	}

	if len(args) < 2 {
		return fmt.Errorf("href argument required unless --html is used")
	}
	fmt.Fprintln(cmd.OutOrStdout(), fix(args[1], pageURL))
	return nil
}
