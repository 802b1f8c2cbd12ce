// Package main provides the entry point for the wikiresolve CLI.
package main

import (
	"fmt"
	"os"

	"github.com/PanchamBro/mediawiki-projects-list/internal/catalog"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for wikiresolve.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wikiresolve",
		Short: "Resolve URLs against the known-wiki catalog",
		Long: `wikiresolve resolves URLs and path fragments against a catalog of known
MediaWiki installations and frontend proxies.

It reports the matched project or proxy with its normalized article and
script paths, converts between URLs and compact id strings, and derives
link fixes for proxied pages.

The catalog is read from --catalog, from wikiprojects.yaml in the current
or home directory, or from the XDG config directory; the embedded default
catalog is used when no file is found.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("catalog", "c", "", "Catalog file path (default: wikiprojects.yaml lookup)")

	// Add subcommands
	cmd.AddCommand(NewResolveCmd())
	cmd.AddCommand(NewProxyCmd())
	cmd.AddCommand(NewEncodeCmd())
	cmd.AddCommand(NewDecodeCmd())
	cmd.AddCommand(NewFixLinkCmd())
	cmd.AddCommand(NewCatalogCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadCatalog loads the catalog selected by the --catalog flag, falling
// back through the standard search locations to the embedded default.
func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	path, err := cmd.Flags().GetString("catalog")
	if err != nil {
		path, _ = cmd.Root().PersistentFlags().GetString("catalog")
	}

	if found := catalog.Find(path); found != "" {
		c, err := catalog.Load(found)
		if err != nil {
			return nil, fmt.Errorf("load catalog %s: %w", found, err)
		}
		return c, nil
	}
	if path != "" {
		return nil, fmt.Errorf("%w: %s", catalog.ErrCatalogNotFound, path)
	}

	return catalog.LoadDefault()
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}
