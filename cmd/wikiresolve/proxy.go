package main

import (
	"fmt"

	"github.com/PanchamBro/mediawiki-projects-list/internal/resolver"
	"github.com/spf13/cobra"
)

// NewProxyCmd creates the proxy command.
func NewProxyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "proxy <url>",
		Short: "Resolve a URL against the frontend proxy catalog only",
		Long: `Proxy matches the input against the frontend proxy catalog, skipping the
wiki project catalog entirely, and prints the expanded name, article, and
script paths.

Example:
  wikiresolve proxy https://antifandom.com/gta/wiki/Main_Page`,
		Args: cobra.ExactArgs(1),
		RunE: runProxyCmd,
	}
}

// runProxyCmd executes the proxy command.
func runProxyCmd(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	res, err := resolver.New(cat).ResolveFrontendProxy(args[0])
	if err != nil {
		return err
	}
	if res == nil {
		return fmt.Errorf("no frontend proxy matches %q", args[0])
	}

	fmt.Fprintf(cmd.OutOrStdout(), "proxy:        %s\n", res.FrontendProxy.Name)
	fmt.Fprintf(cmd.OutOrStdout(), "name path:    %s\n", res.FullNamePath)
	fmt.Fprintf(cmd.OutOrStdout(), "article path: %s\n", res.FullArticlePath)
	fmt.Fprintf(cmd.OutOrStdout(), "script path:  %s\n", res.FullScriptPath)
	return nil
}
