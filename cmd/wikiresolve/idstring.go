package main

import (
	"fmt"
	"net/url"

	"github.com/PanchamBro/mediawiki-projects-list/internal/resolver"
	"github.com/spf13/cobra"
)

// NewEncodeCmd creates the encode command.
func NewEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <url>",
		Short: "Encode a wiki URL into its compact id string",
		Long: `Encode converts a URL into the compact id string of the matching catalog
entry, if that entry defines an id-string codec.

Example:
  wikiresolve encode https://wow.huijiwiki.com/wiki/Main_Page`,
		Args: cobra.ExactArgs(1),
		RunE: runEncodeCmd,
	}
}

// runEncodeCmd executes the encode command.
func runEncodeCmd(cmd *cobra.Command, args []string) error {
	u, err := url.Parse(args[0])
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}

	cat, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	id, ok := resolver.New(cat).EncodeIDString(u)
	if !ok {
		return fmt.Errorf("no id string for %q", args[0])
	}
	fmt.Fprintln(cmd.OutOrStdout(), id)
	return nil
}

// NewDecodeCmd creates the decode command.
func NewDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <id-string> <project-name>",
		Short: "Decode a compact id string back into a wiki URL",
		Long: `Decode converts an id string and its project name back into the script
URL the id encodes.

Example:
  wikiresolve decode wow huijiwiki.com`,
		Args: cobra.ExactArgs(2),
		RunE: runDecodeCmd,
	}
}

// runDecodeCmd executes the decode command.
func runDecodeCmd(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	u, err := resolver.New(cat).DecodeIDString(args[0], args[1])
	if err != nil {
		return err
	}
	if u == nil {
		return fmt.Errorf("id string %q does not decode for project %q", args[0], args[1])
	}
	fmt.Fprintln(cmd.OutOrStdout(), u.String())
	return nil
}
