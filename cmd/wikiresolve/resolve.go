package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/PanchamBro/mediawiki-projects-list/internal/batch"
	"github.com/PanchamBro/mediawiki-projects-list/internal/log"
	"github.com/PanchamBro/mediawiki-projects-list/internal/report"
	"github.com/PanchamBro/mediawiki-projects-list/internal/resolver"
	"github.com/spf13/cobra"
)

// errConflictingFormats is returned when both --json and --markdown are
// requested. Only one output format can be used at a time.
var errConflictingFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

// NewResolveCmd creates the resolve command.
func NewResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <url>...",
		Short: "Resolve URLs against the project and proxy catalogs",
		Long: `Resolve matches each input against the wiki project catalog first and the
frontend proxy catalog second, reporting normalized article and script
paths for every match.

Examples:
  # Resolve a single URL
  wikiresolve resolve https://en.wikipedia.org/wiki/Capybara

  # Resolve several URLs concurrently with a Markdown report
  wikiresolve resolve --markdown https://gta.fandom.com/wiki/GTA https://antifandom.com/gta/wiki/GTA

  # Write a JSON report to a file
  wikiresolve resolve --json --output report.json https://dev.miraheze.org/wiki/Main_Page`,
		Args: cobra.MinimumNArgs(1),
		RunE: runResolveCmd,
	}

	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().IntP("concurrency", "n", batch.DefaultConcurrency,
		"Number of concurrent resolutions")

	return cmd
}

// runResolveCmd executes the resolve command.
func runResolveCmd(cmd *cobra.Command, args []string) error {
	jsonOut, _ := cmd.Flags().GetBool("json")
	markdownOut, _ := cmd.Flags().GetBool("markdown")
	if jsonOut && markdownOut {
		return errConflictingFormats
	}
	outputPath, _ := cmd.Flags().GetString("output")
	concurrency, _ := cmd.Flags().GetInt("concurrency")

	logger := log.NewLogger(cmd.ErrOrStderr(), getVerboseFlag(cmd))

	cat, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	processor := batch.NewProcessor(resolver.New(cat),
		batch.WithConcurrency(concurrency),
		batch.WithLogger(logger),
	)
	outcomes, err := processor.Resolve(cmd.Context(), args)
	if err != nil {
		return err
	}

	out, closeOut, err := openOutput(cmd.OutOrStdout(), outputPath)
	if err != nil {
		return err
	}
	defer closeOut()

	var w report.Writer
	switch {
	case jsonOut:
		w = report.NewJSONWriter(out)
	case markdownOut:
		w = report.NewMarkdownWriter(out)
	default:
		w = report.NewTextWriter(out)
	}
	if _, err := w.Write(outcomes); err != nil {
		return err
	}
	return nil
}

// openOutput returns the report destination: the given default writer, or
// a freshly created file when path is set. The returned func closes the
// file if one was opened.
func openOutput(def io.Writer, path string) (io.Writer, func(), error) {
	if path == "" {
		return def, func() {}, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, nil, fmt.Errorf("create report directory: %w", err)
		}
	}
	f, err := os.Create(path) //nolint:gosec // User-provided report path is intentional
	if err != nil {
		return nil, nil, fmt.Errorf("create report file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
