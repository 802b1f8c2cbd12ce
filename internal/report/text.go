package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/PanchamBro/mediawiki-projects-list/internal/model"
)

// TextWriter outputs outcomes in a compact human-readable format, one
// block per input. This is the default CLI output.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the outcomes as text.
func (w *TextWriter) Write(outcomes []model.Outcome) (int, error) {
	var b strings.Builder

	for i, o := range outcomes {
		if i > 0 {
			b.WriteString("\n")
		}
		writeTextOutcome(&b, o)
	}

	n, err := io.WriteString(w.output, b.String())
	if err != nil {
		return n, fmt.Errorf("write text report: %w", err)
	}
	return n, nil
}

// writeTextOutcome renders a single outcome block.
func writeTextOutcome(b *strings.Builder, o model.Outcome) {
	fmt.Fprintf(b, "%s\n", o.Input)

	switch {
	case o.Err != "":
		fmt.Fprintf(b, "  error:        %s\n", o.Err)
	case o.Project != nil:
		p := o.Project
		fmt.Fprintf(b, "  project:      %s (%s)\n", p.WikiProject.Name, p.WikiProject.WikiFarm)
		fmt.Fprintf(b, "  article path: %s\n", p.FullArticlePath)
		fmt.Fprintf(b, "  script path:  %s\n", p.FullScriptPath)
		if o.IDString != "" {
			fmt.Fprintf(b, "  id string:    %s\n", o.IDString)
		}
	case o.Proxy != nil:
		p := o.Proxy
		fmt.Fprintf(b, "  proxy:        %s\n", p.FrontendProxy.Name)
		fmt.Fprintf(b, "  name path:    %s\n", p.FullNamePath)
		fmt.Fprintf(b, "  article path: %s\n", p.FullArticlePath)
		fmt.Fprintf(b, "  script path:  %s\n", p.FullScriptPath)
	default:
		b.WriteString("  no matching wiki project or frontend proxy\n")
	}
}
