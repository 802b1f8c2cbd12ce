package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/PanchamBro/mediawiki-projects-list/internal/model"
)

// JSONWriter outputs outcomes as an indented JSON array. This format is
// intended for scripting and machine consumption.
type JSONWriter struct {
	baseWriter
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer) *JSONWriter {
	return &JSONWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the outcomes as JSON.
func (w *JSONWriter) Write(outcomes []model.Outcome) (int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(outcomes); err != nil {
		return 0, fmt.Errorf("encode JSON report: %w", err)
	}

	n, err := w.output.Write(buf.Bytes())
	if err != nil {
		return n, fmt.Errorf("write JSON report: %w", err)
	}
	return n, nil
}
