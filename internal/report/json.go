package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/pwstrength/internal/model"
)

// JSONWriter outputs reports in JSON format.
// This format is designed for tool integration and programmatic processing.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteScore outputs the result in JSON format.
func (w *JSONWriter) WriteScore(result *model.ScoreResult) (int, error) {
	return w.writeJSON(result)
}

// WriteGenerations outputs the generations as a JSON array.
func (w *JSONWriter) WriteGenerations(gens []model.Generation) (int, error) {
	if gens == nil {
		gens = []model.Generation{}
	}
	return w.writeJSON(gens)
}

// WriteHistory outputs the export in JSON format.
func (w *JSONWriter) WriteHistory(export *model.HistoryExport) (int, error) {
	if export == nil {
		return 0, ErrNilExport
	}
	if export.Records == nil {
		copied := *export
		copied.Records = []model.HistoryRecord{}
		export = &copied
	}
	return w.writeJSON(export)
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
