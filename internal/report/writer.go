package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/pwstrength/internal/model"
)

// Writer defines the interface for report output.
type Writer interface {
	// WriteScore outputs a single scoring result.
	// Returns the number of bytes written and any error encountered.
	WriteScore(result *model.ScoreResult) (int, error)

	// WriteGenerations outputs generated passwords in order.
	WriteGenerations(gens []model.Generation) (int, error)

	// WriteHistory outputs a session history export.
	WriteHistory(export *model.HistoryExport) (int, error)
}

// Format names accepted by NewHistoryWriter.
const (
	FormatCSV      = "csv"
	FormatTSV      = "tsv"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatText     = "text"
)

// Formats returns every format name accepted by NewHistoryWriter.
func Formats() []string {
	return []string{FormatCSV, FormatTSV, FormatJSON, FormatMarkdown, FormatText}
}

// NewHistoryWriter selects a writer for history exports by format name.
// The name is case-insensitive and "md" is accepted for markdown.
func NewHistoryWriter(format string, output io.Writer) (Writer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatCSV:
		return NewCSVWriter(output), nil
	case FormatTSV:
		return NewCSVWriter(output, WithDelimiter('\t')), nil
	case FormatJSON:
		return NewJSONWriter(output, WithPrettyPrint()), nil
	case FormatMarkdown, "md":
		return NewMarkdownWriter(output), nil
	case FormatText:
		return NewSimpleWriter(output), nil
	default:
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnknownFormat, format, strings.Join(Formats(), ", "))
	}
}

// FileExtension returns the conventional file extension for a format.
func FileExtension(format string) string {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatTSV:
		return ".tsv"
	case FormatJSON:
		return ".json"
	case FormatMarkdown, "md":
		return ".md"
	case FormatText:
		return ".txt"
	default:
		return ".csv"
	}
}

// MultiWriter writes to multiple Writers in order.
// This is useful for outputting to both terminal and file.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// WriteScore outputs the result to all configured Writers.
// Stops on first error encountered.
func (m *MultiWriter) WriteScore(result *model.ScoreResult) (int, error) {
	return m.each(func(w Writer) (int, error) { return w.WriteScore(result) })
}

// WriteGenerations outputs the generations to all configured Writers.
func (m *MultiWriter) WriteGenerations(gens []model.Generation) (int, error) {
	return m.each(func(w Writer) (int, error) { return w.WriteGenerations(gens) })
}

// WriteHistory outputs the export to all configured Writers.
func (m *MultiWriter) WriteHistory(export *model.HistoryExport) (int, error) {
	return m.each(func(w Writer) (int, error) { return w.WriteHistory(export) })
}

func (m *MultiWriter) each(fn func(Writer) (int, error)) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := fn(w)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// countingWriter counts bytes for writers whose encoders hide the count.
type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}

// timeFormat is used for timestamps in every text format.
const timeFormat = "2006-01-02T15:04:05Z07:00"
