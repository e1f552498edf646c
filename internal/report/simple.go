package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/pwstrength/internal/model"
)

const ruleWidth = 60

// SimpleWriter outputs human-readable text for terminal display.
type SimpleWriter struct {
	baseWriter

	// verbose adds the per-rule score breakdown.
	verbose bool

	// quiet reduces generation output to one password per line.
	quiet bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with the score breakdown.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// WithQuiet prints generated passwords only.
func WithQuiet(quiet bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.quiet = quiet
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteScore outputs the label, numbered suggestions, and optionally the
// breakdown.
func (w *SimpleWriter) WriteScore(result *model.ScoreResult) (int, error) {
	var sb strings.Builder

	sb.WriteString(result.Label())
	sb.WriteString("\n")
	if result.Valid() {
		sb.WriteString(fmt.Sprintf("Length: %d  Entropy: %.1f bits\n", result.Length, result.Entropy))
	}

	if len(result.Suggestions) > 0 {
		sb.WriteString("Suggestions:\n")
		for _, s := range result.NumberedSuggestions() {
			sb.WriteString("  ")
			sb.WriteString(s)
			sb.WriteString("\n")
		}
	}

	if w.verbose && len(result.Breakdown) > 0 {
		w.writeBreakdown(&sb, result.Breakdown)
	}

	return w.output.Write([]byte(sb.String()))
}

// writeBreakdown writes one line per scoring rule.
func (w *SimpleWriter) writeBreakdown(sb *strings.Builder, breakdown []model.Adjustment) {
	sb.WriteString("Breakdown:\n")
	for _, adj := range breakdown {
		sb.WriteString(fmt.Sprintf("  %-10s %+4d  %s\n", adj.Rule, adj.Points, adj.Reason))
	}
}

// WriteGenerations outputs each password with its label and phase.
func (w *SimpleWriter) WriteGenerations(gens []model.Generation) (int, error) {
	var sb strings.Builder
	for _, g := range gens {
		if w.quiet {
			sb.WriteString(g.Password)
			sb.WriteString("\n")
			continue
		}
		sb.WriteString(fmt.Sprintf("%s  %s", g.Password, g.Result.Label()))
		if w.verbose {
			sb.WriteString(fmt.Sprintf("  (%s, %d attempts)", g.Phase, g.Attempts))
		}
		sb.WriteString("\n")
	}
	return w.output.Write([]byte(sb.String()))
}

// WriteHistory outputs the export as a text table.
func (w *SimpleWriter) WriteHistory(export *model.HistoryExport) (int, error) {
	if export == nil {
		return 0, ErrNilExport
	}

	var sb strings.Builder
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
	sb.WriteString("PASSWORD SESSION HISTORY\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Session:  %s\n", export.SessionID))
	sb.WriteString(fmt.Sprintf("Exported: %s\n", export.ExportedAt.Format(timeFormat)))
	sb.WriteString(fmt.Sprintf("Records:  %d\n\n", len(export.Records)))

	if len(export.Records) == 0 {
		sb.WriteString("  No passwords committed\n")
	}
	for _, r := range export.Records {
		sb.WriteString(fmt.Sprintf("  #%-3d %s  %3d  %-12s %s\n",
			r.Index,
			r.Timestamp.Format(timeFormat),
			r.Score,
			r.Verdict.String(),
			r.Candidate,
		))
	}
	sb.WriteString("\n")

	return w.output.Write([]byte(sb.String()))
}
