package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/pwstrength/internal/model"
)

// History export columns, in order.
var historyHeader = []string{"index", "password", "score", "verdict", "timestamp"}

// CSVWriter outputs delimited text. It is the session history export
// format; scores and generations are written as single-table documents
// too so that CSVWriter satisfies Writer.
type CSVWriter struct {
	baseWriter

	// delimiter separates fields. Defaults to ','.
	delimiter rune

	// header controls whether a header row is written.
	header bool
}

// CSVWriterOption configures a CSVWriter.
type CSVWriterOption func(*CSVWriter)

// WithDelimiter sets the field delimiter, e.g. '\t' for TSV.
func WithDelimiter(delimiter rune) CSVWriterOption {
	return func(w *CSVWriter) {
		w.delimiter = delimiter
	}
}

// WithHeader controls whether a header row is written. Default true.
func WithHeader(header bool) CSVWriterOption {
	return func(w *CSVWriter) {
		w.header = header
	}
}

// NewCSVWriter creates a CSVWriter that outputs to the given writer.
func NewCSVWriter(output io.Writer, opts ...CSVWriterOption) *CSVWriter {
	w := &CSVWriter{
		baseWriter: newBaseWriter(output),
		delimiter:  ',',
		header:     true,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteScore outputs one row: score, verdict, length, entropy, suggestions.
// Suggestions are joined with "; ".
func (w *CSVWriter) WriteScore(result *model.ScoreResult) (int, error) {
	rows := [][]string{{
		strconv.Itoa(result.Score),
		result.Verdict.Slug(),
		strconv.Itoa(result.Length),
		strconv.FormatFloat(result.Entropy, 'f', 2, 64),
		strings.Join(result.Suggestions, "; "),
	}}
	return w.write([]string{"score", "verdict", "length", "entropy", "suggestions"}, rows)
}

// WriteGenerations outputs one row per generated password.
func (w *CSVWriter) WriteGenerations(gens []model.Generation) (int, error) {
	rows := make([][]string, len(gens))
	for i, g := range gens {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			g.Password,
			strconv.Itoa(g.Result.Score),
			g.Result.Verdict.Slug(),
			g.Phase.String(),
			strconv.Itoa(g.Attempts),
		}
	}
	return w.write([]string{"index", "password", "score", "verdict", "phase", "attempts"}, rows)
}

// WriteHistory outputs the export as index,password,score,verdict,timestamp
// rows in commit order. Timestamps are RFC 3339.
func (w *CSVWriter) WriteHistory(export *model.HistoryExport) (int, error) {
	if export == nil {
		return 0, ErrNilExport
	}
	rows := make([][]string, len(export.Records))
	for i, r := range export.Records {
		rows[i] = []string{
			strconv.Itoa(r.Index),
			r.Candidate,
			strconv.Itoa(r.Score),
			r.Verdict.Slug(),
			r.Timestamp.Format(timeFormat),
		}
	}
	return w.write(historyHeader, rows)
}

func (w *CSVWriter) write(header []string, rows [][]string) (int, error) {
	cw := &countingWriter{w: w.output}
	enc := csv.NewWriter(cw)
	enc.Comma = w.delimiter

	if w.header {
		if err := enc.Write(header); err != nil {
			return cw.n, fmt.Errorf("failed to write header: %w", err)
		}
	}
	if err := enc.WriteAll(rows); err != nil {
		return cw.n, fmt.Errorf("failed to write rows: %w", err)
	}
	return cw.n, nil
}
