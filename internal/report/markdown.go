package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/pwstrength/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// WriteScore outputs the result as a Markdown document.
func (w *MarkdownWriter) WriteScore(result *model.ScoreResult) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Password Strength")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Score", strconv.Itoa(result.Score) + "/" + strconv.Itoa(model.MaxScore)},
			{"Verdict", result.Verdict.String()},
			{"Length", strconv.Itoa(result.Length)},
			{"Entropy", fmt.Sprintf("%.1f bits", result.Entropy)},
		},
	})
	md.PlainText("")
	w.writeAlert(md, result.Verdict)

	if len(result.Suggestions) > 0 {
		md.H2("Suggestions")
		md.PlainText("")
		md.BulletList(result.NumberedSuggestions()...)
		md.PlainText("")
	}

	if len(result.Breakdown) > 0 {
		md.H2("Breakdown")
		md.PlainText("")
		rows := make([][]string, len(result.Breakdown))
		for i, adj := range result.Breakdown {
			rows[i] = []string{adj.Rule, fmt.Sprintf("%+d", adj.Points), adj.Reason}
		}
		md.Table(markdown.TableSet{
			Header: []string{"Rule", "Points", "Reason"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	return len(md.String()), md.Build()
}

// WriteGenerations outputs the generations as a Markdown table.
func (w *MarkdownWriter) WriteGenerations(gens []model.Generation) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Generated Passwords")
	md.PlainText("")

	rows := make([][]string, len(gens))
	for i, g := range gens {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			"`" + g.Password + "`",
			strconv.Itoa(g.Result.Score),
			g.Result.Verdict.String(),
			g.Phase.String(),
			strconv.Itoa(g.Attempts),
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"#", "Password", "Score", "Verdict", "Phase", "Attempts"},
		Rows:   rows,
	})
	md.PlainText("")

	return len(md.String()), md.Build()
}

// WriteHistory outputs the export with a verdict distribution chart.
func (w *MarkdownWriter) WriteHistory(export *model.HistoryExport) (int, error) {
	if export == nil {
		return 0, ErrNilExport
	}
	md := markdown.NewMarkdown(w.output)

	md.H1("Password Session History")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Session", "`" + export.SessionID + "`"},
			{"Exported", export.ExportedAt.Format(timeFormat)},
			{"Records", strconv.Itoa(len(export.Records))},
		},
	})
	md.PlainText("")

	if len(export.Records) == 0 {
		md.Note("No passwords were committed in this session.")
		md.PlainText("")
		return len(md.String()), md.Build()
	}

	w.writePieChart(md, export)
	md.Warningf("This export contains %d raw password(s). Store it securely.", len(export.Records))
	md.PlainText("")

	rows := make([][]string, len(export.Records))
	for i, r := range export.Records {
		rows[i] = []string{
			strconv.Itoa(r.Index),
			"`" + r.Candidate + "`",
			strconv.Itoa(r.Score),
			r.Verdict.String(),
			r.Timestamp.Format(timeFormat),
		}
	}
	md.H2("Records")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"#", "Password", "Score", "Verdict", "Timestamp"},
		Rows:   rows,
	})
	md.PlainText("")
	md.HorizontalRule()

	return len(md.String()), md.Build()
}

// writePieChart writes a mermaid pie chart of the verdict distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, export *model.HistoryExport) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Verdict Distribution"),
		piechart.WithShowData(true),
	)

	counts := export.VerdictCounts()
	for _, v := range model.AllVerdicts() {
		if n := counts[v]; n > 0 {
			chart.LabelAndIntValue(v.String(), uint64(n)) //nolint:gosec // counts are non-negative
		}
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an alert matching the verdict.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, verdict model.Verdict) {
	switch verdict {
	case model.VerdictInvalid:
		md.Cautionf("No password was entered.")
	case model.VerdictVeryWeak:
		md.Cautionf("This password is %s and should not be used.", verdict)
	case model.VerdictWeak:
		md.Warningf("This password is %s.", verdict)
	case model.VerdictModerate:
		md.Importantf("This password is %s. See the suggestions below.", verdict)
	case model.VerdictStrong:
		md.Note("This password is Strong.")
	default:
		md.Tip("This password is Very Strong.")
	}
	md.PlainText("")
}
