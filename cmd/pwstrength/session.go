package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nao1215/pwstrength/internal/config"
	"github.com/nao1215/pwstrength/internal/generator"
	"github.com/nao1215/pwstrength/internal/model"
	"github.com/nao1215/pwstrength/internal/report"
	"github.com/nao1215/pwstrength/internal/session"
	"github.com/nao1215/pwstrength/internal/strength"
	"github.com/nao1215/pwstrength/internal/tui"
)

// exportTimeLayout names timestamped export files.
const exportTimeLayout = "20060102-150405"

// NewSessionCmd creates the session command.
func NewSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Score passwords interactively and keep a history",
		Long: `Session opens an interactive password checker. Each password is scored as
you type; press enter to commit it to the session history, ctrl+g to
generate one, and ctrl+s to export the history.

When stdin is not a terminal, session reads one password per line,
commits each and prints its score. With --export the history is written
when input ends.

The history lives in memory only and is discarded on exit. Exports
contain the raw passwords.

Examples:
  # Interactive session
  pwstrength session

  # Export to a fixed file as JSON when pressing ctrl+s
  pwstrength session --export history.json --format json

  # Score a list and export it
  pwstrength session --export audit.csv < passwords.txt`,
		Args: cobra.NoArgs,
		RunE: runSessionCmd,
	}

	cmd.Flags().StringP("export", "e", "",
		"Export file path (default: timestamped file in the XDG data directory)")
	cmd.Flags().StringP(config.FlagFormat, "f", config.DefaultExportFormat,
		"Export format: csv, tsv, json, markdown, or text")
	cmd.Flags().IntP(config.FlagLength, "l", config.DefaultLength,
		"Length of generated passwords")

	return cmd
}

// runSessionCmd executes the session command.
func runSessionCmd(cmd *cobra.Command, _ []string) error {
	logger := setupLogger(cmd)

	cfg, err := buildSessionConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyConfigFile(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	defer session.PurgeSecureMemory()

	history := session.New(
		session.WithMaskRune(cfg.MaskRune),
		session.WithLogger(logger),
	)
	logger.Debug("session started", "session_id", history.ID())

	if !isTerminal(cmd.InOrStdin()) {
		return runLineSession(cmd, cfg, history)
	}

	ctx, cancel := signalContext(cmd)
	defer cancel()

	worker := generator.NewWorker(generator.WithWorkerLogger(logger))
	return tui.Run(ctx, history, worker, tui.Config{
		Length:   cfg.Length,
		MaskRune: cfg.MaskRune,
		Export: func(export *model.HistoryExport) (string, error) {
			return exportHistory(cfg, export)
		},
		Logger: logger,
	})
}

// buildSessionConfig creates a Config from the session command flags.
func buildSessionConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.ExportFile, err = cmd.Flags().GetString("export")
	if err != nil {
		return nil, err
	}
	cfg.ExportFormat, err = cmd.Flags().GetString(config.FlagFormat)
	if err != nil {
		return nil, err
	}
	cfg.Length, err = cmd.Flags().GetInt(config.FlagLength)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// runLineSession commits one candidate per input line and prints its
// score. The history is exported at end of input when --export is set.
func runLineSession(cmd *cobra.Command, cfg *config.Config, history *session.History) error {
	out := cmd.OutOrStdout()

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		entry, err := history.Commit(strings.TrimSuffix(scanner.Text(), "\r"))
		if errors.Is(err, session.ErrEmptyCandidate) {
			invalid := strength.Invalid()
			fmt.Fprintln(out, invalid.Label())
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to commit password: %w", err)
		}
		writeEntry(out, entry)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}

	if cfg.ExportFile == "" {
		return nil
	}
	export, err := history.Export()
	if err != nil {
		return fmt.Errorf("failed to export history: %w", err)
	}
	path, err := exportHistory(cfg, export)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d passwords to %s\n", len(export.Records), path)
	return nil
}

// writeEntry prints a committed entry with its numbered suggestions.
func writeEntry(out io.Writer, entry session.Entry) {
	fmt.Fprintf(out, "#%d %s\n", entry.Sequence, scoreLabel(entry.Score, entry.Verdict))
	for i, s := range entry.Suggestions {
		fmt.Fprintf(out, "  %d. %s\n", i+1, s)
	}
}

// exportHistory writes export in the configured format and returns the
// file path. Without an explicit file, a timestamped file is created in
// the export directory.
func exportHistory(cfg *config.Config, export *model.HistoryExport) (string, error) {
	path := cfg.ExportFile
	if path == "" {
		name := "history-" + export.ExportedAt.Format(exportTimeLayout) + report.FileExtension(cfg.ExportFormat)
		path = filepath.Join(cfg.ExportDir, name)
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return "", fmt.Errorf("failed to create directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided export path is intentional
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}

	writer, err := report.NewHistoryWriter(cfg.ExportFormat, f)
	if err != nil {
		_ = f.Close()
		return "", err
	}
	if _, err := writer.WriteHistory(export); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close export file: %w", err)
	}

	slog.Info("exported session history",
		"path", path,
		"format", cfg.ExportFormat,
		"records", len(export.Records),
	)
	return path, nil
}
