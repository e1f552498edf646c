package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/nao1215/pwstrength/internal/config"
	applog "github.com/nao1215/pwstrength/internal/log"
)

const (
	logFormatText = "text"
	logFormatJSON = "json"
)

// errUnknownLogFormat is returned for a --log-format other than text or json.
var errUnknownLogFormat = errors.New("unknown log format")

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// getConfigFlag retrieves the config path from the command or its parent.
func getConfigFlag(cmd *cobra.Command) string {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		path, err = cmd.Root().PersistentFlags().GetString("config")
		if err != nil {
			return ""
		}
	}
	return path
}

// getLogFormatFlag retrieves the log format from the command or its parent.
func getLogFormatFlag(cmd *cobra.Command) string {
	format, err := cmd.Flags().GetString("log-format")
	if err != nil {
		format, err = cmd.Root().PersistentFlags().GetString("log-format")
		if err != nil {
			return logFormatText
		}
	}
	return format
}

// setupLogger installs the redacting logger as the slog default.
func setupLogger(cmd *cobra.Command) *slog.Logger {
	logger := applog.NewSecureLogger(cmd.ErrOrStderr(), getVerboseFlag(cmd))
	if getLogFormatFlag(cmd) == logFormatJSON {
		logger = applog.NewSecureJSONLogger(cmd.ErrOrStderr(), getVerboseFlag(cmd))
	}
	slog.SetDefault(logger)
	return logger
}

// applyConfigFile merges the configuration file into cfg. Flags set on the
// command line win over the file. A missing file is an error only when
// its path was given explicitly.
func applyConfigFile(cmd *cobra.Command, cfg *config.Config) error {
	cfg.ConfigFilePath = getConfigFlag(cmd)
	explicitConfigPath := cfg.ConfigFilePath != ""

	path := config.FindConfigFile(cfg.ConfigFilePath)
	if path == "" {
		if explicitConfigPath {
			return fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
		}
		return nil
	}

	file, err := config.LoadConfigFile(path)
	if err != nil {
		return fmt.Errorf("failed to load config file %s: %w", path, err)
	}
	cfg.ApplyFile(file, cmd.Flags().Changed)
	slog.Debug("loaded config file", "path", path)
	return nil
}

// signalContext returns a context cancelled on interrupt or SIGTERM.
func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// isTerminal reports whether r is a terminal. Readers that are not files,
// such as test buffers, never are.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
