package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for pwstrength.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pwstrength",
		Short: "Password strength scorer and generator",
		Long: `pwstrength rates passwords on a 0-100 scale with a verdict and concrete
suggestions, and generates passwords that reach the maximum score.

Nothing is stored on disk unless you export a session history. Exports
contain the raw passwords, so treat them as secrets.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch f := getLogFormatFlag(cmd); f {
			case logFormatText, logFormatJSON:
				return nil
			default:
				return fmt.Errorf("%w: %q (want %s or %s)", errUnknownLogFormat, f, logFormatText, logFormatJSON)
			}
		},
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .pwstrength in current directory, XDG config, or home)")
	cmd.PersistentFlags().String("log-format", logFormatText, "Log format on stderr: text or json")

	// Add subcommands
	cmd.AddCommand(NewScoreCmd())
	cmd.AddCommand(NewGenerateCmd())
	cmd.AddCommand(NewSessionCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
