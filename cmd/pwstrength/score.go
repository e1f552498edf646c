package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nao1215/pwstrength/internal/config"
	"github.com/nao1215/pwstrength/internal/model"
	"github.com/nao1215/pwstrength/internal/report"
	"github.com/nao1215/pwstrength/internal/strength"
)

var (
	// errNoCandidates is returned when score has nothing to read.
	errNoCandidates = errors.New("no password given: pass it as an argument or pipe it on stdin")

	// errBelowMinEntropy is returned when a candidate fails --min-entropy.
	errBelowMinEntropy = errors.New("password below minimum entropy")

	// errBelowRequiredVerdict is returned when a candidate fails --require.
	errBelowRequiredVerdict = errors.New("password below required verdict")
)

// NewScoreCmd creates the score command.
func NewScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score [password...]",
		Short: "Score password strength",
		Long: `Score rates each password from 0 to 100 and prints its verdict and
suggestions for improvement.

Passwords are read from the arguments, or one per line from stdin when
no arguments are given. Prefer stdin: arguments end up in shell history.

Examples:
  # Score a password from stdin
  echo 'correct horse battery staple' | pwstrength score

  # Show how each rule contributed
  pwstrength score --explain 'Qz8!mK3#pW5$'

  # Fail unless the password has at least 60 bits of entropy
  pwstrength score --min-entropy 60 < passwords.txt

  # Fail unless every password is rated strong or better
  pwstrength score --require strong < passwords.txt

  # Show the built-in list of common passwords
  pwstrength score --list-common`,
		Args: cobra.ArbitraryArgs,
		RunE: runScoreCmd,
	}

	cmd.Flags().BoolP("json", "j", false,
		"Output JSON (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown (mutually exclusive with --json)")
	cmd.Flags().BoolP("explain", "e", false,
		"Show the per-rule score breakdown")
	cmd.Flags().Float64(config.FlagMinEntropy, 0,
		"Fail when a password has fewer bits of entropy than this (0 disables)")
	cmd.Flags().StringP("require", "r", "",
		"Fail when a password is rated below this verdict (very_weak, weak, moderate, strong, very_strong)")
	cmd.Flags().Bool("list-common", false,
		"Print the common passwords that are penalized and exit")

	return cmd
}

// runScoreCmd executes the score command.
func runScoreCmd(cmd *cobra.Command, args []string) error {
	listCommon, err := cmd.Flags().GetBool("list-common")
	if err != nil {
		return err
	}
	if listCommon {
		for _, pw := range strength.CommonPasswords() {
			fmt.Fprintln(cmd.OutOrStdout(), pw)
		}
		return nil
	}

	cfg, err := buildScoreConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	required, err := requiredVerdict(cmd)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	logger := setupLogger(cmd)

	candidates := args
	if len(candidates) == 0 {
		if isTerminal(cmd.InOrStdin()) {
			return errNoCandidates
		}
		candidates, err = readLines(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		if len(candidates) == 0 {
			return errNoCandidates
		}
	}

	out := cmd.OutOrStdout()
	writer := newScoreWriter(cfg, out, len(candidates))

	failed, rejected := 0, 0
	for i, candidate := range candidates {
		result := strength.Score(candidate)
		logger.Debug("scored candidate", "index", i+1, "score", result.Score, "verdict", result.Verdict.String())

		if i > 0 && !cfg.JSONReport {
			fmt.Fprintln(out)
		}
		if _, err := writer.WriteScore(&result); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
		if cfg.Explain && !cfg.JSONReport && !cfg.MarkdownReport && result.Valid() {
			fmt.Fprintf(out, "Validator entropy: %.1f bits\n", strength.ValidatorEntropy(candidate))
		}

		if err := strength.CheckMinEntropy(candidate, cfg.MinEntropy); err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "password %d: %v\n", i+1, err)
		}
		if required != model.VerdictInvalid && result.Verdict < required {
			rejected++
			fmt.Fprintf(cmd.ErrOrStderr(), "password %d: rated %s, %s required\n", i+1, result.Verdict, required)
		}
	}

	if rejected > 0 {
		return fmt.Errorf("%w: %d of %d below %s", errBelowRequiredVerdict, rejected, len(candidates), required)
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d below %.0f bits", errBelowMinEntropy, failed, len(candidates), cfg.MinEntropy)
	}
	return nil
}

// buildScoreConfig creates a Config from the score command flags.
func buildScoreConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}
	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}
	cfg.Explain, err = cmd.Flags().GetBool("explain")
	if err != nil {
		return nil, err
	}
	cfg.MinEntropy, err = cmd.Flags().GetFloat64(config.FlagMinEntropy)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// requiredVerdict parses --require. It returns VerdictInvalid when the
// flag is not set.
func requiredVerdict(cmd *cobra.Command) (model.Verdict, error) {
	raw, err := cmd.Flags().GetString("require")
	if err != nil {
		return model.VerdictInvalid, err
	}
	if raw == "" {
		return model.VerdictInvalid, nil
	}
	v, err := model.ParseVerdict(raw)
	if err != nil {
		return model.VerdictInvalid, err
	}
	if v == model.VerdictInvalid {
		return model.VerdictInvalid, fmt.Errorf("verdict %q cannot be required", raw)
	}
	return v, nil
}

// newScoreWriter picks the report writer for score output. Multiple JSON
// results are written one compact document per line.
func newScoreWriter(cfg *config.Config, out io.Writer, n int) report.Writer {
	switch {
	case cfg.JSONReport && n > 1:
		return report.NewJSONWriter(out)
	case cfg.JSONReport:
		return report.NewJSONWriter(out, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(out)
	default:
		return report.NewSimpleWriter(out, report.WithVerbose(cfg.Explain))
	}
}

// readLines reads one candidate per line. Line endings are removed but
// other whitespace is kept, since it is part of the password.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// scoreLabel is the one-line summary printed in session line mode.
func scoreLabel(score int, verdict model.Verdict) string {
	r := model.ScoreResult{Score: score, Verdict: verdict}
	return r.Label()
}
