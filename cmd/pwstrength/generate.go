package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/spf13/cobra"

	"github.com/nao1215/pwstrength/internal/config"
	"github.com/nao1215/pwstrength/internal/model"
	"github.com/nao1215/pwstrength/internal/pipeline"
	"github.com/nao1215/pwstrength/internal/report"
)

// minReachableLength is the shortest length that can score 100.
const minReachableLength = 18

// errGenerationFailed is returned when one or more generations fail.
var errGenerationFailed = errors.New("generation failed")

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate passwords that reach the maximum score",
		Long: `Generate builds random passwords containing every character class and
searches for one that scores 100. Passwords shorter than 18 characters
cannot reach 100; the best constructive candidate is returned instead.

Several passwords are generated concurrently with --batch workers.

Examples:
  # Generate one 26-character password
  pwstrength generate

  # Generate 10 passwords of 32 characters, printing only the passwords
  pwstrength generate -l 32 -n 10 -q

  # Output JSON with phase and attempt counts
  pwstrength generate -n 3 --json`,
		Args: cobra.NoArgs,
		RunE: runGenerateCmd,
	}

	cmd.Flags().IntP(config.FlagLength, "l", config.DefaultLength,
		"Password length in characters")
	cmd.Flags().IntP(config.FlagCount, "n", config.DefaultCount,
		"Number of passwords to generate")
	cmd.Flags().IntP(config.FlagBatch, "b", config.DefaultBatchSize,
		"Number of concurrent generations")
	cmd.Flags().Float64(config.FlagMinEntropy, 0,
		"Reject generated passwords below this many bits of entropy (0 disables)")

	cmd.Flags().BoolP("json", "j", false,
		"Output JSON (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown (mutually exclusive with --json)")
	cmd.Flags().BoolP("quiet", "q", false,
		"Print passwords only, one per line")

	return cmd
}

// runGenerateCmd executes the generate command.
func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	logger := setupLogger(cmd)

	cfg, err := buildGenerateConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyConfigFile(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	if cfg.Length < minReachableLength {
		logger.Warn("length too short to reach the maximum score",
			"length", cfg.Length,
			"minimum", minReachableLength,
		)
	}

	ctx, cancel := signalContext(cmd)
	defer cancel()

	batch := pipeline.NewBatchGenerator(
		func() *pipeline.Pipeline {
			return pipeline.NewGenerationPipeline(pipeline.GenerationPipelineConfig{
				MinEntropy: cfg.MinEntropy,
				Logger:     logger,
			})
		},
		pipeline.WithConcurrency(cfg.BatchSize),
		pipeline.WithBatchLogger(logger),
	)

	var failed int
	if streamable(cfg) {
		failed, err = streamGenerations(ctx, cmd, cfg, batch, logger)
		if err != nil {
			return err
		}
	} else {
		jobs, err := batch.ProcessBatch(ctx, cfg.Length, cfg.Count)
		if err != nil {
			return fmt.Errorf("generation interrupted: %w", err)
		}

		var gens []model.Generation
		gens, failed = collectGenerations(jobs, logger)
		if err := writeGenerations(cmd, cfg, gens); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errGenerationFailed, failed, cfg.Count)
	}
	return nil
}

// streamable reports whether passwords can be printed as they finish.
// Quiet text output has no surrounding structure, so completion order is
// fine there; JSON and Markdown need the whole batch.
func streamable(cfg *config.Config) bool {
	return cfg.Quiet && !cfg.JSONReport && !cfg.MarkdownReport
}

// streamGenerations prints each password as soon as its job completes and
// returns the number of failed jobs.
func streamGenerations(
	ctx context.Context,
	cmd *cobra.Command,
	cfg *config.Config,
	batch *pipeline.BatchGenerator,
	logger *slog.Logger,
) (int, error) {
	writer := report.NewSimpleWriter(cmd.OutOrStdout(), report.WithQuiet(true))

	var (
		mu       sync.Mutex
		failed   int
		writeErr error
	)
	err := batch.ProcessBatchWithCallback(ctx, cfg.Length, cfg.Count, func(job *pipeline.Job) {
		gen, ok := acceptJob(job, logger)

		mu.Lock()
		defer mu.Unlock()
		if !ok {
			failed++
			return
		}
		if writeErr != nil {
			return
		}
		if _, err := writer.WriteGenerations([]model.Generation{gen}); err != nil {
			writeErr = fmt.Errorf("failed to write passwords: %w", err)
		}
	})
	if err != nil {
		return failed, fmt.Errorf("generation interrupted: %w", err)
	}
	return failed, writeErr
}

// buildGenerateConfig creates a Config from the generate command flags.
func buildGenerateConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.Length, err = cmd.Flags().GetInt(config.FlagLength)
	if err != nil {
		return nil, err
	}
	cfg.Count, err = cmd.Flags().GetInt(config.FlagCount)
	if err != nil {
		return nil, err
	}
	cfg.BatchSize, err = cmd.Flags().GetInt(config.FlagBatch)
	if err != nil {
		return nil, err
	}
	cfg.MinEntropy, err = cmd.Flags().GetFloat64(config.FlagMinEntropy)
	if err != nil {
		return nil, err
	}
	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}
	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}
	cfg.Quiet, err = cmd.Flags().GetBool("quiet")
	if err != nil {
		return nil, err
	}
	cfg.Verbose = getVerboseFlag(cmd)
	return cfg, nil
}

// collectGenerations returns the successful generations in order and the
// number of failed jobs.
func collectGenerations(jobs []*pipeline.Job, logger *slog.Logger) ([]model.Generation, int) {
	gens := make([]model.Generation, 0, len(jobs))
	failed := 0
	for _, job := range jobs {
		if job == nil {
			continue
		}
		gen, ok := acceptJob(job, logger)
		if !ok {
			failed++
			continue
		}
		gens = append(gens, gen)
	}
	return gens, failed
}

// acceptJob returns the generation of a successful job. Failures and
// passwords that did not reach the maximum score are logged.
func acceptJob(job *pipeline.Job, logger *slog.Logger) (model.Generation, bool) {
	if job.Failed() {
		logger.Warn("generation failed",
			"index", job.Index,
			"steps", job.PerformedSteps,
			"error", job.Err,
		)
		return model.Generation{}, false
	}
	if job.Generation.Phase == model.PhaseLastResort {
		logger.Warn("password did not reach the maximum score",
			"index", job.Index,
			"score", job.Generation.Result.Score,
		)
	}
	return job.Generation, true
}

// writeGenerations writes the generations in the selected format.
func writeGenerations(cmd *cobra.Command, cfg *config.Config, gens []model.Generation) error {
	out := cmd.OutOrStdout()

	var writer report.Writer
	switch {
	case cfg.JSONReport:
		writer = report.NewJSONWriter(out, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		writer = report.NewMarkdownWriter(out)
	default:
		writer = report.NewSimpleWriter(out,
			report.WithQuiet(cfg.Quiet),
			report.WithVerbose(cfg.Verbose),
		)
	}

	if _, err := writer.WriteGenerations(gens); err != nil {
		return fmt.Errorf("failed to write passwords: %w", err)
	}
	return nil
}
