package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nao1215/pwstrength/internal/generator"
	"github.com/nao1215/pwstrength/internal/strength"
)

// ErrNoCandidate is returned by steps that need a generated password when
// none has been produced yet.
var ErrNoCandidate = errors.New("no generated candidate")

// GenerateStep fills the job with a new password.
type GenerateStep struct {
	gen *generator.Generator
}

// NewGenerateStep creates a GenerateStep. The generator is owned by the
// step and must not be shared with another goroutine.
func NewGenerateStep(gen *generator.Generator) *GenerateStep {
	return &GenerateStep{gen: gen}
}

// Name returns the step name.
func (s *GenerateStep) Name() string {
	return "generate"
}

// Do executes the generation.
func (s *GenerateStep) Do(_ context.Context, job *Job) error {
	gen, err := s.gen.GenerateDetailed(job.Length)
	if err != nil {
		return fmt.Errorf("failed to generate password: %w", err)
	}
	job.Generation = gen
	return nil
}

// RescoreStep re-scores the generated password with the strength scorer,
// replacing whatever result the generator attached.
type RescoreStep struct{}

// NewRescoreStep creates a RescoreStep.
func NewRescoreStep() *RescoreStep {
	return &RescoreStep{}
}

// Name returns the step name.
func (s *RescoreStep) Name() string {
	return "rescore"
}

// Do executes the re-score.
func (s *RescoreStep) Do(_ context.Context, job *Job) error {
	if job.Generation.Password == "" {
		return ErrNoCandidate
	}
	job.Generation.Result = strength.Score(job.Generation.Password)
	return nil
}

// MinEntropyStep rejects passwords below a minimum validator entropy.
type MinEntropyStep struct {
	minBits float64
}

// NewMinEntropyStep creates a MinEntropyStep.
func NewMinEntropyStep(minBits float64) *MinEntropyStep {
	return &MinEntropyStep{minBits: minBits}
}

// Name returns the step name.
func (s *MinEntropyStep) Name() string {
	return "min_entropy"
}

// Do executes the entropy check.
func (s *MinEntropyStep) Do(_ context.Context, job *Job) error {
	if job.Generation.Password == "" {
		return ErrNoCandidate
	}
	return strength.CheckMinEntropy(job.Generation.Password, s.minBits)
}

// GenerationPipelineConfig configures NewGenerationPipeline.
type GenerationPipelineConfig struct {
	// MinEntropy enables MinEntropyStep when positive.
	MinEntropy float64

	// GeneratorOptions are passed to every new Generator.
	GeneratorOptions []generator.Option

	// Logger is used by the pipeline and its generator.
	Logger *slog.Logger
}

// NewGenerationPipeline creates the standard generate, rescore, and
// optional min-entropy pipeline with its own Generator.
func NewGenerationPipeline(cfg GenerationPipelineConfig) *Pipeline {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	opts := append([]generator.Option{generator.WithLogger(logger)}, cfg.GeneratorOptions...)
	p := New(WithLogger(logger))
	p.AddSteps(
		NewGenerateStep(generator.New(opts...)),
		NewRescoreStep(),
	)
	if cfg.MinEntropy > 0 {
		p.AddStep(NewMinEntropyStep(cfg.MinEntropy))
	}
	return p
}
