package pipeline

import (
	"context"
	"log/slog"
)

// Step is one stage of a Pipeline.
//
// Design decision: Steps are an interface rather than plain functions
// because:
//  1. A step can carry its own state, such as a Generator or a threshold
//  2. Name() gives every log line and Job.PerformedSteps a stable label
type Step interface {
	// Do executes the step against job. A returned error is recorded in
	// the job.
	Do(ctx context.Context, job *Job) error

	// Name returns the step's name for logging.
	Name() string
}

// Pipeline executes steps in order against a single Job.
//
// Design decision: A Pipeline is not safe for concurrent use and holds no
// per-job state. BatchGenerator builds one per job from a factory, so each
// job gets its own Generator and no locking is needed between jobs.
type Pipeline struct {
	steps  []Step
	logger *slog.Logger

	// continueOnError keeps running later steps after a failure.
	continueOnError bool
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithContinueOnError configures the pipeline to run the remaining steps
// after one fails. The first error is still recorded in the job.
func WithContinueOnError(continueOnError bool) Option {
	return func(p *Pipeline) {
		p.continueOnError = continueOnError
	}
}

// New creates a new Pipeline with no steps.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: make([]Step, 0),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// AddStep appends a step to the pipeline.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all steps against job and returns the error that stopped
// it, if any.
//
// Design decision: Cancellation is checked between steps, never inside
// one. A step that has started runs to completion, so a Job is never left
// with a half-written Generation. When ctx is done before a step starts,
// ctx.Err() is recorded in job.Err and returned.
//
// The first failure is kept in job.Err; later failures are only logged.
// Without WithContinueOnError the run stops at that failure. With it the
// remaining steps still run and Execute returns nil, so callers must check
// job.Failed() rather than the returned error. A step is appended to
// job.PerformedSteps only when it succeeds or the pipeline continues past it.
func (p *Pipeline) Execute(ctx context.Context, job *Job) error {
	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("pipeline cancelled",
				"step", step.Name(),
				"job", job.Index,
				"reason", ctx.Err(),
			)
			if job.Err == nil {
				job.Err = ctx.Err()
			}
			return ctx.Err()
		default:
		}

		if err := step.Do(ctx, job); err != nil {
			p.logger.Warn("step failed",
				"step", step.Name(),
				"job", job.Index,
				"error", err,
			)
			if job.Err == nil {
				job.Err = err
			}
			if !p.continueOnError {
				return err
			}
		} else {
			p.logger.Debug("step completed",
				"step", step.Name(),
				"job", job.Index,
			)
		}

		job.PerformedSteps = append(job.PerformedSteps, step.Name())
	}
	return nil
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
