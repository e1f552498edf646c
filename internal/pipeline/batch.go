package pipeline

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of jobs run at once when
// WithConcurrency is not given.
const DefaultConcurrency = 4

// BatchGenerator runs many generation jobs concurrently.
type BatchGenerator struct {
	// pipelineFactory creates a fresh pipeline, and therefore a fresh
	// Generator, for each job.
	pipelineFactory func() *Pipeline

	concurrency int
	logger      *slog.Logger
}

// BatchOption configures a BatchGenerator.
type BatchOption func(*BatchGenerator)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchGenerator) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent jobs.
// Non-positive values keep the default.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchGenerator) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchGenerator creates a new BatchGenerator.
func NewBatchGenerator(pipelineFactory func() *Pipeline, opts ...BatchOption) *BatchGenerator {
	b := &BatchGenerator{
		pipelineFactory: pipelineFactory,
		concurrency:     DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	return b
}

// ProcessBatch runs count jobs for passwords of the given length and
// returns them in index order. A failing job records its error and does
// not stop the others. The returned error is non-nil only when ctx is
// cancelled.
func (b *BatchGenerator) ProcessBatch(ctx context.Context, length, count int) ([]*Job, error) {
	b.logger.Debug("starting batch generation",
		"count", count,
		"length", length,
		"concurrency", b.concurrency,
	)
	startTime := time.Now()

	// Each goroutine writes only its own index.
	results := make([]*Job, count)

	err := b.run(ctx, length, count, func(job *Job) {
		results[job.Index] = job
	})

	b.logger.Debug("batch generation complete",
		"count", count,
		"elapsed", time.Since(startTime),
	)
	return results, err
}

// ProcessBatchWithCallback runs count jobs and calls callback as each one
// completes. The callback runs on the job's goroutine and must be safe
// for concurrent use.
func (b *BatchGenerator) ProcessBatchWithCallback(
	ctx context.Context,
	length, count int,
	callback func(job *Job),
) error {
	return b.run(ctx, length, count, callback)
}

func (b *BatchGenerator) run(ctx context.Context, length, count int, done func(job *Job)) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i := range count {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			job := NewJob(i, length)
			if err := b.pipelineFactory().Execute(ctx, job); err != nil {
				b.logger.Warn("job failed", "job", i, "error", err)
			}
			done(job)
			return ctx.Err()
		})
	}
	return g.Wait()
}
