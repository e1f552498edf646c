package pipeline

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nao1215/pwstrength/internal/strength"
)

// TestBatchGeneratorNew tests the BatchGenerator constructor.
func TestBatchGeneratorNew(t *testing.T) {
	t.Parallel()

	t.Run("creates generator with defaults", func(t *testing.T) {
		t.Parallel()

		b := NewBatchGenerator(func() *Pipeline { return New() })
		if b.concurrency != DefaultConcurrency {
			t.Errorf("expected default concurrency %d, got %d", DefaultConcurrency, b.concurrency)
		}
		if b.logger == nil {
			t.Error("expected non-nil logger")
		}
	})

	t.Run("applies WithConcurrency option", func(t *testing.T) {
		t.Parallel()

		b := NewBatchGenerator(func() *Pipeline { return New() }, WithConcurrency(8))
		if b.concurrency != 8 {
			t.Errorf("expected concurrency 8, got %d", b.concurrency)
		}
	})

	t.Run("ignores non-positive concurrency", func(t *testing.T) {
		t.Parallel()

		b := NewBatchGenerator(func() *Pipeline { return New() }, WithConcurrency(0))
		if b.concurrency != DefaultConcurrency {
			t.Errorf("expected concurrency %d, got %d", DefaultConcurrency, b.concurrency)
		}
	})
}

// TestBatchGeneratorProcessBatch tests batch generation.
func TestBatchGeneratorProcessBatch(t *testing.T) {
	t.Parallel()

	t.Run("generates every password in order", func(t *testing.T) {
		t.Parallel()

		b := NewBatchGenerator(func() *Pipeline {
			return NewGenerationPipeline(GenerationPipelineConfig{})
		})

		jobs, err := b.ProcessBatch(context.Background(), 26, 6)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(jobs) != 6 {
			t.Fatalf("expected 6 jobs, got %d", len(jobs))
		}
		for i, job := range jobs {
			if job.Index != i {
				t.Errorf("job %d has index %d", i, job.Index)
			}
			if job.Failed() {
				t.Errorf("job %d failed: %v", i, job.Err)
			}
			if len(job.Generation.Password) != 26 {
				t.Errorf("job %d: expected length 26, got %d", i, len(job.Generation.Password))
			}
			if strength.ClassesOf(job.Generation.Password).Count() != 4 {
				t.Errorf("job %d: expected all classes in %q", i, job.Generation.Password)
			}
		}
	})

	t.Run("respects concurrency limit", func(t *testing.T) {
		t.Parallel()

		var maxConcurrent atomic.Int32
		var currentConcurrent atomic.Int32
		var mu sync.Mutex

		b := NewBatchGenerator(
			func() *Pipeline {
				p := New()
				p.AddStep(&mockStep{
					name: "concurrent-counter",
					doFunc: func(_ context.Context, _ *Job) error {
						current := currentConcurrent.Add(1)
						mu.Lock()
						if current > maxConcurrent.Load() {
							maxConcurrent.Store(current)
						}
						mu.Unlock()

						time.Sleep(20 * time.Millisecond)
						currentConcurrent.Add(-1)
						return nil
					},
				})
				return p
			},
			WithConcurrency(2),
		)

		if _, err := b.ProcessBatch(context.Background(), 10, 8); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if maxConcurrent.Load() > 2 {
			t.Errorf("max concurrent was %d, expected <= 2", maxConcurrent.Load())
		}
	})

	t.Run("continues after individual job failure", func(t *testing.T) {
		t.Parallel()

		var processed atomic.Int32
		b := NewBatchGenerator(func() *Pipeline {
			p := New()
			p.AddStep(&mockStep{
				name: "sometimes-fails",
				doFunc: func(_ context.Context, job *Job) error {
					processed.Add(1)
					if job.Index == 1 {
						return errors.New("simulated failure")
					}
					return nil
				},
			})
			return p
		})

		jobs, err := b.ProcessBatch(context.Background(), 10, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if processed.Load() != 3 {
			t.Errorf("expected 3 processed, got %d", processed.Load())
		}
		if !jobs[1].Failed() {
			t.Error("expected error in second job")
		}
		if jobs[0].Failed() || jobs[2].Failed() {
			t.Error("expected other jobs to succeed")
		}
	})

	t.Run("handles context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		var started atomic.Int32

		b := NewBatchGenerator(
			func() *Pipeline {
				p := New()
				p.AddStep(&mockStep{
					name: "slow-step",
					doFunc: func(ctx context.Context, _ *Job) error {
						started.Add(1)
						select {
						case <-ctx.Done():
							return ctx.Err()
						case <-time.After(time.Second):
							return nil
						}
					},
				})
				return p
			},
			WithConcurrency(2),
		)

		go func() {
			time.Sleep(50 * time.Millisecond)
			cancel()
		}()

		_, err := b.ProcessBatch(ctx, 10, 10)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
		if started.Load() >= 10 {
			t.Error("expected some jobs to not start due to cancellation")
		}
	})
}

// TestBatchGeneratorProcessBatchWithCallback tests callback-based processing.
func TestBatchGeneratorProcessBatchWithCallback(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	seen := make(map[int]string)

	b := NewBatchGenerator(func() *Pipeline {
		return NewGenerationPipeline(GenerationPipelineConfig{})
	}, WithConcurrency(3))

	err := b.ProcessBatchWithCallback(context.Background(), 20, 5, func(job *Job) {
		mu.Lock()
		defer mu.Unlock()
		seen[job.Index] = job.Generation.Password
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seen) != 5 {
		t.Fatalf("expected 5 callbacks, got %d", len(seen))
	}
	for i := range 5 {
		if len(seen[i]) != 20 {
			t.Errorf("job %d: expected length 20, got %q", i, seen[i])
		}
	}
}
