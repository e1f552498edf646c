package generator

import (
	"log/slog"
	"sync"
	"time"

	"github.com/nao1215/pwstrength/internal/model"
)

// Outcome is delivered once per submitted generation.
type Outcome struct {
	Generation model.Generation
	Err        error
}

// Worker runs generations off the caller's goroutine, one at a time.
// Each generation gets a fresh Generator, so no random source is shared
// between runs.
type Worker struct {
	mu      sync.Mutex
	busy    bool
	factory func() *Generator
	logger  *slog.Logger
}

// WorkerOption configures a Worker.
type WorkerOption func(*Worker)

// WithFactory sets the function that creates a Generator per run.
func WithFactory(factory func() *Generator) WorkerOption {
	return func(w *Worker) {
		w.factory = factory
	}
}

// WithWorkerLogger sets the logger.
func WithWorkerLogger(logger *slog.Logger) WorkerOption {
	return func(w *Worker) {
		w.logger = logger
	}
}

// NewWorker creates a Worker.
func NewWorker(opts ...WorkerOption) *Worker {
	w := &Worker{}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		w.logger = slog.Default()
	}
	if w.factory == nil {
		logger := w.logger
		w.factory = func() *Generator { return New(WithLogger(logger)) }
	}
	return w
}

// Busy reports whether a generation is in flight.
func (w *Worker) Busy() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.busy
}

// Submit starts a generation and returns a channel that receives exactly
// one Outcome and is then closed. It returns ErrBusy if a generation is
// already running. A started generation cannot be cancelled.
func (w *Worker) Submit(length int) (<-chan Outcome, error) {
	w.mu.Lock()
	if w.busy {
		w.mu.Unlock()
		return nil, ErrBusy
	}
	w.busy = true
	w.mu.Unlock()

	out := make(chan Outcome, 1)
	go func() {
		defer close(out)

		start := time.Now()
		gen, err := w.factory().GenerateDetailed(length)

		w.mu.Lock()
		w.busy = false
		w.mu.Unlock()

		if err != nil {
			w.logger.Warn("generation failed", "length", length, "error", err)
		} else {
			w.logger.Debug("generation finished",
				"length", length,
				"phase", gen.Phase.String(),
				"attempts", gen.Attempts,
				"elapsed", time.Since(start),
			)
		}
		out <- Outcome{Generation: gen, Err: err}
	}()

	return out, nil
}
