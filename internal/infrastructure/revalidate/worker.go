// Package revalidate drains cache-invalidation hints emitted by domain
// actions after successful mutations. Hints are advisory: dependent views
// re-render fresh data on the next read, nothing transactional is promised.
package revalidate

import (
	"context"

	"github.com/rs/zerolog"
)

const defaultBuffer = 256

// Invalidator abstracts the cache backend the worker invalidates against.
type Invalidator interface {
	Invalidate(ctx context.Context, keys ...string) error
}

// Worker receives revalidation hints on a buffered channel and applies them
// in the background. Enqueueing never blocks; when the buffer is full the
// hint is dropped, which is acceptable because cached views carry a TTL.
type Worker struct {
	hints chan []string
	cache Invalidator
	log   zerolog.Logger
}

// NewWorker creates a Worker with the given buffer size.
// If buffer <= 0, defaultBuffer is used.
func NewWorker(buffer int, cache Invalidator, log zerolog.Logger) *Worker {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Worker{
		hints: make(chan []string, buffer),
		cache: cache,
		log:   log,
	}
}

// Start launches the worker goroutine. The worker stops when ctx is cancelled.
func (w *Worker) Start(ctx context.Context) {
	go w.run(ctx)
}

// Hint enqueues cache keys for invalidation. Fire-and-forget: the call never
// blocks and never fails.
func (w *Worker) Hint(keys ...string) {
	if len(keys) == 0 {
		return
	}
	select {
	case w.hints <- keys:
	default:
		w.log.Debug().Strs("keys", keys).Msg("revalidation buffer full, hint dropped")
	}
}

func (w *Worker) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case keys, ok := <-w.hints:
			if !ok {
				return
			}
			if err := w.cache.Invalidate(ctx, keys...); err != nil {
				w.log.Warn().Err(err).Strs("keys", keys).Msg("cache invalidation failed")
			}
		}
	}
}
