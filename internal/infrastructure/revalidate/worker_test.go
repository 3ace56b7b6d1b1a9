package revalidate

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type recordingInvalidator struct {
	mu    sync.Mutex
	calls [][]string
	done  chan struct{}
}

func (r *recordingInvalidator) Invalidate(_ context.Context, keys ...string) error {
	r.mu.Lock()
	r.calls = append(r.calls, keys)
	r.mu.Unlock()
	select {
	case r.done <- struct{}{}:
	default:
	}
	return nil
}

func TestWorker_AppliesHints(t *testing.T) {
	inv := &recordingInvalidator{done: make(chan struct{}, 1)}
	w := NewWorker(4, inv, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	w.Hint("moods:p1", "enrollments:stats")

	select {
	case <-inv.done:
	case <-time.After(time.Second):
		t.Fatalf("hint was not applied")
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()
	if len(inv.calls) != 1 {
		t.Fatalf("expected one invalidation, got %d", len(inv.calls))
	}
	if got := inv.calls[0]; len(got) != 2 || got[0] != "moods:p1" {
		t.Fatalf("unexpected keys: %v", got)
	}
}

func TestWorker_HintNeverBlocks(t *testing.T) {
	// Worker never started: the buffer fills, further hints are dropped.
	w := NewWorker(1, &recordingInvalidator{done: make(chan struct{}, 1)}, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			w.Hint("key")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Hint blocked on a full buffer")
	}
}

func TestWorker_EmptyHintIgnored(t *testing.T) {
	w := NewWorker(1, &recordingInvalidator{done: make(chan struct{}, 1)}, zerolog.Nop())
	w.Hint()
	select {
	case keys := <-w.hints:
		t.Fatalf("empty hint enqueued: %v", keys)
	default:
	}
}

func TestWorker_StopsOnContextCancel(t *testing.T) {
	inv := &recordingInvalidator{done: make(chan struct{}, 1)}
	w := NewWorker(4, inv, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)
	cancel()

	// After cancellation hints pile up in the buffer without being applied.
	time.Sleep(10 * time.Millisecond)
	w.Hint("late")
	time.Sleep(10 * time.Millisecond)

	inv.mu.Lock()
	defer inv.mu.Unlock()
	if len(inv.calls) != 0 {
		t.Fatalf("expected no invalidations after cancel, got %v", inv.calls)
	}
}
