package facts

import (
	"context"
	"errors"
	"sync/atomic"
	"time"
)

// ErrRegenerationBusy is returned when another regeneration or merge holds
// the serialization lock past the bounded wait. Callers retry with backoff.
var ErrRegenerationBusy = errors.New("fact base regeneration already in progress")

// Store holds the currently published snapshot. Reads go through an atomic
// pointer so queries always see a fully built fact base; writers serialize
// through Acquire and publish with a single pointer swap.
type Store struct {
	current atomic.Pointer[FactBase]
	regen   chan struct{}
}

func NewStore() *Store {
	return &Store{regen: make(chan struct{}, 1)}
}

// Current returns the published snapshot, or nil when none has been
// published yet. The returned value is immutable.
func (s *Store) Current() *FactBase {
	if s == nil {
		return nil
	}
	return s.current.Load()
}

// Acquire takes the regeneration lock, waiting at most wait. The returned
// release function must be called exactly once.
func (s *Store) Acquire(ctx context.Context, wait time.Duration) (func(), error) {
	if wait <= 0 {
		wait = 5 * time.Second
	}
	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case s.regen <- struct{}{}:
		return func() { <-s.regen }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
		return nil, ErrRegenerationBusy
	}
}

// Publish swaps in a new snapshot. Concurrent readers keep whatever snapshot
// they loaded; subsequent reads see the new one.
func (s *Store) Publish(fb *FactBase) {
	if s == nil || fb == nil {
		return
	}
	s.current.Store(fb)
}
