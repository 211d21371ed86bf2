package search

import (
	"context"
	"sync"
	"time"

	"padelyzer/internal/domain"
)

// DefaultDebounce collapses keystroke bursts into one pipeline run.
const DefaultDebounce = 300 * time.Millisecond

// Searcher is the debounced front-end of the Engine. Rapid Update calls
// collapse into a single run per quiescent period; each Update bumps a
// generation counter and cancels the in-flight run's context, so a stale run
// can neither waste CPU nor overwrite a fresher result (last-write-wins is
// enforced explicitly, not by scheduling luck).
type Searcher struct {
	engine *Engine
	delay  time.Duration
	onDone func(Result)

	mu     sync.Mutex
	timer  *time.Timer
	cancel context.CancelFunc
	gen    uint64
	closed bool
}

func NewSearcher(e *Engine, delay time.Duration, onDone func(Result)) *Searcher {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Searcher{engine: e, delay: delay, onDone: onDone}
}

// Update schedules a run with the given snapshot and parameters, replacing
// any pending or in-flight run. The clubs slice must not be mutated by the
// caller until the run completes.
func (s *Searcher) Update(clubs []domain.Club, p Params) {
	s.updateAfter(clubs, p, s.delay)
}

// Flush runs immediately, bypassing the debounce delay. Pending runs are
// superseded the same way as with Update.
func (s *Searcher) Flush(clubs []domain.Club, p Params) {
	s.updateAfter(clubs, p, 0)
}

func (s *Searcher) updateAfter(clubs []domain.Club, p Params, delay time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.gen++
	gen := s.gen
	if s.timer != nil {
		s.timer.Stop()
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.timer = time.AfterFunc(delay, func() { s.fire(gen, clubs, p) })
}

func (s *Searcher) fire(gen uint64, clubs []domain.Club, p Params) {
	s.mu.Lock()
	if s.closed || gen != s.gen {
		s.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.mu.Unlock()

	res, err := s.engine.Run(ctx, clubs, p)
	if err != nil {
		return // superseded mid-run
	}

	s.mu.Lock()
	stale := s.closed || gen != s.gen
	s.mu.Unlock()
	if stale {
		return
	}
	if s.onDone != nil {
		s.onDone(res)
	}
}

// Close cancels any pending or in-flight run. Further Updates are no-ops.
func (s *Searcher) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
