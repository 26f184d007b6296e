// Package display turns a finished polygon into a rendered frame on a fixed
// polling interval.
package display

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"PolyBoard/internal/state"
)

// DefaultInterval matches a 100Hz poll, which is faster than anyone draws.
const DefaultInterval = 10 * time.Millisecond

// Backend consumes normalized vertex buffers.
type Backend interface {
	Render(f state.Frame) error
	Clear() error
}

// Loop polls the session and hands each finished shape to the backend once.
type Loop struct {
	Interval time.Duration

	session *state.Session
	backend Backend

	// Only touched from the goroutine calling Tick.
	captured bool

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewLoop(s *state.Session, b Backend, interval time.Duration) *Loop {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Loop{Interval: interval, session: s, backend: b}
}

// Tick runs one poll. While the shape is open nothing is rendered; a capture
// left over from a previous shape is cleared exactly once.
func (l *Loop) Tick() error {
	f, ok, err := l.session.Snapshot()
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if !ok {
		if l.captured {
			l.captured = false
			if err := l.backend.Clear(); err != nil {
				return fmt.Errorf("clear backend: %w", err)
			}
		}
		return nil
	}
	if l.captured {
		return nil
	}
	if err := l.backend.Render(f); err != nil {
		return fmt.Errorf("render frame %d: %w", f.Seq, err)
	}
	l.captured = true
	log.Printf("[LOOP] rendered %d vertices (seq %d)", len(f.Vertices)/2, f.Seq)
	return nil
}

// Captured reports whether the current shape has been handed to the backend.
func (l *Loop) Captured() bool { return l.captured }

// Run ticks until ctx is done. Tick errors are logged and the next tick
// retries.
func (l *Loop) Run(ctx context.Context) error {
	t := time.NewTicker(l.Interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := l.Tick(); err != nil {
				log.Printf("[LOOP] %v", err)
			}
		}
	}
}

// Start runs the loop in its own goroutine. Calling Start twice is a no-op.
func (l *Loop) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.done = make(chan struct{})
	go func(done chan struct{}) {
		defer close(done)
		l.Run(ctx)
	}(l.done)
}

// Stop halts a started loop and waits for it to return.
func (l *Loop) Stop() {
	l.mu.Lock()
	cancel, done := l.cancel, l.done
	l.cancel, l.done = nil, nil
	l.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}
