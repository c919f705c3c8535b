// Package mainloop serializes work onto the single UI goroutine.
package mainloop

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned by Next and Wait once the loop is closed and drained.
var ErrClosed = errors.New("main loop closed")

// Loop is an unbounded FIFO of tasks. Any goroutine may Post; exactly one
// goroutine (the UI goroutine) consumes with Next, Drain or Run.
type Loop struct {
	mu     sync.Mutex
	queue  []func()
	wake   chan struct{}
	done   chan struct{}
	closed bool
}

// New creates an empty loop.
func New() *Loop {
	return &Loop{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// Post enqueues fn. It never blocks. Returns false after Close.
func (l *Loop) Post(fn func()) bool {
	if fn == nil {
		return false
	}

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return false
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}

func (l *Loop) pop() (fn func(), closed bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.queue) == 0 {
		return nil, l.closed
	}
	fn = l.queue[0]
	l.queue[0] = nil
	l.queue = l.queue[1:]
	return fn, false
}

// Next blocks until a task is available and returns it without running it.
// Tasks posted before Close are still handed out; ErrClosed follows.
func (l *Loop) Next(ctx context.Context) (func(), error) {
	for {
		fn, closed := l.pop()
		if fn != nil {
			return fn, nil
		}
		if closed {
			return nil, ErrClosed
		}

		select {
		case <-l.wake:
		case <-l.done:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// Wait blocks until at least one task is queued without taking it. The
// consumer then runs the queue with Drain on its own goroutine, so a task
// can never be held outside the queue while later tasks run.
func (l *Loop) Wait(ctx context.Context) error {
	for {
		l.mu.Lock()
		queued, closed := len(l.queue), l.closed
		l.mu.Unlock()
		if queued > 0 {
			return nil
		}
		if closed {
			return ErrClosed
		}

		select {
		case <-l.wake:
		case <-l.done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Drain runs every queued task, including tasks they post, and returns
// how many ran.
func (l *Loop) Drain() int {
	n := 0
	for {
		fn, _ := l.pop()
		if fn == nil {
			return n
		}
		fn()
		n++
	}
}

// Run executes tasks until ctx is done or the loop is closed and drained.
func (l *Loop) Run(ctx context.Context) error {
	for {
		fn, err := l.Next(ctx)
		if err != nil {
			if errors.Is(err, ErrClosed) {
				return nil
			}
			return err
		}
		fn()
	}
}

// Len returns the number of queued tasks.
func (l *Loop) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// Close stops accepting tasks and wakes consumers. Safe to call twice.
func (l *Loop) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.closed = true
	close(l.done)
}
