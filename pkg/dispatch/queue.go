// Package dispatch provides the cooperative event queue that deferred UI
// callbacks run on.
//
// Callbacks may be posted from any goroutine, but they always execute on
// the goroutine that calls [Queue.Poll] or [Queue.Run]. Each poll is one
// turn of the event loop: it runs the callbacks that were queued before the
// turn started, and anything they post waits for the next turn.
package dispatch

import (
	"context"
	"sync"

	"github.com/go-drift/anchorui/pkg/errors"
)

// Queue is a FIFO of deferred callbacks.
type Queue struct {
	mu      sync.Mutex
	pending []func()
	closed  bool
	wake    chan struct{}
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{wake: make(chan struct{}, 1)}
}

// Post schedules callback for the next turn. It returns false if the
// callback is nil or the queue has been closed.
func (q *Queue) Post(callback func()) bool {
	if callback == nil {
		return false
	}
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.pending = append(q.pending, callback)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
	return true
}

func (q *Queue) drain() []func() {
	q.mu.Lock()
	callbacks := q.pending
	q.pending = nil
	q.mu.Unlock()
	return callbacks
}

// Poll runs one turn and returns the number of callbacks executed.
// A panicking callback is reported and the turn continues, except for
// contract violations, which propagate.
func (q *Queue) Poll() int {
	callbacks := q.drain()
	for _, callback := range callbacks {
		run(callback)
	}
	return len(callbacks)
}

func run(callback func()) {
	defer errors.Recover("dispatch.Poll")
	callback()
}

// Pending returns the number of callbacks waiting for the next turn.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Run polls whenever callbacks are posted until ctx is done.
func (q *Queue) Run(ctx context.Context) error {
	for {
		q.Poll()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-q.wake:
		}
	}
}

// Close rejects further posts and discards pending callbacks.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.pending = nil
	q.mu.Unlock()
}
