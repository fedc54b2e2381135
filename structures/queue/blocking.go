package queue

import (
	"context"
	"errors"
	"github.com/saylorsolutions/eventx/syncx"
	"sync"
)

var (
	ErrClosed = errors.New("queue closed")
)

// Blocking is an unbounded [Queue] where consumers may wait for values to arrive.
// Producers never block.
//
// Once closed, no more values are accepted, but values already queued can still be popped.
// Consumers are told that the queue is exhausted only once it's both closed and empty.
type Blocking[T any] struct {
	queue  *Queue[T]
	ready  chan struct{}
	closed chan struct{}

	// mux orders Push against Close, so nothing is accepted once a consumer can observe the close.
	mux      sync.Mutex
	isClosed bool
}

// NewBlocking creates a new [Blocking] queue.
func NewBlocking[T any](initialBuffer ...int) *Blocking[T] {
	return &Blocking[T]{
		queue:  NewQueue[T](initialBuffer...),
		ready:  make(chan struct{}, 1),
		closed: make(chan struct{}),
	}
}

func (q *Blocking[T]) signal() {
	select {
	case q.ready <- struct{}{}:
	default:
		// A wakeup is already pending.
	}
}

// Push adds val to the tail of the queue, and wakes a waiting consumer.
// Returns false if the queue has been closed, in which case val is discarded.
func (q *Blocking[T]) Push(val T) bool {
	accepted := syncx.LockFuncT(&q.mux, func() bool {
		if q.isClosed {
			return false
		}
		q.queue.Push(val)
		return true
	})
	if accepted {
		q.signal()
	}
	return accepted
}

// TryPop pops the head of the queue without waiting.
func (q *Blocking[T]) TryPop() (T, bool) {
	val, ok := q.queue.Pop()
	if ok && q.queue.Len() > 0 {
		// Pass the wakeup along so other waiting consumers see the remaining values.
		q.signal()
	}
	return val, ok
}

// Pop waits until a value is available and returns it.
// [ErrClosed] is returned if the queue is closed and empty, or the context's error if it's cancelled first.
func (q *Blocking[T]) Pop(ctx context.Context) (T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	for {
		if val, ok := q.TryPop(); ok {
			return val, nil
		}
		select {
		case <-q.ready:
		case <-q.closed:
			if val, ok := q.TryPop(); ok {
				return val, nil
			}
			var mt T
			return mt, ErrClosed
		case <-ctx.Done():
			var mt T
			return mt, ctx.Err()
		}
	}
}

// Close stops the queue from accepting new values.
// This is safe to call more than once.
func (q *Blocking[T]) Close() {
	syncx.LockFunc(&q.mux, func() {
		if q.isClosed {
			return
		}
		q.isClosed = true
		close(q.closed)
	})
}

// Closed reports whether Close has been called.
func (q *Blocking[T]) Closed() bool {
	select {
	case <-q.closed:
		return true
	default:
		return false
	}
}

// Len gets the number of values waiting to be popped.
func (q *Blocking[T]) Len() int {
	return q.queue.Len()
}
