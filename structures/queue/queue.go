package queue

import (
	"iter"
	"sync"
)

// compactThreshold is how many consumed slots may accumulate at the front of a [Queue] before the backing slice is shifted.
const compactThreshold = 64

// Queue is a concurrency-safe, unbounded FIFO queue.
type Queue[T any] struct {
	mux    sync.RWMutex
	head   int
	values []T
}

// NewQueue creates a [Queue], optionally pre-allocating room for initialBuffer elements.
func NewQueue[T any](initialBuffer ...int) *Queue[T] {
	if len(initialBuffer) > 0 && initialBuffer[0] > 0 {
		return &Queue[T]{values: make([]T, 0, initialBuffer[0])}
	}
	return &Queue[T]{}
}

// Len gets the length of the Queue
func (q *Queue[T]) Len() int {
	q.mux.RLock()
	defer q.mux.RUnlock()
	return len(q.values) - q.head
}

// Push will push an item to the tail of the Queue.
func (q *Queue[T]) Push(val T) {
	q.mux.Lock()
	defer q.mux.Unlock()
	q.values = append(q.values, val)
}

// Pop will pop an item from the head of the Queue.
// False will be returned if the Queue is empty.
func (q *Queue[T]) Pop() (T, bool) {
	q.mux.Lock()
	defer q.mux.Unlock()
	var mt T
	if q.head >= len(q.values) {
		return mt, false
	}
	val := q.values[q.head]
	// Clear the slot so popped values can be collected.
	q.values[q.head] = mt
	q.head++
	switch {
	case q.head == len(q.values):
		q.values = q.values[:0]
		q.head = 0
	case q.head >= compactThreshold && q.head*2 >= len(q.values):
		n := copy(q.values, q.values[q.head:])
		clear(q.values[n:])
		q.values = q.values[:n]
		q.head = 0
	}
	return val, true
}

// Drain pops every element in order until the Queue is empty, or the consumer stops iteration.
func (q *Queue[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			val, ok := q.Pop()
			if !ok {
				return
			}
			if !yield(val) {
				return
			}
		}
	}
}
