package event

import (
	"context"
	"github.com/saylorsolutions/eventx/subject"
	"iter"
	"runtime"
)

// Iter is a terminal stage that buffers values so they can be pulled in order.
// Each value can be consumed only once.
//
// Iter is safe to use from multiple goroutines, in which case each value is returned to exactly one caller.
type Iter[A any] struct {
	upstream Event[A]
	recv     *subject.Receiver[A]
}

// Next blocks until a value has been delivered, then returns it.
// False is only returned once the [Sink] has been closed, and all buffered values have been returned.
func (it *Iter[A]) Next() (A, bool) {
	val, ok := it.recv.Next()
	// Keeps the chain alive while waiting, even if the caller holds no other reference to it.
	runtime.KeepAlive(it)
	return val, ok
}

// NextContext is like [Iter.Next], but will stop waiting when ctx is done and return the context's error.
// [subject.ErrClosed] is returned when the chain is closed and drained.
func (it *Iter[A]) NextContext(ctx context.Context) (A, error) {
	val, err := it.recv.NextContext(ctx)
	runtime.KeepAlive(it)
	return val, err
}

// TryNext returns a buffered value without waiting, if there is one.
func (it *Iter[A]) TryNext() (A, bool) {
	return it.recv.TryNext()
}

// Len returns the number of buffered values.
func (it *Iter[A]) Len() int {
	return it.recv.Len()
}

// All returns an [iter.Seq] that yields values as they arrive.
// Ranging over it blocks between values, and ends once the chain has been closed and drained.
func (it *Iter[A]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		for {
			val, ok := it.Next()
			if !ok {
				return
			}
			if !yield(val) {
				return
			}
		}
	}
}
