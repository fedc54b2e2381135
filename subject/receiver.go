package subject

import (
	"context"
	"github.com/saylorsolutions/eventx/structures/queue"
	"runtime"
)

var (
	// ErrClosed is returned from [Receiver.NextContext] once the Receiver is closed and drained.
	ErrClosed = queue.ErrClosed
)

// Receiver is a [Listener] that buffers every value it receives, so they can be pulled in order by a consumer.
// The buffer is unbounded, so receiving never blocks the sender.
type Receiver[T any] struct {
	queue *queue.Blocking[T]
}

var (
	_ Listener[int] = (*Receiver[int])(nil)
	_ Closer        = (*Receiver[int])(nil)
)

// NewReceiver creates an empty [Receiver], optionally pre-allocating room for initialBuffer values.
func NewReceiver[T any](initialBuffer ...int) *Receiver[T] {
	return &Receiver[T]{queue: queue.NewBlocking[T](initialBuffer...)}
}

func (r *Receiver[T]) Receive(val T) {
	// A closed Receiver has nowhere to put new values.
	_ = r.queue.Push(val)
}

// Next blocks until a value is available and returns it.
// False is returned once the Receiver has been closed and all buffered values have been consumed.
func (r *Receiver[T]) Next() (T, bool) {
	val, err := r.NextContext(context.Background())
	return val, err == nil
}

// NextContext is like [Receiver.Next], but will stop waiting when ctx is done.
// [ErrClosed] is returned if the Receiver is closed and drained.
func (r *Receiver[T]) NextContext(ctx context.Context) (T, error) {
	val, err := r.queue.Pop(ctx)
	// The Receiver must stay reachable while waiting, or its Source would stop delivering to it.
	runtime.KeepAlive(r)
	return val, err
}

// TryNext returns the next buffered value without waiting.
// False is returned if no value is buffered.
func (r *Receiver[T]) TryNext() (T, bool) {
	return r.queue.TryPop()
}

// Len returns the number of buffered values.
func (r *Receiver[T]) Len() int {
	return r.queue.Len()
}

// Close tells the Receiver that no more values are coming.
// Buffered values may still be consumed.
func (r *Receiver[T]) Close() {
	r.queue.Close()
}

// Closed reports whether the Receiver has been closed.
func (r *Receiver[T]) Closed() bool {
	return r.queue.Closed()
}
