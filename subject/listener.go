package subject

import (
	"unsafe"
	"weak"
)

// Listener receives values from a [Source].
type Listener[T any] interface {
	Receive(val T)
}

// ListenerFunc adapts a function to the [Listener] interface.
type ListenerFunc[T any] func(val T)

func (f ListenerFunc[T]) Receive(val T) {
	f(val)
}

// Closer may be implemented by a [Listener] that wants to know when its [Source] is closed.
type Closer interface {
	Close()
}

// Subject is anything that a [Handle] can be registered with.
type Subject[T any] interface {
	Listen(handle Handle[T])
}

// Handle is a registration of a [Listener] with a [Source].
type Handle[T any] interface {
	// Deliver forwards val to the listener, returning false if the listener no longer exists.
	Deliver(val T) bool
	// Alive returns false once the listener no longer exists, and the Handle can be discarded.
	Alive() bool
	// Close tells the listener that no more values will be delivered, if it implements [Closer].
	// Returns false if the listener no longer exists.
	Close() bool
}

var _ Handle[int] = (*weakHandle[int, ListenerFunc[int], *ListenerFunc[int]])(nil)

type weakHandle[T any, E any, P interface {
	*E
	Listener[T]
}] struct {
	ptr weak.Pointer[E]
}

// Wrap creates a [Handle] that refers to target without keeping it alive.
// Once target is garbage collected, the [Handle] will no longer deliver values.
//
// The listener's value type is usually given explicitly, and the rest is inferred.
//
//	handle := subject.Wrap[int](mapper)
//
// Zero-sized values all share one address and are never collected, so Wrap panics if E has no size.
// Use [Strong] to register a stateless listener instead.
func Wrap[T any, E any, P interface {
	*E
	Listener[T]
}](target P) Handle[T] {
	if target == nil {
		panic("nil listener")
	}
	if unsafe.Sizeof(*target) == 0 {
		panic("zero-sized listener can't be weakly registered, use Strong")
	}
	return &weakHandle[T, E, P]{ptr: weak.Make((*E)(target))}
}

func (h *weakHandle[T, E, P]) Deliver(val T) bool {
	target := h.ptr.Value()
	if target == nil {
		return false
	}
	P(target).Receive(val)
	return true
}

func (h *weakHandle[T, E, P]) Alive() bool {
	return h.ptr.Value() != nil
}

func (h *weakHandle[T, E, P]) Close() bool {
	target := h.ptr.Value()
	if target == nil {
		return false
	}
	if closer, ok := any(P(target)).(Closer); ok {
		closer.Close()
	}
	return true
}

type strongHandle[T any] struct {
	listener Listener[T]
}

// Strong creates a [Handle] that keeps listener alive for as long as it's registered.
func Strong[T any](listener Listener[T]) Handle[T] {
	if listener == nil {
		panic("nil listener")
	}
	return &strongHandle[T]{listener: listener}
}

func (h *strongHandle[T]) Deliver(val T) bool {
	h.listener.Receive(val)
	return true
}

func (h *strongHandle[T]) Alive() bool {
	return true
}

func (h *strongHandle[T]) Close() bool {
	if closer, ok := h.listener.(Closer); ok {
		closer.Close()
	}
	return true
}
