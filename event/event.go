package event

import (
	"github.com/saylorsolutions/eventx/subject"
	"reflect"
)

// Event is a stage in a chain that forwards values of type A, and can have further stages attached.
//
// Go methods can't introduce type parameters, so changing the value type is done with the [Map] function instead of a method.
// Custom stage kinds only need to implement this interface to compose with the rest of the package.
type Event[A any] interface {
	subject.Subject[A]
	// Filter attaches a stage that forwards only the values for which pred returns true.
	Filter(pred func(A) bool) *FilterStage[A]
	// Iter attaches a stage that buffers values so they can be pulled with [Iter.Next].
	Iter() *Iter[A]
}

// mustHaveUpstream panics if upstream is nil, including a nil pointer held in the interface.
func mustHaveUpstream[A any](upstream Event[A]) {
	if upstream == nil {
		panic("nil upstream")
	}
	if val := reflect.ValueOf(upstream); val.Kind() == reflect.Pointer && val.IsNil() {
		panic("nil upstream")
	}
}

// Map attaches a stage to upstream that forwards fn(val) for every value received.
// fn may be called from any goroutine sending into the chain, so it should be free of shared side effects.
func Map[A, B any](upstream Event[A], fn func(A) B) *MapStage[A, B] {
	mustHaveUpstream(upstream)
	stage := &MapStage[A, B]{
		upstream: upstream,
		mapper:   subject.NewMapper(fn),
	}
	upstream.Listen(subject.Wrap[A](stage.mapper))
	return stage
}

// Filter attaches a stage to upstream that forwards only the values for which pred returns true.
// Rejected values are dropped without notice.
func Filter[A any](upstream Event[A], pred func(A) bool) *FilterStage[A] {
	mustHaveUpstream(upstream)
	stage := &FilterStage[A]{
		upstream: upstream,
		filter:   subject.NewFilter(pred),
	}
	upstream.Listen(subject.Wrap[A](stage.filter))
	return stage
}

// Iterate attaches an [Iter] to upstream.
func Iterate[A any](upstream Event[A]) *Iter[A] {
	mustHaveUpstream(upstream)
	it := &Iter[A]{
		upstream: upstream,
		recv:     subject.NewReceiver[A](),
	}
	upstream.Listen(subject.Wrap[A](it.recv))
	return it
}
