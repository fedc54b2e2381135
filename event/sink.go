package event

import (
	"github.com/saylorsolutions/eventx/subject"
)

// Sink is the entry point of a chain.
type Sink[A any] struct {
	source *subject.Source[A]
}

var _ Event[int] = (*Sink[int])(nil)

// NewSink creates a [Sink] with no stages attached.
// The options configure the underlying [subject.Source], such as its logger.
func NewSink[A any](opts ...subject.Option) *Sink[A] {
	return &Sink[A]{
		source: subject.NewSource[A](append([]subject.Option{subject.WithName("sink")}, opts...)...),
	}
}

// Send pushes val through every attached stage, depth first, before returning.
// Values are shared between stages, so they must not be mutated by any of them.
//
// A panic in a stage's function propagates to the caller of Send.
func (s *Sink[A]) Send(val A) {
	s.source.Send(val)
}

// Close ends the chain.
// Every downstream [Iter] reports exhaustion once its buffered values are consumed, and further sends are dropped.
func (s *Sink[A]) Close() {
	s.source.Close()
}

func (s *Sink[A]) Listen(handle subject.Handle[A]) {
	s.source.Listen(handle)
}

func (s *Sink[A]) Filter(pred func(A) bool) *FilterStage[A] {
	return Filter[A](s, pred)
}

func (s *Sink[A]) Iter() *Iter[A] {
	return Iterate[A](s)
}

// Len returns the number of stages registered directly with this Sink.
// Stages that were collected are counted until they're pruned by a later send.
func (s *Sink[A]) Len() int {
	return s.source.Len()
}
