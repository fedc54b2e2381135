package event

import (
	"github.com/saylorsolutions/eventx/subject"
)

// MapStage is created by [Map], and forwards transformed values of type B.
type MapStage[A, B any] struct {
	upstream Event[A]
	mapper   *subject.Mapper[A, B]
}

var _ Event[string] = (*MapStage[int, string])(nil)

func (m *MapStage[A, B]) Listen(handle subject.Handle[B]) {
	m.mapper.Listen(handle)
}

func (m *MapStage[A, B]) Filter(pred func(B) bool) *FilterStage[B] {
	return Filter[B](m, pred)
}

func (m *MapStage[A, B]) Iter() *Iter[B] {
	return Iterate[B](m)
}

// Len returns the number of stages registered directly with this stage.
func (m *MapStage[A, B]) Len() int {
	return m.mapper.Len()
}

// FilterStage is created by [Filter], and forwards only the values that satisfy its predicate.
type FilterStage[A any] struct {
	upstream Event[A]
	filter   *subject.Filter[A]
}

var _ Event[int] = (*FilterStage[int])(nil)

func (f *FilterStage[A]) Listen(handle subject.Handle[A]) {
	f.filter.Listen(handle)
}

func (f *FilterStage[A]) Filter(pred func(A) bool) *FilterStage[A] {
	return Filter[A](f, pred)
}

func (f *FilterStage[A]) Iter() *Iter[A] {
	return Iterate[A](f)
}

// Len returns the number of stages registered directly with this stage.
func (f *FilterStage[A]) Len() int {
	return f.filter.Len()
}
