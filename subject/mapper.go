package subject

// Mapper is a [Listener] that applies a function to every value it receives, and sends the result to its own listeners.
type Mapper[A, B any] struct {
	fn     func(A) B
	source *Source[B]
}

var (
	_ Listener[int] = (*Mapper[int, string])(nil)
	_ Subject[int]  = (*Mapper[string, int])(nil)
	_ Closer        = (*Mapper[int, int])(nil)
)

// NewMapper creates a [Mapper] that applies fn.
// The options are used to configure the Mapper's own [Source].
func NewMapper[A, B any](fn func(A) B, opts ...Option) *Mapper[A, B] {
	if fn == nil {
		panic("nil mapping function")
	}
	return &Mapper[A, B]{
		fn:     fn,
		source: NewSource[B](append([]Option{WithName("mapper")}, opts...)...),
	}
}

func (m *Mapper[A, B]) Receive(val A) {
	m.source.Send(m.fn(val))
}

func (m *Mapper[A, B]) Listen(handle Handle[B]) {
	m.source.Listen(handle)
}

// Close closes the Mapper's [Source], and by extension all of its listeners.
func (m *Mapper[A, B]) Close() {
	m.source.Close()
}

// Len returns the number of listeners registered with this Mapper.
func (m *Mapper[A, B]) Len() int {
	return m.source.Len()
}

// Filter is a [Listener] that forwards only values that satisfy a predicate.
// Rejected values are dropped silently.
type Filter[T any] struct {
	pred   func(T) bool
	source *Source[T]
}

var (
	_ Listener[int] = (*Filter[int])(nil)
	_ Subject[int]  = (*Filter[int])(nil)
	_ Closer        = (*Filter[int])(nil)
)

// NewFilter creates a [Filter] that forwards values for which pred returns true.
func NewFilter[T any](pred func(T) bool, opts ...Option) *Filter[T] {
	if pred == nil {
		panic("nil filter")
	}
	return &Filter[T]{
		pred:   pred,
		source: NewSource[T](append([]Option{WithName("filter")}, opts...)...),
	}
}

func (f *Filter[T]) Receive(val T) {
	if !f.pred(val) {
		return
	}
	f.source.Send(val)
}

func (f *Filter[T]) Listen(handle Handle[T]) {
	f.source.Listen(handle)
}

// Close closes the Filter's [Source], and by extension all of its listeners.
func (f *Filter[T]) Close() {
	f.source.Close()
}

// Len returns the number of listeners registered with this Filter.
func (f *Filter[T]) Len() int {
	return f.source.Len()
}
