package subject

import (
	"github.com/saylorsolutions/eventx/syncx"
	"log/slog"
	"sync"
)

type sourceConfig struct {
	name   string
	logger *slog.Logger
}

// Option configures a [Source].
type Option func(conf *sourceConfig)

// WithLogger sets the logger used by a [Source] for diagnostic messages.
// By default, [slog.Default] is used at the time of logging.
func WithLogger(logger *slog.Logger) Option {
	return func(conf *sourceConfig) {
		conf.logger = logger
	}
}

// WithName sets a name that's attached to log messages from a [Source].
func WithName(name string) Option {
	return func(conf *sourceConfig) {
		conf.name = name
	}
}

// Source is a one-to-many distributor of values.
// Values sent to a Source are forwarded to every live [Handle] registered with [Source.Listen].
//
// A Source is safe for concurrent use.
type Source[T any] struct {
	name   string
	logger *slog.Logger

	deliverMux sync.Mutex
	mux        sync.RWMutex
	listeners  []Handle[T]
	closed     bool
}

var _ Subject[int] = (*Source[int])(nil)

// NewSource creates a [Source] with no listeners.
func NewSource[T any](opts ...Option) *Source[T] {
	var conf sourceConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&conf)
		}
	}
	if len(conf.name) == 0 {
		conf.name = "source"
	}
	return &Source[T]{
		name:   conf.name,
		logger: conf.logger,
	}
}

func (s *Source[T]) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return slog.Default()
}

// Listen registers handle to receive values sent to this [Source].
// If the Source is already closed, then handle is closed immediately instead.
func (s *Source[T]) Listen(handle Handle[T]) {
	if handle == nil {
		panic("nil handle")
	}
	var (
		closed bool
		count  int
	)
	syncx.LockFunc(&s.mux, func() {
		if s.closed {
			closed = true
			return
		}
		s.listeners = append(s.listeners, handle)
		count = len(s.listeners)
	})
	if closed {
		s.log().Debug("Listener registered with closed source", "source", s.name)
		handle.Close()
		return
	}
	s.log().Debug("Listener registered", "source", s.name, "listeners", count)
}

// Send forwards val to every live listener, in registration order, before returning.
// Listeners that have been garbage collected are pruned afterward.
//
// A panic raised by a listener is not recovered, and will propagate to the caller.
// Sending to a closed Source does nothing.
func (s *Source[T]) Send(val T) {
	s.deliverMux.Lock()
	defer s.deliverMux.Unlock()
	var (
		closed bool
		dead   int
	)
	syncx.RLockFunc(&s.mux, func() {
		if s.closed {
			closed = true
			return
		}
		for _, handle := range s.listeners {
			if !handle.Deliver(val) {
				dead++
			}
		}
	})
	if closed {
		s.log().Debug("Value sent to closed source was dropped", "source", s.name)
		return
	}
	if dead > 0 {
		s.Prune()
	}
}

// Prune removes registrations for listeners that no longer exist, and returns how many were removed.
// This happens automatically as part of [Source.Send].
func (s *Source[T]) Prune() int {
	removed := syncx.LockFuncT(&s.mux, func() int {
		kept := s.listeners[:0]
		for _, handle := range s.listeners {
			if handle.Alive() {
				kept = append(kept, handle)
			}
		}
		removed := len(s.listeners) - len(kept)
		clear(s.listeners[len(kept):])
		s.listeners = kept
		return removed
	})
	if removed > 0 {
		s.log().Debug("Pruned collected listeners", "source", s.name, "removed", removed)
	}
	return removed
}

// Close marks this [Source] as closed, and closes every live listener.
// Once closed, values sent to the Source are dropped, and new listeners are closed as soon as they're registered.
// This is safe to call more than once.
func (s *Source[T]) Close() {
	var (
		listeners []Handle[T]
		already   bool
	)
	syncx.LockFunc(&s.mux, func() {
		if s.closed {
			already = true
			return
		}
		s.closed = true
		listeners = s.listeners
		s.listeners = nil
	})
	if already {
		return
	}
	for _, handle := range listeners {
		handle.Close()
	}
	s.log().Debug("Source closed", "source", s.name, "listeners", len(listeners))
}

// Closed reports whether [Source.Close] has been called.
func (s *Source[T]) Closed() bool {
	return syncx.RLockFuncT(&s.mux, func() bool {
		return s.closed
	})
}

// Len returns the number of registered listeners.
// This may include listeners that have been collected, but not yet pruned.
func (s *Source[T]) Len() int {
	return syncx.RLockFuncT(&s.mux, func() int {
		return len(s.listeners)
	})
}
