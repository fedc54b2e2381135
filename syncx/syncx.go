// Package syncx scopes critical sections to a function call.
// Locks are released with defer, so a panic in the function can't leave them held.
package syncx

import "sync"

// LockFunc runs fn while holding mux.
func LockFunc(mux sync.Locker, fn func()) {
	mux.Lock()
	defer mux.Unlock()
	fn()
}

// LockFuncT runs fn while holding mux and returns its result.
func LockFuncT[T any](mux sync.Locker, fn func() T) (val T) {
	LockFunc(mux, func() {
		val = fn()
	})
	return val
}

// RLockFunc runs fn while holding the shared lock of mux.
func RLockFunc(mux *sync.RWMutex, fn func()) {
	LockFunc(mux.RLocker(), fn)
}

// RLockFuncT runs fn while holding the shared lock of mux and returns its result.
func RLockFuncT[T any](mux *sync.RWMutex, fn func() T) T {
	return LockFuncT(mux.RLocker(), fn)
}
