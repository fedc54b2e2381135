package syncx

import (
	"github.com/stretchr/testify/assert"
	"sync"
	"testing"
)

func TestLockFunc_ReleasesOnPanic(t *testing.T) {
	var mux sync.Mutex
	assert.Panics(t, func() {
		LockFunc(&mux, func() {
			panic("boom")
		})
	})
	assert.True(t, mux.TryLock(), "Lock should have been released by the deferred unlock")
	mux.Unlock()
}

func TestRLockFuncT(t *testing.T) {
	var (
		mux sync.RWMutex
		val = 5
	)
	got := RLockFuncT(&mux, func() int {
		assert.False(t, mux.TryLock(), "Exclusive lock should not be available while reading")
		return val
	})
	assert.Equal(t, 5, got)
	assert.True(t, mux.TryLock())
	mux.Unlock()
}

func TestLockFuncT(t *testing.T) {
	var mux sync.Mutex
	counter := 0
	var wg sync.WaitGroup
	wg.Add(50)
	for i := 0; i < 50; i++ {
		go func() {
			defer wg.Done()
			LockFunc(&mux, func() {
				counter++
			})
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, LockFuncT(&mux, func() int { return counter }))
}

func TestRLockFunc_SharedReaders(t *testing.T) {
	var mux sync.RWMutex
	inside := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		RLockFunc(&mux, func() {
			close(inside)
			<-release
		})
	}()
	<-inside
	entered := RLockFuncT(&mux, func() bool {
		return true
	})
	assert.True(t, entered, "A second reader should not wait for the first")
	assert.False(t, mux.TryLock(), "Writers should wait for readers")
	close(release)
	<-done
	assert.True(t, mux.TryLock())
	mux.Unlock()
}
