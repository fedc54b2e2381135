//go:build !windows

package signalx

import (
	"context"
	"github.com/stretchr/testify/assert"
	"os"
	"syscall"
	"testing"
	"time"
)

func TestSignalCtx(t *testing.T) {
	ctx, cancel := SignalCtx(context.Background(), syscall.SIGUSR1)
	defer cancel()

	p, err := os.FindProcess(os.Getpid())
	assert.NoError(t, err)
	assert.NoError(t, p.Signal(syscall.SIGUSR1))

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("Context should be cancelled by the signal")
	}
}

func TestSignalCtx_Cancel(t *testing.T) {
	ctx, cancel := SignalCtx(context.Background(), syscall.SIGUSR2)
	cancel()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestSignalCtx_NoSignals(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = SignalCtx(context.Background())
	})
}
