// Package signalx ties context cancellation to OS signals.
package signalx

import (
	"context"
	"os"
	"os/signal"
)

// SignalCtx will set up a context that will be cancelled if any of the given signals are received.
// The returned cancel function stops listening for signals, and should be called once the context is no longer needed.
func SignalCtx(parent context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
	if len(signals) == 0 {
		panic("no signals passed to SignalCtx")
	}
	ctx, cancel := context.WithCancel(parent)
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, signals...)
	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}
