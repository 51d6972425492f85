package app

import (
	"context"
	"os/signal"
	"syscall"
	"time"
)

// CancelFuncs holds the cancel functions returned by SetupLifecycle.
type CancelFuncs struct {
	CancelTimeout context.CancelFunc
	StopSignals   context.CancelFunc
}

// Cleanup releases both the signal handler and the timeout.
func (c *CancelFuncs) Cleanup() {
	if c.StopSignals != nil {
		c.StopSignals()
	}
	if c.CancelTimeout != nil {
		c.CancelTimeout()
	}
}

// SetupLifecycle returns a context canceled when timeout expires or when
// SIGINT or SIGTERM is received, whichever happens first.
func SetupLifecycle(ctx context.Context, timeout time.Duration) (context.Context, *CancelFuncs) {
	ctx, cancelTimeout := context.WithTimeout(ctx, timeout)
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	return ctx, &CancelFuncs{CancelTimeout: cancelTimeout, StopSignals: stopSignals}
}
