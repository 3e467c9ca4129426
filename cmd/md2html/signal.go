package main

import (
	"context"
	"os/signal"
)

// notifyContext cancels the returned context on the first shutdown signal.
// A conversion in flight stops at its next cancellation check; files already
// written stay on disk.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, shutdownSignals...)
}
