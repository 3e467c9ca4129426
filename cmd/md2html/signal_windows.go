//go:build windows

package main

import "os"

// shutdownSignals stop a running conversion. Windows delivers no SIGTERM.
var shutdownSignals = []os.Signal{os.Interrupt}
