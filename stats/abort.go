package stats

import "sync/atomic"

// abortFlag is the single process-wide cooperative-cancellation flag
// underlying both manual cancellation and timeouts (§5/§9). Long-running
// solver loops poll it at coarse granularity (every few thousand lift
// attempts, and between SCC components).
var abortFlag atomic.Bool

// RequestAbort sets the process-wide abort flag. Typically called by a timer
// goroutine after a configured delay, or in response to a user cancellation.
func RequestAbort() { abortFlag.Store(true) }

// ResetAbort clears the process-wide abort flag. Intended for tests and for
// reusing a process across independent solves.
func ResetAbort() { abortFlag.Store(false) }

// CheckAbort reports whether the process-wide abort flag is set.
func CheckAbort() bool { return abortFlag.Load() }
