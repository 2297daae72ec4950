package service

import "time"

// CancelFunc aborts a scheduled task. Calling it after the task fired, or
// more than once, is a no-op. It reports whether the task was still pending.
type CancelFunc func() bool

// Scheduler defines the interface for single-shot deferred tasks. The
// storefront uses exactly two: the simulated payment latency and the
// auto-return from the success screen. Both must be cancellable so a stale
// timer can never mutate state the user has already navigated away from.
type Scheduler interface {
	// Schedule runs fn once after the delay elapses unless cancelled first.
	Schedule(delay time.Duration, fn func()) CancelFunc
}
