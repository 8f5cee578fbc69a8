// Package schedule provides the periodic tick sources that drive the timer.
//
// Every Scheduler delivers callbacks on the goroutine that owns the timer,
// so callers never need to lock around the state a callback touches.
package schedule

import "time"

// Subscription is a handle to a repeating callback
type Subscription interface {
	// Cancel stops future callbacks. Safe to call more than once.
	Cancel()
}

// Scheduler creates repeating callbacks
type Scheduler interface {
	Every(interval time.Duration, fn func()) Subscription
}
