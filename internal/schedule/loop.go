package schedule

import (
	"context"
	"time"
)

// Loop is a single-goroutine event loop. Ticker goroutines only hand
// closures to the loop; Run executes them one at a time, so tick callbacks
// and posted commands never overlap.
type Loop struct {
	tasks chan func()
	subs  map[*loopSubscription]struct{}
}

type loopSubscription struct {
	loop      *Loop
	done      chan struct{}
	cancelled bool
}

// NewLoop creates an idle loop. Call Run to start processing.
func NewLoop() *Loop {
	return &Loop{
		tasks: make(chan func(), 16),
		subs:  make(map[*loopSubscription]struct{}),
	}
}

// Post queues fn to run on the loop goroutine. Safe from any goroutine.
// It gives up if ctx is cancelled before the loop accepts the task.
func (l *Loop) Post(ctx context.Context, fn func()) bool {
	select {
	case l.tasks <- fn:
		return true
	case <-ctx.Done():
		return false
	}
}

// Every must be called from the loop goroutine (or before Run).
func (l *Loop) Every(interval time.Duration, fn func()) Subscription {
	if interval <= 0 {
		interval = time.Second
	}
	sub := &loopSubscription{loop: l, done: make(chan struct{})}
	l.subs[sub] = struct{}{}

	run := func() {
		// Ticks already queued when Cancel ran are dropped here.
		if !sub.cancelled {
			fn()
		}
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-sub.done:
				return
			case <-ticker.C:
				select {
				case l.tasks <- run:
				case <-sub.done:
					return
				}
			}
		}
	}()

	return sub
}

// Run processes tasks until ctx is done, then cancels every subscription.
func (l *Loop) Run(ctx context.Context) error {
	defer l.cancelAll()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case task := <-l.tasks:
			task()
		}
	}
}

func (l *Loop) cancelAll() {
	for sub := range l.subs {
		sub.Cancel()
	}
}

func (s *loopSubscription) Cancel() {
	if s.cancelled {
		return
	}
	s.cancelled = true
	close(s.done)
	delete(s.loop.subs, s)
}
