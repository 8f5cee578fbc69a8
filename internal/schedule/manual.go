package schedule

import "time"

// Manual is a Scheduler whose callbacks only run when Fire is called.
// It lets tests drive the timer tick by tick.
type Manual struct {
	nextID int
	subs   map[int]*manualSubscription
	order  []int
}

type manualSubscription struct {
	id        int
	interval  time.Duration
	fn        func()
	scheduler *Manual
}

// NewManual creates a Manual scheduler with no subscriptions
func NewManual() *Manual {
	return &Manual{subs: make(map[int]*manualSubscription)}
}

// Every registers fn; it runs once per Fire until cancelled
func (m *Manual) Every(interval time.Duration, fn func()) Subscription {
	m.nextID++
	sub := &manualSubscription{id: m.nextID, interval: interval, fn: fn, scheduler: m}
	m.subs[sub.id] = sub
	m.order = append(m.order, sub.id)
	return sub
}

// Fire runs every subscription that was active when Fire was called and is
// still active when its turn comes.
func (m *Manual) Fire() {
	ids := append([]int(nil), m.order...)
	for _, id := range ids {
		if sub, ok := m.subs[id]; ok {
			sub.fn()
		}
	}
}

// FireN calls Fire n times
func (m *Manual) FireN(n int) {
	for i := 0; i < n; i++ {
		m.Fire()
	}
}

// Active returns the number of live subscriptions
func (m *Manual) Active() int {
	return len(m.subs)
}

// Interval returns the interval of the most recent live subscription, or 0
func (m *Manual) Interval() time.Duration {
	for i := len(m.order) - 1; i >= 0; i-- {
		if sub, ok := m.subs[m.order[i]]; ok {
			return sub.interval
		}
	}
	return 0
}

func (s *manualSubscription) Cancel() {
	m := s.scheduler
	if _, ok := m.subs[s.id]; !ok {
		return
	}
	delete(m.subs, s.id)
	for i, id := range m.order {
		if id == s.id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}
