package tui

import (
	"time"

	"github.com/andy/pomo/internal/schedule"
	tea "github.com/charmbracelet/bubbletea"
)

// teaScheduler delivers timer ticks as Bubble Tea messages so they run on
// the program's update goroutine. Each subscription re-arms a tea.Tick after
// it fires; a cancelled id is simply never re-armed and its pending message
// is ignored.
type teaScheduler struct {
	nextID  int
	active  map[int]*teaSubscription
	pending []tea.Cmd
}

type teaSubscription struct {
	id        int
	interval  time.Duration
	fn        func()
	scheduler *teaScheduler
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{active: make(map[int]*teaSubscription)}
}

func (s *teaScheduler) Every(interval time.Duration, fn func()) schedule.Subscription {
	s.nextID++
	sub := &teaSubscription{id: s.nextID, interval: interval, fn: fn, scheduler: s}
	s.active[sub.id] = sub
	s.pending = append(s.pending, sub.arm())
	return sub
}

// fire runs the subscription behind a tick message, if it is still live
func (s *teaScheduler) fire(id int) {
	sub, ok := s.active[id]
	if !ok {
		return
	}
	sub.fn()
	if _, ok := s.active[id]; ok {
		s.pending = append(s.pending, sub.arm())
	}
}

// drain returns the ticks armed since the last call
func (s *teaScheduler) drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

func (sub *teaSubscription) arm() tea.Cmd {
	id := sub.id
	return tea.Tick(sub.interval, func(time.Time) tea.Msg {
		return scheduledTickMsg{id: id}
	})
}

func (sub *teaSubscription) Cancel() {
	delete(sub.scheduler.active, sub.id)
}
