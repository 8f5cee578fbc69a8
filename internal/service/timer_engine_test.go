package service

import (
	"context"
	"errors"
	"testing"

	"github.com/andy/pomo/internal/domain"
	"github.com/andy/pomo/internal/schedule"
)

// mock implementations
type mockStore struct {
	saved   *domain.Settings
	loadErr error
	saveErr error
	saves   int
}

func (m *mockStore) Load(ctx context.Context) (*domain.Settings, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.saved == nil {
		return nil, nil
	}
	s := *m.saved
	return &s, nil
}
func (m *mockStore) Save(ctx context.Context, settings domain.Settings) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = &settings
	return nil
}
func (m *mockStore) Delete(ctx context.Context) error {
	m.saved = nil
	return nil
}

type mockDisplay struct {
	ticks    []int
	progress []float64
}

func (m *mockDisplay) OnTick(remaining int)        { m.ticks = append(m.ticks, remaining) }
func (m *mockDisplay) OnProgress(fraction float64) { m.progress = append(m.progress, fraction) }

func (m *mockDisplay) lastTick() int {
	return m.ticks[len(m.ticks)-1]
}

type mockNotifier struct {
	calls int
	err   error
}

func (m *mockNotifier) Chime(ctx context.Context) error {
	m.calls++
	return m.err
}

type engineFixture struct {
	engine    *timerEngine
	store     *mockStore
	scheduler *schedule.Manual
	display   *mockDisplay
	notifier  *mockNotifier
}

func newFixture(t *testing.T, settings *domain.Settings) *engineFixture {
	t.Helper()
	f := &engineFixture{
		store:     &mockStore{saved: settings},
		scheduler: schedule.NewManual(),
		display:   &mockDisplay{},
		notifier:  &mockNotifier{},
	}
	f.engine = NewTimerEngine(context.Background(), f.store, f.scheduler, f.display, f.notifier).(*timerEngine)
	return f
}

func settingsWith(work, brk int, sound bool) *domain.Settings {
	return &domain.Settings{WorkDurationSeconds: work, BreakDurationSeconds: brk, SoundEnabled: sound}
}

func TestNewEngineStartsIdleInWorkMode(t *testing.T) {
	f := newFixture(t, nil)
	state := f.engine.State()

	if state.Mode != domain.ModeWork {
		t.Fatalf("expected work mode, got %s", state.Mode)
	}
	if state.RemainingSeconds != domain.DefaultWorkDurationSeconds {
		t.Fatalf("expected %d remaining, got %d", domain.DefaultWorkDurationSeconds, state.RemainingSeconds)
	}
	if state.Running {
		t.Fatalf("expected engine to start idle")
	}
	if f.display.lastTick() != domain.DefaultWorkDurationSeconds {
		t.Fatalf("expected initial render of full duration, got %d", f.display.lastTick())
	}
}

func TestNewEngineUsesSavedSettings(t *testing.T) {
	f := newFixture(t, settingsWith(600, 120, false))
	if f.engine.State().RemainingSeconds != 600 {
		t.Fatalf("expected 600 remaining, got %d", f.engine.State().RemainingSeconds)
	}
	if f.engine.Settings().SoundEnabled {
		t.Fatalf("expected saved sound setting to be honoured")
	}
}

func TestNewEngineFallsBackOnLoadError(t *testing.T) {
	store := &mockStore{loadErr: errors.New("corrupt")}
	e := NewTimerEngine(context.Background(), store, schedule.NewManual(), nil, nil)
	if e.Settings() != domain.DefaultSettings() {
		t.Fatalf("expected defaults, got %+v", e.Settings())
	}
}

func TestStartIsIdempotent(t *testing.T) {
	f := newFixture(t, nil)
	f.engine.Start()
	f.engine.Start()

	if f.scheduler.Active() != 1 {
		t.Fatalf("expected exactly one tick subscription, got %d", f.scheduler.Active())
	}
	if f.scheduler.Interval() != TickInterval {
		t.Fatalf("expected %v interval, got %v", TickInterval, f.scheduler.Interval())
	}
	if !f.engine.State().CanPause() || f.engine.State().CanStart() {
		t.Fatalf("expected pause enabled and start disabled while running")
	}
}

func TestTenTicksFromFullWorkDuration(t *testing.T) {
	f := newFixture(t, settingsWith(1500, 300, true))
	f.engine.Start()
	f.scheduler.FireN(10)

	if f.display.lastTick() != 1490 {
		t.Fatalf("expected 1490, got %d", f.display.lastTick())
	}
	if got := domain.FormatClock(f.display.lastTick()); got != "24:50" {
		t.Fatalf("expected 24:50, got %s", got)
	}
}

func TestPauseStopsTicks(t *testing.T) {
	f := newFixture(t, settingsWith(60, 30, true))
	f.engine.Start()
	f.scheduler.FireN(5)
	f.engine.Pause()

	if f.scheduler.Active() != 0 {
		t.Fatalf("expected subscription cancelled on pause")
	}

	f.scheduler.FireN(10)
	f.engine.Tick() // stray tick after pause
	state := f.engine.State()
	if state.RemainingSeconds != 55 {
		t.Fatalf("expected 55 remaining after pause, got %d", state.RemainingSeconds)
	}
	if state.Status() != domain.TimerStatusPaused {
		t.Fatalf("expected paused status, got %s", state.Status())
	}
}

func TestPauseWhenIdleIsNoop(t *testing.T) {
	f := newFixture(t, nil)
	var events []Event
	f.engine.AddObserver(func(ev Event) { events = append(events, ev) })

	f.engine.Pause()
	if len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}
	if f.engine.State().Status() != domain.TimerStatusIdle {
		t.Fatalf("expected idle status")
	}
}

func TestResetRestoresDuration(t *testing.T) {
	cases := []struct {
		name string
		mode domain.Mode
		work int
		brk  int
	}{
		{"work", domain.ModeWork, 90, 30},
		{"break", domain.ModeBreak, 90, 30},
		{"short phases", domain.ModeBreak, 2, 2},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, settingsWith(tc.work, tc.brk, false))
			f.engine.SwitchMode(tc.mode)
			f.engine.Start()
			f.scheduler.Fire()
			f.engine.Reset()

			state := f.engine.State()
			if state.Mode != tc.mode {
				t.Fatalf("reset changed mode to %s", state.Mode)
			}
			if state.RemainingSeconds != f.engine.Duration(tc.mode) {
				t.Fatalf("expected %d remaining, got %d", f.engine.Duration(tc.mode), state.RemainingSeconds)
			}
			if state.Running {
				t.Fatalf("expected reset to stop the countdown")
			}
			if f.scheduler.Active() != 0 {
				t.Fatalf("expected no active subscription after reset")
			}
		})
	}
}

func TestSwitchModeToCurrentIsNoop(t *testing.T) {
	f := newFixture(t, settingsWith(60, 30, true))
	f.engine.Start()
	f.scheduler.FireN(3)
	before := f.engine.State()

	f.engine.SwitchMode(domain.ModeWork)

	if f.engine.State() != before {
		t.Fatalf("expected unchanged state, got %+v", f.engine.State())
	}
	if f.scheduler.Active() != 1 {
		t.Fatalf("expected countdown to keep running")
	}
}

func TestSwitchModeLoadsTargetDuration(t *testing.T) {
	f := newFixture(t, settingsWith(60, 30, true))
	var modes []domain.Mode
	f.engine.AddObserver(func(ev Event) {
		if ev.Type == EventModeChange {
			modes = append(modes, ev.State.Mode)
		}
	})

	f.engine.Start()
	f.engine.SwitchMode(domain.ModeBreak)

	state := f.engine.State()
	if state.Mode != domain.ModeBreak || state.RemainingSeconds != 30 || state.Running {
		t.Fatalf("unexpected state after switch: %+v", state)
	}
	if f.scheduler.Active() != 0 {
		t.Fatalf("expected switch to cancel the tick subscription")
	}
	if len(modes) != 1 || modes[0] != domain.ModeBreak {
		t.Fatalf("expected one mode change to break, got %v", modes)
	}
}

func TestWorkCompletionChainsIntoBreak(t *testing.T) {
	f := newFixture(t, settingsWith(10, 4, true))
	f.engine.Start()
	f.scheduler.FireN(f.engine.Duration(domain.ModeWork))

	state := f.engine.State()
	if state.Mode != domain.ModeBreak {
		t.Fatalf("expected break mode, got %s", state.Mode)
	}
	if state.RemainingSeconds != 4 {
		t.Fatalf("expected full break duration, got %d", state.RemainingSeconds)
	}
	if !state.Running {
		t.Fatalf("expected break to auto-start")
	}
	if f.scheduler.Active() != 1 {
		t.Fatalf("expected exactly one subscription after chaining, got %d", f.scheduler.Active())
	}
}

func TestBreakCompletionChimesOnce(t *testing.T) {
	f := newFixture(t, settingsWith(20, 5, true))
	var completed []domain.Mode
	f.engine.AddObserver(func(ev Event) {
		if ev.Type == EventCompleted {
			completed = append(completed, ev.Completed)
		}
	})

	f.engine.SwitchMode(domain.ModeBreak)
	f.engine.Start()
	f.scheduler.FireN(5)

	if len(completed) != 1 || completed[0] != domain.ModeBreak {
		t.Fatalf("expected one break completion, got %v", completed)
	}
	if f.notifier.calls != 1 {
		t.Fatalf("expected one chime, got %d", f.notifier.calls)
	}
	state := f.engine.State()
	if state.Mode != domain.ModeWork || state.RemainingSeconds != 20 || !state.Running {
		t.Fatalf("unexpected state after break: %+v", state)
	}
}

func TestCompletionWithSoundDisabled(t *testing.T) {
	f := newFixture(t, settingsWith(2, 2, false))
	f.engine.Start()
	f.scheduler.FireN(2)

	if f.notifier.calls != 0 {
		t.Fatalf("expected no chime with sound disabled, got %d", f.notifier.calls)
	}
	if f.engine.State().Mode != domain.ModeBreak {
		t.Fatalf("expected phase change without sound")
	}
}

func TestChimeFailureDoesNotBlockTransition(t *testing.T) {
	f := newFixture(t, settingsWith(1, 1, true))
	f.notifier.err = errors.New("audio unavailable")

	f.engine.Start()
	f.scheduler.Fire()

	state := f.engine.State()
	if state.Mode != domain.ModeBreak || !state.Running {
		t.Fatalf("expected transition despite chime failure: %+v", state)
	}
}

func TestChainRunsIndefinitely(t *testing.T) {
	f := newFixture(t, settingsWith(3, 2, true))
	f.engine.Start()
	f.scheduler.FireN(3 + 2 + 3 + 2)

	state := f.engine.State()
	if state.Mode != domain.ModeWork || state.RemainingSeconds != 3 || !state.Running {
		t.Fatalf("expected fresh work phase after two full cycles: %+v", state)
	}
	if f.notifier.calls != 4 {
		t.Fatalf("expected 4 chimes, got %d", f.notifier.calls)
	}
}

func TestProgressMonotonic(t *testing.T) {
	f := newFixture(t, settingsWith(8, 3, false))
	if f.engine.Progress() != 0 {
		t.Fatalf("expected 0 at full remaining, got %v", f.engine.Progress())
	}

	f.engine.Start()
	prev := 0.0
	for i := 0; i < 7; i++ {
		f.scheduler.Fire()
		p := f.engine.Progress()
		if p < prev {
			t.Fatalf("progress decreased from %v to %v", prev, p)
		}
		prev = p
	}

	// the final tick renders 00:00 at full progress before the switch
	f.scheduler.Fire()
	if f.display.ticks[len(f.display.ticks)-2] != 0 {
		t.Fatalf("expected 00:00 render before the mode switch")
	}
	found := false
	for _, p := range f.display.progress {
		if p == 1 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a progress of 1 at zero remaining")
	}
}

func TestSetWorkDurationPersists(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	if err := f.engine.SetWorkDuration(ctx, 30); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.store.saved == nil || f.store.saved.WorkDurationSeconds != 1800 {
		t.Fatalf("expected 1800 seconds saved, got %+v", f.store.saved)
	}

	loaded, err := f.store.Load(ctx)
	if err != nil || loaded.WorkDurationSeconds != 1800 {
		t.Fatalf("expected reload of 1800, got %+v (%v)", loaded, err)
	}

	// idle in work mode, so the new duration shows immediately
	if f.engine.State().RemainingSeconds != 1800 {
		t.Fatalf("expected display reset to 1800, got %d", f.engine.State().RemainingSeconds)
	}
}

func TestSetDurationRejectsNonPositive(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	for _, minutes := range []int{0, -5} {
		if err := f.engine.SetBreakDuration(ctx, minutes); !errors.Is(err, domain.ErrInvalidDuration) {
			t.Fatalf("expected ErrInvalidDuration for %d, got %v", minutes, err)
		}
	}
	if f.store.saves != 0 {
		t.Fatalf("expected nothing persisted for rejected input")
	}
	if f.engine.Settings().BreakDurationSeconds != domain.DefaultBreakDurationSeconds {
		t.Fatalf("rejected input changed settings")
	}
}

func TestConfigureClampsToMinimum(t *testing.T) {
	f := newFixture(t, nil)
	zero := 0
	if err := f.engine.Configure(context.Background(), &zero, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.engine.Duration(domain.ModeWork) != domain.MinDurationSeconds {
		t.Fatalf("expected clamp to %d, got %d", domain.MinDurationSeconds, f.engine.Duration(domain.ModeWork))
	}
	if p := f.engine.Progress(); p != 0 {
		t.Fatalf("expected progress 0 after reset, got %v", p)
	}
}

func TestConfigureWhileRunningKeepsRemaining(t *testing.T) {
	f := newFixture(t, settingsWith(60, 30, true))
	f.engine.Start()
	f.scheduler.FireN(10)

	if err := f.engine.SetWorkDuration(context.Background(), 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.engine.State().RemainingSeconds != 50 {
		t.Fatalf("expected running countdown untouched, got %d", f.engine.State().RemainingSeconds)
	}

	f.engine.Reset()
	if f.engine.State().RemainingSeconds != 300 {
		t.Fatalf("expected new duration after reset, got %d", f.engine.State().RemainingSeconds)
	}
}

func TestConfigureOtherModeDoesNotReset(t *testing.T) {
	f := newFixture(t, settingsWith(60, 30, true))
	f.engine.Start()
	f.scheduler.FireN(10)
	f.engine.Pause()

	if err := f.engine.SetBreakDuration(context.Background(), 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.engine.State().RemainingSeconds != 50 {
		t.Fatalf("expected paused work countdown untouched, got %d", f.engine.State().RemainingSeconds)
	}
	if f.engine.Duration(domain.ModeBreak) != 120 {
		t.Fatalf("expected break 120s, got %d", f.engine.Duration(domain.ModeBreak))
	}
}

func TestSaveErrorKeepsSettingsApplied(t *testing.T) {
	f := newFixture(t, nil)
	f.store.saveErr = errors.New("disk full")

	err := f.engine.SetSoundEnabled(context.Background(), false)
	if err == nil {
		t.Fatalf("expected save error")
	}
	if f.engine.Settings().SoundEnabled {
		t.Fatalf("expected in-memory setting to be applied")
	}
}

func TestDarkModeEmitsSettingsChange(t *testing.T) {
	f := newFixture(t, nil)
	var got []Event
	f.engine.AddObserver(func(ev Event) {
		if ev.Type == EventSettingsChange {
			got = append(got, ev)
		}
	})

	if err := f.engine.SetDarkModeEnabled(context.Background(), true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || !got[0].Settings.DarkModeEnabled {
		t.Fatalf("expected one settings change with dark mode on, got %+v", got)
	}
	if !f.store.saved.DarkModeEnabled {
		t.Fatalf("expected dark mode persisted")
	}
}
