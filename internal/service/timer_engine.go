package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/andy/pomo/internal/domain"
	"github.com/andy/pomo/internal/repository"
	"github.com/andy/pomo/internal/schedule"
)

// TickInterval is the nominal spacing of countdown ticks
const TickInterval = time.Second

// TimerEngine is the work/break countdown state machine.
//
// The engine is not safe for concurrent use. All methods must be called from
// the goroutine that runs the scheduler's callbacks; every Scheduler in this
// module delivers ticks on that goroutine.
type TimerEngine interface {
	// Start begins counting down the current mode (no-op if running)
	Start()

	// Pause stops the countdown, keeping the remaining time (no-op if not running)
	Pause()

	// Reset pauses and refills the current mode's full duration
	Reset()

	// SwitchMode pauses and loads the target mode's full duration.
	// Switching to the current mode does nothing.
	SwitchMode(target domain.Mode)

	// Tick advances the countdown by one second. Ignored unless running.
	Tick()

	// Configure updates the durations (in seconds, nil leaves a value alone)
	// and persists the settings
	Configure(ctx context.Context, workSeconds, breakSeconds *int) error

	// SetWorkDuration and SetBreakDuration take whole minutes > 0
	SetWorkDuration(ctx context.Context, minutes int) error
	SetBreakDuration(ctx context.Context, minutes int) error

	SetSoundEnabled(ctx context.Context, enabled bool) error
	SetDarkModeEnabled(ctx context.Context, enabled bool) error

	State() domain.TimerState
	Settings() domain.Settings
	Progress() float64
	Duration(mode domain.Mode) int

	// AddObserver registers fn for every subsequent event
	AddObserver(fn Observer)
}

type timerEngine struct {
	store     repository.SettingsRepository
	scheduler schedule.Scheduler
	display   Display
	notifier  Notifier
	now       func() time.Time

	settings  domain.Settings
	state     domain.TimerState
	sub       schedule.Subscription
	observers []Observer
}

// NewTimerEngine loads saved settings and creates an idle engine in work mode.
// A failed or corrupt load falls back to the default settings.
// display and notifier may be nil.
func NewTimerEngine(
	ctx context.Context,
	store repository.SettingsRepository,
	scheduler schedule.Scheduler,
	display Display,
	notifier Notifier,
) TimerEngine {
	if display == nil {
		display = nopDisplay{}
	}
	if notifier == nil {
		notifier = nopNotifier{}
	}

	settings := domain.DefaultSettings()
	saved, err := store.Load(ctx)
	if err != nil {
		log.Printf("settings: %v; using defaults", err)
	} else if saved != nil {
		settings = saved.Normalized()
	}

	e := &timerEngine{
		store:     store,
		scheduler: scheduler,
		display:   display,
		notifier:  notifier,
		now:       time.Now,
		settings:  settings,
		state:     domain.NewTimerState(settings),
	}
	e.render()
	return e
}

func (e *timerEngine) Start() {
	if e.state.Running {
		return
	}
	e.state.Running = true
	e.state.Paused = false
	e.sub = e.scheduler.Every(TickInterval, e.Tick)
	e.emit(EventRunningChange)
}

func (e *timerEngine) Pause() {
	if !e.state.Running {
		return
	}
	e.state.Running = false
	e.state.Paused = true
	e.cancelTick()
	e.emit(EventRunningChange)
}

func (e *timerEngine) Reset() {
	e.Pause()
	e.state.Paused = false
	e.state.RemainingSeconds = e.Duration(e.state.Mode)
	e.render()
}

func (e *timerEngine) SwitchMode(target domain.Mode) {
	if target == e.state.Mode {
		return
	}
	e.Pause()
	e.state.Paused = false
	e.state.Mode = target
	e.state.RemainingSeconds = e.Duration(target)
	e.render()
	e.emit(EventModeChange)
}

func (e *timerEngine) Tick() {
	if !e.state.Running {
		return
	}
	if e.state.RemainingSeconds > 0 {
		e.state.RemainingSeconds--
		e.render()
		e.emit(EventTick)
	}
	if e.state.RemainingSeconds == 0 {
		e.complete()
	}
}

// complete chimes and chains straight into the other mode
func (e *timerEngine) complete() {
	finished := e.state.Mode
	e.Pause()

	if e.settings.SoundEnabled {
		if err := e.notifier.Chime(context.Background()); err != nil {
			log.Printf("chime failed: %v", err)
		}
	}

	e.SwitchMode(finished.Opposite())
	e.Start()

	e.emitEvent(Event{
		Type:      EventCompleted,
		State:     e.state,
		Progress:  e.Progress(),
		Settings:  e.settings,
		At:        e.now(),
		Completed: finished,
	})
}

func (e *timerEngine) Configure(ctx context.Context, workSeconds, breakSeconds *int) error {
	resetCurrent := false
	if workSeconds != nil {
		e.settings.WorkDurationSeconds = domain.ClampDurationSeconds(*workSeconds)
		resetCurrent = resetCurrent || e.state.Mode == domain.ModeWork
	}
	if breakSeconds != nil {
		e.settings.BreakDurationSeconds = domain.ClampDurationSeconds(*breakSeconds)
		resetCurrent = resetCurrent || e.state.Mode == domain.ModeBreak
	}

	// A running countdown keeps its remaining time; the new duration applies
	// the next time that mode starts fresh.
	if resetCurrent && !e.state.Running {
		e.Reset()
	}

	return e.settingsChanged(ctx)
}

func (e *timerEngine) SetWorkDuration(ctx context.Context, minutes int) error {
	seconds, err := domain.MinutesToSeconds(minutes)
	if err != nil {
		return err
	}
	return e.Configure(ctx, &seconds, nil)
}

func (e *timerEngine) SetBreakDuration(ctx context.Context, minutes int) error {
	seconds, err := domain.MinutesToSeconds(minutes)
	if err != nil {
		return err
	}
	return e.Configure(ctx, nil, &seconds)
}

func (e *timerEngine) SetSoundEnabled(ctx context.Context, enabled bool) error {
	e.settings.SoundEnabled = enabled
	return e.settingsChanged(ctx)
}

func (e *timerEngine) SetDarkModeEnabled(ctx context.Context, enabled bool) error {
	e.settings.DarkModeEnabled = enabled
	return e.settingsChanged(ctx)
}

func (e *timerEngine) State() domain.TimerState {
	return e.state
}

func (e *timerEngine) Settings() domain.Settings {
	return e.settings
}

func (e *timerEngine) Progress() float64 {
	return domain.Progress(e.Duration(e.state.Mode), e.state.RemainingSeconds)
}

func (e *timerEngine) Duration(mode domain.Mode) int {
	return e.settings.Duration(mode)
}

func (e *timerEngine) AddObserver(fn Observer) {
	if fn != nil {
		e.observers = append(e.observers, fn)
	}
}

// settingsChanged persists the settings and notifies observers.
// The in-memory settings stay applied when the save fails.
func (e *timerEngine) settingsChanged(ctx context.Context) error {
	e.emit(EventSettingsChange)
	if err := e.store.Save(ctx, e.settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

func (e *timerEngine) cancelTick() {
	if e.sub != nil {
		e.sub.Cancel()
		e.sub = nil
	}
}

func (e *timerEngine) render() {
	e.display.OnTick(e.state.RemainingSeconds)
	e.display.OnProgress(e.Progress())
}

func (e *timerEngine) emit(eventType EventType) {
	e.emitEvent(Event{
		Type:     eventType,
		State:    e.state,
		Progress: e.Progress(),
		Settings: e.settings,
		At:       e.now(),
	})
}

func (e *timerEngine) emitEvent(event Event) {
	for _, fn := range e.observers {
		fn(event)
	}
}
