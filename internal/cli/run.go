package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/andy/pomo/internal/domain"
	"github.com/andy/pomo/internal/schedule"
	"github.com/andy/pomo/internal/service"
	"github.com/spf13/cobra"
)

var runMode string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the timer without the TUI",
	Long: `Run the timer in the foreground, printing one line per second.

Type a command and press enter while it runs:
  s  start      p  pause      r  reset
  w  work mode  b  break mode q  quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := domain.ParseMode(runMode)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		loop := schedule.NewLoop()
		display := newLineDisplay(cmd.OutOrStdout())
		engine := appInstance.NewTimerEngine(ctx, loop, display)
		display.attach(engine)

		// Nothing else is running yet, so the engine can be driven from here
		engine.SwitchMode(mode)
		engine.Start()

		go readCommands(ctx, cmd.InOrStdin(), loop, engine, cancel)

		if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

// readCommands forwards stdin commands to the loop goroutine
func readCommands(ctx context.Context, in io.Reader, loop *schedule.Loop, engine service.TimerEngine, quit func()) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		command := strings.TrimSpace(strings.ToLower(scanner.Text()))
		if command == "q" || command == "quit" {
			quit()
			return
		}
		ok := loop.Post(ctx, func() { applyCommand(engine, command) })
		if !ok {
			return
		}
	}
}

// applyCommand maps a one-letter command onto the engine
func applyCommand(engine service.TimerEngine, command string) {
	switch command {
	case "s", "start":
		engine.Start()
	case "p", "pause":
		engine.Pause()
	case "r", "reset":
		engine.Reset()
	case "w", "work":
		engine.SwitchMode(domain.ModeWork)
	case "b", "break":
		engine.SwitchMode(domain.ModeBreak)
	}
}

// lineDisplay prints the countdown as plain text lines
type lineDisplay struct {
	out       io.Writer
	engine    service.TimerEngine
	remaining int
}

func newLineDisplay(out io.Writer) *lineDisplay {
	return &lineDisplay{out: out}
}

// attach lets the display read the mode and hooks phase announcements
func (d *lineDisplay) attach(engine service.TimerEngine) {
	d.engine = engine
	engine.AddObserver(d.observe)
}

func (d *lineDisplay) OnTick(remainingSeconds int) {
	d.remaining = remainingSeconds
}

func (d *lineDisplay) OnProgress(fraction float64) {
	if d.engine == nil {
		return
	}
	fmt.Fprintf(d.out, "%-5s %s %s %3.0f%%\n",
		d.engine.State().Mode, domain.FormatClock(d.remaining), progressBar(fraction, 20), fraction*100)
}

func (d *lineDisplay) observe(ev service.Event) {
	switch ev.Type {
	case service.EventRunningChange:
		fmt.Fprintf(d.out, "-- %s\n", ev.State.Status())
	case service.EventCompleted:
		fmt.Fprintf(d.out, "-- %s finished, %s started\n", ev.Completed, ev.State.Mode)
	}
}

// progressBar draws fraction as a fixed-width text bar
func progressBar(fraction float64, width int) string {
	filled := int(fraction * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

func init() {
	runCmd.Flags().StringVarP(&runMode, "mode", "m", string(domain.ModeWork), "mode to start in (work or break)")
}
