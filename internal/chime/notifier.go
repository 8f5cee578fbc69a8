package chime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"time"
)

// ErrNoPlayer is returned when no audio player command is configured or found
var ErrNoPlayer = errors.New("no audio player available")

// playTimeout bounds how long a player process may run
const playTimeout = 5 * time.Second

// candidatePlayers are tried in order by DetectPlayer
var candidatePlayers = [][]string{
	{"paplay"},
	{"aplay", "-q"},
	{"afplay"},
	{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet"},
}

// DetectPlayer returns the first candidate player found by lookPath, or nil
func DetectPlayer(lookPath func(string) (string, error)) []string {
	for _, candidate := range candidatePlayers {
		if _, err := lookPath(candidate[0]); err == nil {
			return candidate
		}
	}
	return nil
}

// CommandNotifier plays the tone through an external player command.
// Chime returns once the player has started; playback finishes in the
// background and its failures are logged.
type CommandNotifier struct {
	Player  []string
	Tone    Tone
	TempDir string
}

// NewCommandNotifier creates a notifier for the given player, auto-detecting
// one when player is empty
func NewCommandNotifier(player []string) *CommandNotifier {
	if len(player) == 0 {
		player = DetectPlayer(exec.LookPath)
	}
	return &CommandNotifier{Player: player, Tone: DefaultTone}
}

func (n *CommandNotifier) Chime(ctx context.Context) error {
	if len(n.Player) == 0 {
		return ErrNoPlayer
	}

	f, err := os.CreateTemp(n.TempDir, "pomo-chime-*.wav")
	if err != nil {
		return fmt.Errorf("failed to create chime file: %w", err)
	}
	path := f.Name()
	if _, err := f.Write(n.Tone.WAV()); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("failed to write chime file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to write chime file: %w", err)
	}

	playCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), playTimeout)
	args := append(append([]string(nil), n.Player[1:]...), path)
	cmd := exec.CommandContext(playCtx, n.Player[0], args...)
	if err := cmd.Start(); err != nil {
		cancel()
		os.Remove(path)
		return fmt.Errorf("failed to start %s: %w", n.Player[0], err)
	}

	go func() {
		defer cancel()
		defer os.Remove(path)
		if err := cmd.Wait(); err != nil {
			log.Printf("chime: %s exited: %v", n.Player[0], err)
		}
	}()
	return nil
}

// BellNotifier rings the terminal bell
type BellNotifier struct {
	Out io.Writer
}

func (n *BellNotifier) Chime(ctx context.Context) error {
	if n.Out == nil {
		return errors.New("bell: no output")
	}
	if _, err := io.WriteString(n.Out, "\a"); err != nil {
		return fmt.Errorf("bell: %w", err)
	}
	return nil
}

// Notifier is anything that can sound the chime
type Notifier interface {
	Chime(ctx context.Context) error
}

// Chain tries each notifier in order and stops at the first success
type Chain []Notifier

func (c Chain) Chime(ctx context.Context) error {
	var errs []error
	for _, n := range c {
		err := n.Chime(ctx)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return ErrNoPlayer
	}
	return errors.Join(errs...)
}
