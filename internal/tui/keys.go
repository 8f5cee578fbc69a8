package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit key.Binding
	Back key.Binding

	// Navigation
	Timer    key.Binding
	Settings key.Binding

	// Timer controls
	Start  key.Binding
	Pause  key.Binding
	Toggle key.Binding
	Reset  key.Binding
	Work   key.Binding
	Break  key.Binding

	// Settings
	Edit  key.Binding
	Sound key.Binding
	Dark  key.Binding
	Save  key.Binding
	Next  key.Binding
	Prev  key.Binding
}

var DefaultKeyMap = KeyMap{
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Timer:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "timer")),
	Settings: key.NewBinding(key.WithKeys(","), key.WithHelp(",", "settings")),
	Start:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start")),
	Pause:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
	Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start/pause")),
	Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	Work:     key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "work")),
	Break:    key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "break")),
	Edit:     key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter", "edit durations")),
	Sound:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "sound on/off")),
	Dark:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dark mode on/off")),
	Save:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	Next:     key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
	Prev:     key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous field")),
}
