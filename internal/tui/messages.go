package tui

// SwitchScreenMsg requests a screen change
type SwitchScreenMsg struct {
	Screen Screen
}

// scheduledTickMsg is one firing of a scheduler subscription
type scheduledTickMsg struct {
	id int
}
