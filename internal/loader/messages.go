package loader

// TickMsg advances a running sequencer.
type TickMsg struct {
	ID  int
	Gen int
}

// SettledMsg ends the settle delay.
type SettledMsg struct {
	ID  int
	Gen int
}

// CompleteMsg is emitted once when a sequencer finishes a cycle.
type CompleteMsg struct {
	ID int
}
