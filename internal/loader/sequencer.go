// Package loader simulates load progress: a bounded counter that advances on a
// fixed cadence and signals completion exactly once after a short settle delay.
package loader

import (
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
)

// Phase is the sequencer's lifecycle state.
type Phase int

const (
	PhaseIdle      Phase = iota // Not started
	PhaseRunning                // Ticking toward Max
	PhaseSettling               // Reached Max, waiting out the settle delay
	PhaseDone                   // Completion signalled
	PhaseCancelled              // Torn down before completion
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseSettling:
		return "settling"
	case PhaseDone:
		return "done"
	case PhaseCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transitions are possible in this cycle.
func (p Phase) Terminal() bool {
	return p == PhaseDone || p == PhaseCancelled
}

// Config controls the cadence of a sequencer.
type Config struct {
	Interval time.Duration // Time between ticks
	Step     int           // Increment per tick
	Max      int           // Value at which the run completes
	Settle   time.Duration // Delay between reaching Max and completion
}

// DefaultConfig returns the intro cadence: one percent
// every 30ms, then half a second before the page appears.
func DefaultConfig() Config {
	return Config{
		Interval: 30 * time.Millisecond,
		Step:     1,
		Max:      100,
		Settle:   500 * time.Millisecond,
	}
}

func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.Interval <= 0 {
		c.Interval = d.Interval
	}
	if c.Step <= 0 {
		c.Step = d.Step
	}
	if c.Max <= 0 {
		c.Max = d.Max
	}
	if c.Settle < 0 {
		c.Settle = 0
	}
	return c
}

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

// Sequencer is the progress state machine.
//
// Every Start and Cancel bumps a generation counter. Scheduled ticks carry the
// generation they were issued under and are dropped if it no longer matches, so a
// timer that fires after Cancel or a restart has no effect.
type Sequencer struct {
	cfg   Config
	id    int
	gen   int
	value int
	phase Phase
}

// New creates an idle Sequencer.
func New(cfg Config) *Sequencer {
	return &Sequencer{
		cfg: cfg.normalized(),
		id:  nextID(),
	}
}

// ID identifies the sequencer in its messages.
func (s *Sequencer) ID() int { return s.id }

// Value returns the current progress in [0, Max].
func (s *Sequencer) Value() int { return s.value }

// Phase returns the lifecycle state.
func (s *Sequencer) Phase() Phase { return s.phase }

// Config returns the normalized configuration.
func (s *Sequencer) Config() Config { return s.cfg }

// Percent returns Value as a fraction of Max.
func (s *Sequencer) Percent() float64 {
	return float64(s.value) / float64(s.cfg.Max)
}

// Start resets the value and begins a new cycle, returning the first tick.
func (s *Sequencer) Start() tea.Cmd {
	s.begin()
	return s.tickCmd()
}

func (s *Sequencer) begin() {
	s.gen++
	s.value = 0
	s.phase = PhaseRunning
}

// Tick advances the value by one step, clamped at Max. It reports whether this
// tick reached Max, which moves the sequencer into PhaseSettling. Outside
// PhaseRunning it does nothing.
func (s *Sequencer) Tick() bool {
	if s.phase != PhaseRunning {
		return false
	}
	s.value = min(s.value+s.cfg.Step, s.cfg.Max)
	if s.value < s.cfg.Max {
		return false
	}
	s.phase = PhaseSettling
	return true
}

// Settle ends the settle wait. It reports true exactly once per cycle: the moment
// the completion signal must fire.
func (s *Sequencer) Settle() bool {
	if s.phase != PhaseSettling {
		return false
	}
	s.phase = PhaseDone
	return true
}

// Cancel stops a running or settling cycle. Pending ticks and the settle timer are
// invalidated and completion never fires. It reports whether anything was cancelled.
func (s *Sequencer) Cancel() bool {
	if s.phase != PhaseRunning && s.phase != PhaseSettling {
		return false
	}
	s.gen++
	s.phase = PhaseCancelled
	return true
}

// Update handles the sequencer's own messages.
func (s *Sequencer) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case TickMsg:
		if !s.owns(msg.ID, msg.Gen) {
			return nil
		}
		if s.Tick() {
			return s.settleCmd()
		}
		if s.phase == PhaseRunning {
			return s.tickCmd()
		}

	case SettledMsg:
		if !s.owns(msg.ID, msg.Gen) {
			return nil
		}
		if s.Settle() {
			id := s.id
			return func() tea.Msg { return CompleteMsg{ID: id} }
		}
	}
	return nil
}

func (s *Sequencer) owns(id, gen int) bool {
	return id == s.id && gen == s.gen
}

func (s *Sequencer) tickCmd() tea.Cmd {
	id, gen := s.id, s.gen
	return tea.Tick(s.cfg.Interval, func(time.Time) tea.Msg {
		return TickMsg{ID: id, Gen: gen}
	})
}

func (s *Sequencer) settleCmd() tea.Cmd {
	id, gen := s.id, s.gen
	return tea.Tick(s.cfg.Settle, func(time.Time) tea.Msg {
		return SettledMsg{ID: id, Gen: gen}
	})
}
