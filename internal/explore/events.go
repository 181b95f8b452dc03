package explore

import (
	"slices"

	"github.com/ayomide-cmd/folio/internal/catalog"
)

// Event is an input to Apply.
type Event interface {
	event()
}

// Activate records that the user opened a project.
type Activate struct {
	ID string
}

// LeaveSection records that the user scrolled past the project section.
type LeaveSection struct{}

func (Activate) event()     {}
func (LeaveSection) event() {}

// Outcome describes what Apply did with an Activate event.
type Outcome int

const (
	Recorded Outcome = iota // Appended to the explored set
	Repeated                // Already explored; no change
	Unknown                 // Not in the catalog; ignored
	Gated                   // Supporting tier while the flagship tier is incomplete; ignored
)

func (o Outcome) String() string {
	switch o {
	case Recorded:
		return "recorded"
	case Repeated:
		return "repeated"
	case Unknown:
		return "unknown"
	case Gated:
		return "gated"
	default:
		return "invalid"
	}
}

// Apply returns the state that results from ev. s is never modified.
func Apply(s State, ev Event) State {
	next, _ := apply(s, ev)
	return next
}

func apply(s State, ev Event) (State, Outcome) {
	switch ev := ev.(type) {
	case Activate:
		return s.activate(ev.ID)
	case LeaveSection:
		if !s.MissionComplete() {
			s.nudgeShown = true
		}
		return s, Recorded
	}
	return s, Unknown
}

func (s State) activate(id string) (State, Outcome) {
	if s.catalog == nil {
		return s, Unknown
	}
	tier, ok := s.catalog.TierOf(id)
	if !ok {
		return s, Unknown
	}
	if s.IsExplored(id) {
		return s, Repeated
	}
	if tier == catalog.TierSecondary && !s.FlagshipComplete() {
		return s, Gated
	}

	// Clip forces append to copy, so s keeps its own backing array.
	s.explored = append(slices.Clip(s.explored), id)
	return s, Recorded
}
