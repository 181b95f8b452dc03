package explore

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ayomide-cmd/folio/internal/catalog"
)

// Tracker owns the exploration State for one page session and logs its milestones.
type Tracker struct {
	state     State
	sessionID string
	log       *zap.Logger
}

// NewTracker creates a Tracker for c. A nil logger disables logging.
func NewTracker(c *catalog.Catalog, log *zap.Logger) *Tracker {
	if log == nil {
		log = zap.NewNop()
	}
	sessionID := uuid.New().String()
	return &Tracker{
		state:     New(c),
		sessionID: sessionID,
		log:       log.With(zap.String("session_id", sessionID)),
	}
}

// State returns the current state.
func (t *Tracker) State() State {
	return t.state
}

// SessionID returns the id attached to every log entry of this session.
func (t *Tracker) SessionID() string {
	return t.sessionID
}

// Activate explores id and returns the milestones it triggered.
func (t *Tracker) Activate(id string) []Milestone {
	return t.dispatch(Activate{ID: id})
}

// LeaveSection latches the nudge if the mission is unfinished.
func (t *Tracker) LeaveSection() []Milestone {
	return t.dispatch(LeaveSection{})
}

func (t *Tracker) dispatch(ev Event) []Milestone {
	prev := t.state
	next, outcome := apply(prev, ev)
	t.state = next

	if a, ok := ev.(Activate); ok {
		if outcome == Recorded {
			t.log.Info("project explored",
				zap.String("project", a.ID),
				zap.Int("explored", next.Count()),
				zap.Int("total", next.Total()))
		} else {
			t.log.Debug("activation ignored",
				zap.String("project", a.ID),
				zap.Stringer("outcome", outcome))
		}
	}

	milestones := Milestones(prev, next)
	for _, m := range milestones {
		t.log.Info("milestone reached", zap.Stringer("milestone", m))
	}
	return milestones
}
