// Package explore tracks which portfolio projects have been explored and derives
// the gates of the two-tier unlock progression.
//
// State is a value. Every change goes through Apply, which returns a new State and
// never mutates its input, so any earlier State a caller holds stays valid.
package explore

import (
	"slices"

	"github.com/ayomide-cmd/folio/internal/catalog"
)

// State is the exploration progress of one page session.
type State struct {
	catalog    *catalog.Catalog
	explored   []string
	nudgeShown bool
}

// New returns the empty State for a catalog.
func New(c *catalog.Catalog) State {
	return State{catalog: c}
}

// Catalog returns the catalog the state tracks.
func (s State) Catalog() *catalog.Catalog {
	return s.catalog
}

// Explored returns the explored ids in the order they were activated.
func (s State) Explored() []string {
	return slices.Clone(s.explored)
}

// Count returns the number of explored projects.
func (s State) Count() int {
	return len(s.explored)
}

// Total returns the number of projects in the catalog.
func (s State) Total() int {
	if s.catalog == nil {
		return 0
	}
	return s.catalog.Len()
}

// IsExplored reports whether id has been activated.
func (s State) IsExplored(id string) bool {
	return slices.Contains(s.explored, id)
}

// FlagshipComplete reports whether every primary-tier project is explored.
func (s State) FlagshipComplete() bool {
	if s.catalog == nil {
		return false
	}
	for _, id := range s.catalog.PrimaryIDs() {
		if !s.IsExplored(id) {
			return false
		}
	}
	return true
}

// MissionComplete reports whether every project in the catalog is explored.
func (s State) MissionComplete() bool {
	if s.catalog == nil {
		return false
	}
	for _, p := range s.catalog.Items() {
		if !s.IsExplored(p.ID()) {
			return false
		}
	}
	return true
}

// Locked reports whether id belongs to the secondary tier and is still hidden.
func (s State) Locked(id string) bool {
	if s.catalog == nil {
		return false
	}
	tier, ok := s.catalog.TierOf(id)
	return ok && tier == catalog.TierSecondary && !s.FlagshipComplete()
}

// ProgressRatio returns explored / total, in [0, 1].
func (s State) ProgressRatio() float64 {
	total := s.Total()
	if total == 0 {
		return 0
	}
	return float64(len(s.explored)) / float64(total)
}

// NudgeShown reports whether the unfinished-mission nudge has been latched.
func (s State) NudgeShown() bool {
	return s.nudgeShown
}

// NudgeVisible reports whether the nudge should be rendered.
// Completing the mission suppresses it permanently.
func (s State) NudgeVisible() bool {
	return s.nudgeShown && !s.MissionComplete()
}

// VisibleProjects returns the projects the page should render: the flagship tier,
// followed by the supporting tier once it is unlocked.
func (s State) VisibleProjects() []catalog.Project {
	if s.catalog == nil {
		return nil
	}
	out := s.catalog.ByTier(catalog.TierPrimary)
	if s.FlagshipComplete() {
		out = append(out, s.catalog.ByTier(catalog.TierSecondary)...)
	}
	return out
}
