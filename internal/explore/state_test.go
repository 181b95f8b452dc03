package explore

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayomide-cmd/folio/internal/catalog"
)

// testCatalog is three flagship projects {A,B,C} and two supporting {D,E}.
func testCatalog() *catalog.Catalog {
	return catalog.MustNew([]catalog.Project{
		{Title: "A", Tier: catalog.TierPrimary},
		{Title: "B", Tier: catalog.TierPrimary},
		{Title: "C", Tier: catalog.TierPrimary},
		{Title: "D", Tier: catalog.TierSecondary},
		{Title: "E", Tier: catalog.TierSecondary},
	})
}

func activateAll(s State, ids ...string) State {
	for _, id := range ids {
		s = Apply(s, Activate{ID: id})
	}
	return s
}

func TestEmptyState(t *testing.T) {
	s := New(testCatalog())
	assert.Equal(t, 0, s.Count())
	assert.Equal(t, 5, s.Total())
	assert.False(t, s.FlagshipComplete())
	assert.False(t, s.MissionComplete())
	assert.False(t, s.NudgeShown())
	assert.Zero(t, s.ProgressRatio())
}

func TestWalkthrough(t *testing.T) {
	s := New(testCatalog())

	s = activateAll(s, "B", "A")
	assert.False(t, s.FlagshipComplete(), "two of three flagships explored")

	s = activateAll(s, "C")
	assert.True(t, s.FlagshipComplete())
	assert.False(t, s.MissionComplete())
	assert.InDelta(t, 0.6, s.ProgressRatio(), 1e-9)

	s = activateAll(s, "D", "E")
	assert.True(t, s.MissionComplete())
	assert.Equal(t, 1.0, s.ProgressRatio())

	if diff := cmp.Diff([]string{"B", "A", "C", "D", "E"}, s.Explored()); diff != "" {
		t.Errorf("explored order mismatch (-want +got):\n%s", diff)
	}
}

func TestActivateIsIdempotent(t *testing.T) {
	once := activateAll(New(testCatalog()), "A", "B")
	twice := activateAll(once, "A", "B", "A")

	if diff := cmp.Diff(once.Explored(), twice.Explored()); diff != "" {
		t.Errorf("repeat activation changed state (-once +twice):\n%s", diff)
	}
	assert.Equal(t, 2, twice.Count())
}

func TestActivateUnknownIsNoop(t *testing.T) {
	s := activateAll(New(testCatalog()), "A", "nope", "")
	assert.Equal(t, []string{"A"}, s.Explored())
	assert.InDelta(t, 0.2, s.ProgressRatio(), 1e-9)
}

func TestSecondaryGatedUntilFlagshipComplete(t *testing.T) {
	s := activateAll(New(testCatalog()), "A", "D")
	assert.False(t, s.IsExplored("D"))
	assert.True(t, s.Locked("D"))
	assert.False(t, s.Locked("A"))

	s = activateAll(s, "B", "C", "D")
	assert.True(t, s.IsExplored("D"))
	assert.False(t, s.Locked("E"))
}

func TestMissionImpliesFlagship(t *testing.T) {
	orders := [][]string{
		{"D", "E", "A", "B", "C"},
		{"A", "D", "B", "E", "C"},
		{"E", "C", "B", "A", "D", "E"},
	}
	for _, order := range orders {
		s := New(testCatalog())
		for _, id := range order {
			s = Apply(s, Activate{ID: id})
			if s.MissionComplete() {
				require.True(t, s.FlagshipComplete(), "order %v", order)
			}
		}
	}
}

func TestFlagshipLatchIsMonotonic(t *testing.T) {
	s := activateAll(New(testCatalog()), "A", "B", "C")
	require.True(t, s.FlagshipComplete())
	for _, id := range []string{"A", "D", "x", "E", "C"} {
		s = Apply(s, Activate{ID: id})
		assert.True(t, s.FlagshipComplete())
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	base := activateAll(New(testCatalog()), "A")
	// Fork two states from the same base; neither may see the other's append.
	left := Apply(base, Activate{ID: "B"})
	right := Apply(base, Activate{ID: "C"})

	assert.Equal(t, []string{"A"}, base.Explored())
	assert.Equal(t, []string{"A", "B"}, left.Explored())
	assert.Equal(t, []string{"A", "C"}, right.Explored())

	out := left.Explored()
	out[0] = "Z"
	assert.Equal(t, []string{"A", "B"}, left.Explored())
}

func TestLeaveSection(t *testing.T) {
	s := Apply(New(testCatalog()), LeaveSection{})
	assert.True(t, s.NudgeShown())
	assert.True(t, s.NudgeVisible())

	// Latched: exploring more does not clear it, but completion hides it.
	s = activateAll(s, "A", "B", "C", "D")
	assert.True(t, s.NudgeVisible())
	s = activateAll(s, "E")
	assert.True(t, s.NudgeShown())
	assert.False(t, s.NudgeVisible())
}

func TestLeaveSectionAfterCompletionDoesNotLatch(t *testing.T) {
	s := activateAll(New(testCatalog()), "A", "B", "C", "D", "E")
	s = Apply(s, LeaveSection{})
	assert.False(t, s.NudgeShown())
}

func TestVisibleProjects(t *testing.T) {
	titles := func(s State) []string {
		var out []string
		for _, p := range s.VisibleProjects() {
			out = append(out, p.Title)
		}
		return out
	}

	s := New(testCatalog())
	assert.Equal(t, []string{"A", "B", "C"}, titles(s))
	s = activateAll(s, "A", "B", "C")
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, titles(s))
}

func TestZeroState(t *testing.T) {
	var s State
	s = Apply(s, Activate{ID: "A"})
	assert.Zero(t, s.Count())
	assert.Zero(t, s.ProgressRatio())
	assert.False(t, s.FlagshipComplete())
	assert.False(t, s.MissionComplete())
	assert.Nil(t, s.VisibleProjects())
}

func TestMilestones(t *testing.T) {
	s := activateAll(New(testCatalog()), "A", "B")

	next := Apply(s, Activate{ID: "C"})
	assert.Equal(t, []Milestone{FlagshipUnlocked}, Milestones(s, next))

	s = activateAll(next, "D")
	next = Apply(s, Activate{ID: "E"})
	assert.Equal(t, []Milestone{MissionComplete}, Milestones(s, next))

	assert.Empty(t, Milestones(next, Apply(next, Activate{ID: "E"})))
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "gated", Gated.String())
	assert.Equal(t, "invalid", Outcome(99).String())
	assert.Equal(t, "mission_complete", MissionComplete.String())
}
