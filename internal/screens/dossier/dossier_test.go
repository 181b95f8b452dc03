package dossier

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ayomide-cmd/folio/internal/catalog"
	"github.com/ayomide-cmd/folio/internal/explore"
	"github.com/ayomide-cmd/folio/internal/router"
)

func testState(t *testing.T, ids ...string) (explore.State, catalog.Project) {
	t.Helper()
	c := catalog.MustNew([]catalog.Project{
		{Title: "Alpha", Tier: catalog.TierPrimary, Desc: "First flagship."},
		{Title: "Beta", Tier: catalog.TierSecondary, Desc: "Supporting work."},
	})
	s := explore.New(c)
	for _, id := range ids {
		s = explore.Apply(s, explore.Activate{ID: id})
	}
	p, _ := c.Lookup("Alpha")
	return s, p
}

func TestViewShowsProjectAndStatus(t *testing.T) {
	state, project := testState(t, "Alpha")
	d := New(project, state, nil)

	view := d.View(100, 30)
	if !strings.Contains(view, "ALPHA") {
		t.Error("view should show the project title")
	}
	if !strings.Contains(view, "INTEL COLLECTED") {
		t.Error("view should show the collected status")
	}
	if !strings.Contains(view, "1 / 2") {
		t.Error("view should show the explored counter")
	}
	if strings.Contains(view, "UNLOCKED") {
		t.Error("no milestone callout expected")
	}
	if d.Title() != "Alpha" {
		t.Errorf("expected title Alpha, got %q", d.Title())
	}
}

func TestViewShowsMilestoneCallouts(t *testing.T) {
	state, project := testState(t, "Alpha")
	d := New(project, state, []explore.Milestone{explore.FlagshipUnlocked})

	view := d.View(100, 30)
	if !strings.Contains(view, "SUPPORTING INTEL UNLOCKED") {
		t.Error("flagship milestone should be called out")
	}
	if len(d.Milestones()) != 1 {
		t.Errorf("expected 1 milestone, got %d", len(d.Milestones()))
	}
}

func TestEnterPops(t *testing.T) {
	state, project := testState(t, "Alpha")
	d := New(project, state, nil)

	_, cmd := d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should go back")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}

	_, cmd = d.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if cmd != nil {
		t.Error("other keys should be ignored")
	}
}

func TestKeyHints(t *testing.T) {
	state, project := testState(t)
	hints := New(project, state, nil).KeyHints()
	if len(hints) != 2 {
		t.Fatalf("expected 2 hints, got %d", len(hints))
	}
	if hints[1].Key != "esc" {
		t.Errorf("expected esc hint last, got %q", hints[1].Key)
	}
}
