// Package dossier shows a single explored project in full.
package dossier

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ayomide-cmd/folio/internal/catalog"
	"github.com/ayomide-cmd/folio/internal/explore"
	"github.com/ayomide-cmd/folio/internal/router"
	"github.com/ayomide-cmd/folio/internal/screen"
	"github.com/ayomide-cmd/folio/internal/ui/components"
	"github.com/ayomide-cmd/folio/internal/ui/layout"
	"github.com/ayomide-cmd/folio/internal/ui/theme"
)

const maxWidth = 80

// DossierScreen shows a project card in full, with the milestones its
// exploration triggered.
type DossierScreen struct {
	project    catalog.Project
	index      int
	explored   int
	total      int
	milestones []explore.Milestone
	back       key.Binding
}

var _ screen.Screen = (*DossierScreen)(nil)
var _ screen.KeyHintProvider = (*DossierScreen)(nil)

// New creates a dossier for project as seen from state.
func New(project catalog.Project, state explore.State, milestones []explore.Milestone) *DossierScreen {
	return &DossierScreen{
		project:    project,
		index:      state.Catalog().Index(project.ID()),
		explored:   state.Count(),
		total:      state.Total(),
		milestones: milestones,
		back:       key.NewBinding(key.WithKeys("enter", "backspace"), key.WithHelp("enter", "back")),
	}
}

func (d *DossierScreen) Init() tea.Cmd { return nil }
func (d *DossierScreen) Title() string { return d.project.Title }

// Milestones returns the milestones reached by opening this dossier.
func (d *DossierScreen) Milestones() []explore.Milestone {
	return d.milestones
}

func (d *DossierScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(kmsg, d.back) {
		return d, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return d, nil
}

func (d *DossierScreen) KeyHints() []layout.KeyHint {
	return append(layout.HintsFor(d.back), layout.KeyHint{Key: "esc", Description: "back"})
}

func (d *DossierScreen) View(width, height int) string {
	w := min(max(width-8, 20), maxWidth)

	status := theme.Kicker.Render("✓ INTEL COLLECTED") +
		theme.Dim.Render(fmt.Sprintf("   %s · %d / %d", d.project.Tier.Label(), d.explored, d.total))

	card := components.ProjectCard{
		Project:  d.project,
		Index:    d.index,
		Explored: true,
		Width:    w,
	}

	parts := []string{status, "", card.View()}
	for _, m := range d.milestones {
		if callout := callout(m); callout != "" {
			parts = append(parts, "", theme.Banner.Width(w).Render(callout))
		}
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		"\n"+strings.Join(parts, "\n"))
}

func callout(m explore.Milestone) string {
	switch m {
	case explore.FlagshipUnlocked:
		return "⌄ SUPPORTING INTEL UNLOCKED"
	case explore.MissionComplete:
		return "✓ MISSION COMPLETE: FULL PORTFOLIO UNLOCKED."
	default:
		return ""
	}
}
