// Package page implements the scrolling portfolio page and its Project Intel
// section.
package page

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/ayomide-cmd/folio/internal/catalog"
	"github.com/ayomide-cmd/folio/internal/explore"
	"github.com/ayomide-cmd/folio/internal/router"
	"github.com/ayomide-cmd/folio/internal/screen"
	"github.com/ayomide-cmd/folio/internal/screens/dossier"
	"github.com/ayomide-cmd/folio/internal/ui/components"
	"github.com/ayomide-cmd/folio/internal/ui/layout"
	"github.com/ayomide-cmd/folio/internal/ui/theme"
)

const (
	defaultWidth  = 80
	defaultHeight = 20

	// The scroll hint disappears once the reader has moved this far.
	scrollHintLines = 3
)

// exploreMsg is emitted when the reader opens a project card.
type exploreMsg struct {
	ID string
}

// PageScreen is the portfolio page: hero, about, Project Intel, stack,
// credentials, and contact, scrolled as one document.
type PageScreen struct {
	portfolio *catalog.Portfolio
	tracker   *explore.Tracker
	tagline   components.Typewriter
	menu      components.Menu
	ids       []string // project id per menu item
	keys      keyMap
	offset    int
	dismissed bool // nudge hidden after n, until the section is left again
	width     int
	height    int
	log       *zap.Logger
}

var _ screen.Screen = (*PageScreen)(nil)
var _ screen.KeyHintProvider = (*PageScreen)(nil)

// New creates the page for portfolio. Exploration is recorded on tracker.
func New(portfolio *catalog.Portfolio, tracker *explore.Tracker, log *zap.Logger) *PageScreen {
	if log == nil {
		log = zap.NewNop()
	}
	p := &PageScreen{
		portfolio: portfolio,
		tracker:   tracker,
		tagline:   components.NewTypewriter(portfolio.Owner.Roles),
		menu:      components.NewMenu(nil),
		keys:      defaultKeys(),
		width:     defaultWidth,
		height:    defaultHeight,
		log:       log,
	}
	p.sync()
	return p
}

func (p *PageScreen) Init() tea.Cmd {
	return p.tagline.Init()
}

func (p *PageScreen) Title() string {
	return "Portfolio"
}

// Offset returns the first visible document line.
func (p *PageScreen) Offset() int {
	return p.offset
}

func (p *PageScreen) KeyHints() []layout.KeyHint {
	return layout.HintsFor(
		p.keys.Up,
		p.menu.Keys.Next,
		p.menu.Keys.Select,
		p.keys.Mission,
		p.keys.Quit,
	)
}

func (p *PageScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.TypewriterTickMsg:
		var cmd tea.Cmd
		p.tagline, cmd = p.tagline.Update(msg)
		return p, cmd

	case exploreMsg:
		return p, p.explore(msg.ID)

	case router.ResumedMsg:
		// Ticks sent while another screen was on top never arrived.
		var cmd tea.Cmd
		p.tagline, cmd = p.tagline.Restart()
		p.sync()
		p.reveal()
		return p, cmd

	case tea.KeyPressMsg:
		return p, p.handleKey(msg)
	}
	return p, nil
}

func (p *PageScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, p.keys.Quit):
		return tea.Quit
	case key.Matches(msg, p.keys.Up):
		p.scrollTo(p.offset - 1)
	case key.Matches(msg, p.keys.Down):
		p.scrollTo(p.offset + 1)
	case key.Matches(msg, p.keys.PageUp):
		p.scrollTo(p.offset - p.page())
	case key.Matches(msg, p.keys.PageDown):
		p.scrollTo(p.offset + p.page())
	case key.Matches(msg, p.keys.Top):
		p.scrollTo(0)
	case key.Matches(msg, p.keys.Bottom):
		p.scrollTo(len(p.render(p.width).lines))
	case key.Matches(msg, p.keys.Mission):
		p.returnToMission()
	default:
		prev := p.menu.Selected
		var cmd tea.Cmd
		p.menu, cmd = p.menu.Update(msg)
		if p.menu.Selected != prev {
			p.reveal()
		}
		return cmd
	}
	return nil
}

// explore records id and opens its dossier.
func (p *PageScreen) explore(id string) tea.Cmd {
	project, ok := p.tracker.State().Catalog().Lookup(id)
	if !ok {
		return nil
	}
	milestones := p.tracker.Activate(id)
	p.sync()

	d := dossier.New(project, p.tracker.State(), milestones)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: d}
	}
}

// sync rebuilds the project menu from the visible projects, keeping the
// selection on the same project where possible.
func (p *PageScreen) sync() {
	state := p.tracker.State()
	current := p.selectedID()

	visible := state.VisibleProjects()
	items := make([]components.MenuItem, 0, len(visible))
	ids := make([]string, 0, len(visible))
	for _, proj := range visible {
		id := proj.ID()
		items = append(items, components.MenuItem{
			Label: proj.Title,
			Action: func() tea.Cmd {
				return func() tea.Msg { return exploreMsg{ID: id} }
			},
		})
		ids = append(ids, id)
	}

	p.menu = p.menu.SetItems(items)
	p.ids = ids
	for i, id := range ids {
		if id == current {
			p.menu.Selected = i
		}
	}

	p.keys.Mission.SetEnabled(p.nudgeShowing())
}

// nudgeShowing reports whether the unfinished-mission nudge is drawn.
func (p *PageScreen) nudgeShowing() bool {
	return p.tracker.State().NudgeVisible() && !p.dismissed
}

func (p *PageScreen) selectedID() string {
	if p.menu.Selected < 0 || p.menu.Selected >= len(p.ids) {
		return ""
	}
	return p.ids[p.menu.Selected]
}

func (p *PageScreen) page() int {
	return max(p.height-2, 1)
}

// scrollTo moves the viewport, clamped to the document. Scrolling the
// Project Intel section fully above the viewport counts as leaving it, which
// may insert the nudge above the viewport; the offset then moves with the
// content so the visible lines stay put.
func (p *PageScreen) scrollTo(offset int) {
	doc := p.render(p.width)
	p.offset = clampOffset(offset, len(doc.lines), p.height)
	if p.offset < doc.intel.end {
		return
	}

	if !p.tracker.State().NudgeShown() {
		p.tracker.LeaveSection()
	}
	p.dismissed = false
	p.sync()

	next := p.render(p.width)
	if grown := len(next.lines) - len(doc.lines); grown > 0 && next.nudge.start < p.offset {
		offset = p.offset + grown
	}
	p.offset = clampOffset(offset, len(next.lines), p.height)
}

// reveal scrolls so the selected project card is in view.
func (p *PageScreen) reveal() {
	card, ok := p.render(p.width).cards[p.selectedID()]
	if !ok {
		return
	}
	offset := p.offset
	if card.end > offset+p.height {
		offset = card.end - p.height
	}
	if card.start < offset {
		offset = card.start
	}
	p.scrollTo(offset)
}

// returnToMission scrolls back to the briefing, selects the first
// unexplored project and hides the nudge. The tracker's latch stays set.
func (p *PageScreen) returnToMission() {
	state := p.tracker.State()
	for i, id := range p.ids {
		if !state.IsExplored(id) {
			p.menu.Selected = i
			break
		}
	}
	p.dismissed = true
	p.sync()

	doc := p.render(p.width)
	p.offset = clampOffset(doc.intel.start, len(doc.lines), p.height)
	p.log.Debug("returned to mission", zap.Int("explored", state.Count()))
}

func clampOffset(offset, lines, height int) int {
	return max(0, min(offset, lines-height))
}

func (p *PageScreen) View(width, height int) string {
	p.width, p.height = width, height
	doc := p.render(width)
	p.offset = clampOffset(p.offset, len(doc.lines), height)

	end := min(p.offset+height, len(doc.lines))
	visible := append([]string(nil), doc.lines[p.offset:end]...)

	if p.offset < scrollHintLines && end < len(doc.lines) && len(visible) > 0 {
		hint := theme.Hint.Render("keep scrolling ↓")
		visible[len(visible)-1] = lipgloss.PlaceHorizontal(width, lipgloss.Right, hint+"  ")
	}
	return strings.Join(visible, "\n")
}
