package intro

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/ayomide-cmd/folio/internal/loader"
	"github.com/ayomide-cmd/folio/internal/router"
	"github.com/ayomide-cmd/folio/internal/screen"
	"github.com/ayomide-cmd/folio/internal/ui/components"
	"github.com/ayomide-cmd/folio/internal/ui/theme"
)

const (
	caption  = "POLISHING PIXELS... ALMOST THERE!"
	barWidth = 48
)

// IntroScreen is the loading screen shown before the page.
type IntroScreen struct {
	seq          *loader.Sequencer
	pageFactory  func() screen.Screen
	skip         key.Binding
	transitioned bool
	log          *zap.Logger
}

var _ screen.Screen = (*IntroScreen)(nil)
var _ screen.Fullscreen = (*IntroScreen)(nil)

// New creates an IntroScreen that replaces itself with the screen produced by
// pageFactory once loading completes or is skipped.
func New(cfg loader.Config, pageFactory func() screen.Screen, log *zap.Logger) *IntroScreen {
	if log == nil {
		log = zap.NewNop()
	}
	return &IntroScreen{
		seq:         loader.New(cfg),
		pageFactory: pageFactory,
		skip:        key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("enter", "skip")),
		log:         log,
	}
}

func (s *IntroScreen) Title() string {
	return ""
}

func (s *IntroScreen) Fullscreen() bool {
	return true
}

// Progress returns the current loading value.
func (s *IntroScreen) Progress() int {
	return s.seq.Value()
}

// Phase returns the loader phase.
func (s *IntroScreen) Phase() loader.Phase {
	return s.seq.Phase()
}

func (s *IntroScreen) Init() tea.Cmd {
	return s.seq.Start()
}

func (s *IntroScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loader.CompleteMsg:
		if msg.ID != s.seq.ID() {
			return s, nil
		}
		s.log.Debug("intro complete")
		return s, s.transition()

	case tea.KeyPressMsg:
		if key.Matches(msg, s.skip) {
			if s.seq.Cancel() {
				s.log.Debug("intro skipped", zap.Int("progress", s.seq.Value()))
			}
			return s, s.transition()
		}
		return s, nil
	}

	return s, s.seq.Update(msg)
}

func (s *IntroScreen) transition() tea.Cmd {
	if s.transitioned {
		return nil
	}
	s.transitioned = true
	page := s.pageFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: page}
	}
}

func (s *IntroScreen) View(width, height int) string {
	w := min(barWidth, max(width-4, 10))

	label := theme.Kicker.Render(caption)
	percent := theme.Kicker.Render(fmt.Sprintf("%d%%", s.seq.Value()))
	gap := w - lipgloss.Width(label) - lipgloss.Width(percent)
	if gap < 1 {
		gap = 1
	}
	top := label + strings.Repeat(" ", gap) + percent

	bar := components.NewProgressBar("", s.seq.Percent(), false, w).View()

	// Three dots pulse with the progress rather than a separate timer.
	lit := (s.seq.Value() / 5) % 4
	var dots []string
	for i := range 3 {
		style := theme.Dim
		if i < lit {
			style = theme.Kicker
		}
		dots = append(dots, style.Render("•"))
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		top,
		"",
		bar,
		"",
		"",
		strings.Join(dots, " "),
		"",
		theme.Hint.Render("press enter to skip"),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
