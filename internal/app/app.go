package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/ayomide-cmd/folio/internal/catalog"
	"github.com/ayomide-cmd/folio/internal/explore"
	"github.com/ayomide-cmd/folio/internal/loader"
	"github.com/ayomide-cmd/folio/internal/router"
	"github.com/ayomide-cmd/folio/internal/screen"
	"github.com/ayomide-cmd/folio/internal/screens/intro"
	"github.com/ayomide-cmd/folio/internal/screens/page"
	"github.com/ayomide-cmd/folio/internal/ui/layout"
)

// Options configures the application.
type Options struct {
	Portfolio *catalog.Portfolio
	Loader    loader.Config
	SkipIntro bool
	Logger    *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	tracker *explore.Tracker
	brand   string
	width   int
	height  int
}

// newAppModel creates a new AppModel starting on the intro, or directly on
// the page when the intro is skipped.
func newAppModel(opts Options) AppModel {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	tracker := explore.NewTracker(opts.Portfolio.Catalog(), log)
	newPage := func() screen.Screen {
		return page.New(opts.Portfolio, tracker, log)
	}

	var initial screen.Screen
	if opts.SkipIntro {
		initial = newPage()
	} else {
		initial = intro.New(opts.Loader, newPage, log)
	}

	return AppModel{
		router:  router.New(initial),
		tracker: tracker,
		brand:   opts.Portfolio.Owner.Initials,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the active screen inside the header and footer chrome.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	if fs, ok := active.(screen.Fullscreen); ok && fs.Fullscreen() {
		return m.router.View(m.width, m.height)
	}

	state := m.tracker.State()
	header := layout.RenderHeader(m.brand, active.Title(), layout.Intel{
		Explored: state.Count(),
		Total:    state.Total(),
		Complete: state.MissionComplete(),
	}, m.width)

	footerHints := []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
