package intro

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/ayomide-cmd/folio/internal/loader"
	"github.com/ayomide-cmd/folio/internal/router"
	"github.com/ayomide-cmd/folio/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "page" }
func (s *stubScreen) Title() string                           { return "Page" }

func fastConfig() loader.Config {
	return loader.Config{Interval: time.Millisecond, Step: 25, Max: 100, Settle: time.Millisecond}
}

func newTestIntro() (*IntroScreen, *int) {
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(fastConfig(), factory, nil), &callCount
}

// run executes cmd and feeds each resulting message back into s until a
// ReplaceScreenMsg appears or the chain ends.
func run(t *testing.T, s *IntroScreen, cmd tea.Cmd) (router.ReplaceScreenMsg, bool) {
	t.Helper()
	for i := 0; cmd != nil && i < 100; i++ {
		msg := cmd()
		if replace, ok := msg.(router.ReplaceScreenMsg); ok {
			return replace, true
		}
		_, cmd = s.Update(msg)
	}
	return router.ReplaceScreenMsg{}, false
}

func TestLoadsThenReplaces(t *testing.T) {
	s, callCount := newTestIntro()

	replace, ok := run(t, s, s.Init())
	if !ok {
		t.Fatal("expected the intro to replace itself after loading")
	}
	if replace.Screen == nil {
		t.Error("replace screen should not be nil")
	}
	if s.Progress() != 100 {
		t.Errorf("expected progress 100, got %d", s.Progress())
	}
	if s.Phase() != loader.PhaseDone {
		t.Errorf("expected phase done, got %s", s.Phase())
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}
}

func TestSkipCancelsLoader(t *testing.T) {
	s, callCount := newTestIntro()
	tickCmd := s.Init()

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should skip the intro")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatal("expected ReplaceScreenMsg from skip")
	}
	if s.Phase() != loader.PhaseCancelled {
		t.Errorf("expected phase cancelled, got %s", s.Phase())
	}

	// The tick scheduled before the skip fires late and must be dropped.
	_, cmd = s.Update(tickCmd())
	if cmd != nil {
		t.Error("stale tick after skip should not schedule anything")
	}
	if s.Progress() != 0 {
		t.Errorf("stale tick changed progress to %d", s.Progress())
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}
}

func TestTransitionHappensOnce(t *testing.T) {
	s, callCount := newTestIntro()
	s.Init()

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("second skip should not produce a command")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called exactly once, got %d", *callCount)
	}
}

func TestOtherKeysIgnored(t *testing.T) {
	s, callCount := newTestIntro()
	s.Init()

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if cmd != nil {
		t.Error("unbound key should not produce a command")
	}
	if *callCount != 0 {
		t.Errorf("factory should not be called, got %d", *callCount)
	}
}

func TestForeignCompleteIgnored(t *testing.T) {
	s, callCount := newTestIntro()
	s.Init()

	_, cmd := s.Update(loader.CompleteMsg{ID: -1})
	if cmd != nil || *callCount != 0 {
		t.Error("completion from another sequencer must be ignored")
	}
}

func TestView(t *testing.T) {
	s, _ := newTestIntro()
	s.Init()

	view := s.View(100, 30)
	if !strings.Contains(view, "POLISHING PIXELS") {
		t.Error("view should show the loading caption")
	}
	if !strings.Contains(view, "0%") {
		t.Error("view should show the percentage")
	}
	if !s.Fullscreen() {
		t.Error("intro draws without chrome")
	}
	if s.Title() != "" {
		t.Errorf("expected empty title, got %q", s.Title())
	}
}
