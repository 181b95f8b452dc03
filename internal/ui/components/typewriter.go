package components

import (
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ayomide-cmd/folio/internal/ui/theme"
)

const (
	typeDelay   = 75 * time.Millisecond
	deleteDelay = 50 * time.Millisecond
	holdDelay   = 1500 * time.Millisecond
	cursor      = "_"
)

var lastTypewriterID atomic.Int64

// TypewriterTickMsg advances a Typewriter by one keystroke.
type TypewriterTickMsg struct {
	ID  int
	Gen int
}

// Typewriter types each phrase, holds it, deletes it, and loops.
type Typewriter struct {
	phrases  []string
	id       int
	gen      int // bumped by Restart so ticks from an older chain are dropped
	phrase   int
	pos      int // runes of the current phrase shown
	deleting bool
}

// NewTypewriter creates a Typewriter cycling through phrases.
func NewTypewriter(phrases []string) Typewriter {
	return Typewriter{
		phrases: phrases,
		id:      int(lastTypewriterID.Add(1)),
	}
}

// Init schedules the first keystroke.
func (t Typewriter) Init() tea.Cmd {
	if len(t.phrases) == 0 {
		return nil
	}
	return t.schedule(typeDelay)
}

// Restart starts a new tick chain, keeping the visible text. Ticks still in
// flight from the previous chain are ignored.
func (t Typewriter) Restart() (Typewriter, tea.Cmd) {
	t.gen++
	return t, t.Init()
}

// Update advances on the typewriter's own ticks.
func (t Typewriter) Update(msg tea.Msg) (Typewriter, tea.Cmd) {
	tick, ok := msg.(TypewriterTickMsg)
	if !ok || tick.ID != t.id || tick.Gen != t.gen || len(t.phrases) == 0 {
		return t, nil
	}

	current := []rune(t.phrases[t.phrase])
	if !t.deleting {
		if t.pos < len(current) {
			t.pos++
			if t.pos == len(current) {
				return t, t.schedule(holdDelay)
			}
			return t, t.schedule(typeDelay)
		}
		t.deleting = true
	}

	if t.pos > 0 {
		t.pos--
		return t, t.schedule(deleteDelay)
	}

	t.deleting = false
	t.phrase = (t.phrase + 1) % len(t.phrases)
	return t, t.schedule(typeDelay)
}

// Text returns the visible part of the current phrase, without the cursor.
func (t Typewriter) Text() string {
	if len(t.phrases) == 0 {
		return ""
	}
	return string([]rune(t.phrases[t.phrase])[:t.pos])
}

// View renders the visible text followed by the cursor.
func (t Typewriter) View() string {
	style := lipgloss.NewStyle().Foreground(theme.Primary).Italic(true)
	return style.Render(t.Text() + cursor)
}

func (t Typewriter) schedule(d time.Duration) tea.Cmd {
	id, gen := t.id, t.gen
	return tea.Tick(d, func(time.Time) tea.Msg {
		return TypewriterTickMsg{ID: id, Gen: gen}
	})
}
