package page

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ayomide-cmd/folio/internal/ui/theme"
)

// glyphs holds six-row block letters for the runes the banner can draw.
var glyphs = map[rune][6]string{
	'S': {"███████╗", "██╔════╝", "███████╗", "╚════██║", "███████║", "╚══════╝"},
	'A': {" █████╗ ", "██╔══██╗", "███████║", "██╔══██║", "██║  ██║", "╚═╝  ╚═╝"},
	'.': {"   ", "   ", "   ", "   ", "██╗", "╚═╝"},
}

// bannerArt draws text in block letters, or returns false if a rune has no glyph.
func bannerArt(text string) (string, int, bool) {
	var rows [6]strings.Builder
	for _, r := range text {
		g, ok := glyphs[r]
		if !ok {
			return "", 0, false
		}
		for i := range rows {
			rows[i].WriteString(g[i])
		}
	}
	lines := make([]string, len(rows))
	for i := range rows {
		lines[i] = strings.TrimRight(rows[i].String(), " ")
	}
	art := strings.Join(lines, "\n")
	return art, lipgloss.Width(art), true
}

// renderBanner returns the initials banner styled in the primary color.
// Falls back to spaced letters when the terminal is too narrow or a letter
// has no glyph.
func renderBanner(initials string, width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if art, w, ok := bannerArt(initials); ok && w <= width {
		return style.Render(art)
	}
	return style.Render(strings.Join(strings.Split(initials, ""), " "))
}
