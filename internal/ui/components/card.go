package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ayomide-cmd/folio/internal/catalog"
	"github.com/ayomide-cmd/folio/internal/ui/theme"
)

// ProjectCard renders one project in the showcase.
type ProjectCard struct {
	Project  catalog.Project
	Index    int
	Explored bool
	Selected bool
	Compact  bool // Omit the description and links
	Width    int
}

// Badge returns the corner marker: the 1-based index, or a check once explored.
func (c ProjectCard) Badge() string {
	if c.Explored {
		return "✓"
	}
	return fmt.Sprintf("%02d", c.Index+1)
}

// View renders the card.
func (c ProjectCard) View() string {
	style := theme.Card
	switch {
	case c.Explored:
		style = theme.CardExplored
	case c.Selected:
		style = theme.CardSelected
	}

	inner := c.Width - style.GetHorizontalFrameSize()
	if inner < 10 {
		inner = 10
	}

	badgeStyle := theme.Dim
	if c.Explored {
		badgeStyle = theme.Kicker
	}
	links := theme.Dim.Render("gh ") + theme.Hint.Render(c.Project.GitHub)
	top := lipgloss.JoinHorizontal(lipgloss.Top,
		badgeStyle.Render("["+c.Badge()+"]"),
		"  ",
		links,
	)

	titleStyle := theme.Title
	if c.Selected || c.Explored {
		titleStyle = titleStyle.Foreground(theme.Primary)
	}
	title := titleStyle.Render(strings.ToUpper(c.Project.Title))

	desc := theme.Dim.Width(inner).Render(c.Project.Desc)

	var chips []string
	for _, tech := range c.Project.Stack {
		chips = append(chips, theme.Dim.Render("‹"+strings.ToUpper(tech)+"›"))
	}
	stack := lipgloss.NewStyle().Width(inner).Render(strings.Join(chips, " "))

	live := theme.Dim.Render("live ") + theme.Hint.Render(c.Project.Live)

	parts := []string{top, "", title, desc, "", stack, live}
	if c.Compact {
		parts = []string{badgeStyle.Render("[" + c.Badge() + "]") + "  " + title, stack}
	}
	body := strings.Join(parts, "\n")
	return style.Width(c.Width).Render(body)
}
