package page

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ayomide-cmd/folio/internal/catalog"
	"github.com/ayomide-cmd/folio/internal/explore"
	"github.com/ayomide-cmd/folio/internal/ui/components"
	"github.com/ayomide-cmd/folio/internal/ui/layout"
	"github.com/ayomide-cmd/folio/internal/ui/theme"
)

const maxContentWidth = 96

// span is a half-open range of document lines.
type span struct {
	start, end int
}

// document is the whole page rendered to lines, with anchors for scrolling.
type document struct {
	lines []string
	intel span
	nudge span // zero when the nudge is hidden
	cards map[string]span
}

type builder struct {
	doc    document
	indent lipgloss.Style
}

func (b *builder) add(block string) span {
	start := len(b.doc.lines)
	b.doc.lines = append(b.doc.lines, strings.Split(b.indent.Render(block), "\n")...)
	return span{start: start, end: len(b.doc.lines)}
}

func (b *builder) gap(n int) {
	for range n {
		b.doc.lines = append(b.doc.lines, "")
	}
}

// render lays out every section for the given terminal width.
func (p *PageScreen) render(width int) document {
	w := min(max(width-4, 20), maxContentWidth)
	b := &builder{
		doc:    document{cards: make(map[string]span)},
		indent: lipgloss.NewStyle().PaddingLeft(2),
	}
	state := p.tracker.State()

	b.gap(1)
	b.add(p.hero(w))
	b.gap(2)
	b.add(p.about(w))
	b.gap(1)
	b.add(p.capabilities(w, !layout.IsCompactWidth(width)))
	b.gap(3)

	intelStart := len(b.doc.lines)
	p.intel(b, state, w)
	b.doc.intel = span{start: intelStart, end: len(b.doc.lines)}
	b.gap(2)

	if p.nudgeShowing() {
		b.doc.nudge = b.add(nudge(w))
		b.gap(1)
	}

	b.add(p.stack(w))
	b.gap(3)
	b.add(p.credentials(w))
	b.gap(3)
	b.add(p.contact(w))
	b.gap(1)

	return b.doc
}

func (p *PageScreen) hero(w int) string {
	owner := p.portfolio.Owner
	name := theme.Title.Render(strings.ToUpper(owner.Name))
	return lipgloss.JoinVertical(lipgloss.Left,
		renderBanner(owner.Initials, w),
		"",
		name,
		p.tagline.View(),
	)
}

func (p *PageScreen) about(w int) string {
	about := p.portfolio.About
	parts := []string{theme.Heading.Render(about.Heading), ""}
	for _, para := range about.Paragraphs {
		parts = append(parts, lipgloss.NewStyle().Width(w).Render(highlight(para, about.Emphasis)), "")
	}
	return strings.Join(parts[:len(parts)-1], "\n")
}

// highlight renders text in the body style with each emphasis phrase picked out.
func highlight(text string, phrases []string) string {
	var out strings.Builder
	for text != "" {
		at, phrase := -1, ""
		for _, ph := range phrases {
			if ph == "" {
				continue
			}
			if i := strings.Index(text, ph); i >= 0 && (at < 0 || i < at) {
				at, phrase = i, ph
			}
		}
		if at < 0 {
			out.WriteString(theme.Body.Render(text))
			break
		}
		if at > 0 {
			out.WriteString(theme.Body.Render(text[:at]))
		}
		out.WriteString(theme.Emphasis.Render(phrase))
		text = text[at+len(phrase):]
	}
	return out.String()
}

// capabilities lays the cards side by side on wide terminals.
func (p *PageScreen) capabilities(w int, grid bool) string {
	caps := p.portfolio.Capabilities
	if len(caps) == 0 {
		return ""
	}
	cardWidth := w
	if grid {
		cardWidth = (w - (len(caps) - 1)) / len(caps)
	}

	var cards []string
	for _, c := range caps {
		cards = append(cards, theme.Card.Width(cardWidth).Render(
			theme.Title.Render(strings.ToUpper(c.Title))+"\n\n"+theme.Dim.Render(c.Body),
		))
	}
	if !grid {
		return lipgloss.JoinVertical(lipgloss.Left, cards...)
	}
	for i := 1; i < len(cards); i++ {
		cards[i] = " " + cards[i]
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (p *PageScreen) intel(b *builder, state explore.State, w int) {
	b.add(lipgloss.JoinVertical(lipgloss.Left,
		theme.Kicker.Render("◎ ACTIVE MISSION"),
		theme.Title.Render("PROJECT INTEL"),
		theme.Dim.Render("Access flagship fragments to unlock the full supporting briefing."),
	))
	b.gap(1)
	b.add(missionPanel(state, w))
	b.gap(1)

	c := state.Catalog()
	selected := p.selectedID()
	dividerShown := false
	for _, proj := range state.VisibleProjects() {
		if proj.Tier == catalog.TierSecondary && !dividerShown {
			b.gap(1)
			b.add(divider("SUPPORTING INTEL UNLOCKED", w))
			b.gap(1)
			dividerShown = true
		}
		card := components.ProjectCard{
			Project:  proj,
			Index:    c.Index(proj.ID()),
			Explored: state.IsExplored(proj.ID()),
			Selected: proj.ID() == selected,
			Compact:  true,
			Width:    w,
		}
		b.doc.cards[proj.ID()] = b.add(card.View())
	}

	if state.MissionComplete() {
		b.gap(1)
		b.add(theme.Banner.Width(w).Render("✓ MISSION COMPLETE: FULL PORTFOLIO UNLOCKED."))
	}
}

func missionPanel(state explore.State, w int) string {
	label := "DATA COLLECTED"
	if state.MissionComplete() {
		label = "MISSION SUCCESSFUL"
	}
	inner := w - theme.Card.GetHorizontalFrameSize()
	head := theme.Kicker.Render(label)
	counter := theme.Title.Render(fmt.Sprintf("%d / %d", state.Count(), state.Total()))
	gap := max(inner-lipgloss.Width(head)-lipgloss.Width(counter), 1)

	bar := components.NewProgressBar("", state.ProgressRatio(), true, inner).View()
	return theme.Card.Width(w).Render(head + strings.Repeat(" ", gap) + counter + "\n\n" + bar)
}

func divider(label string, w int) string {
	text := " ⌄ " + label + " "
	side := max((w-lipgloss.Width(text))/2, 2)
	line := theme.Dim.Render(strings.Repeat("─", side))
	return line + theme.Kicker.Render(text) + line
}

func nudge(w int) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 2).
		Width(w)
	return style.Render(theme.Kicker.Render("▲ UNFINISHED MISSION ABOVE") +
		theme.Dim.Render("   press n to return to the briefing"))
}

func (p *PageScreen) stack(w int) string {
	var rows []string
	var row []string
	rowWidth := 0
	for _, tech := range p.portfolio.Tech {
		chip := theme.Chip.Render(strings.ToUpper(tech))
		cw := lipgloss.Width(chip) + 1
		if rowWidth+cw > w && len(row) > 0 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		row = append(row, chip, " ")
		rowWidth += cw
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return theme.Heading.Render("Tech Stack") + "\n\n" + strings.Join(rows, "\n")
}

func (p *PageScreen) credentials(w int) string {
	parts := []string{theme.Heading.Render("Credentials"), ""}
	for _, c := range p.portfolio.Credentials {
		lines := []string{theme.Kicker.Render(strings.ToUpper(c.Issuer)), theme.Title.Render(c.Title)}
		if c.Date != "" {
			lines = append(lines, theme.Dim.Render(c.Date))
		}
		if c.Link != "" {
			lines = append(lines, theme.Hint.Render("↗ "+c.Link))
		}
		parts = append(parts, theme.Card.Width(w).Render(strings.Join(lines, "\n")))
	}

	if len(p.portfolio.Socials) > 0 {
		parts = append(parts, "")
		for _, s := range p.portfolio.Socials {
			parts = append(parts, theme.Title.Render("↗ "+strings.ToUpper(s.Label))+"  "+theme.Hint.Render(s.URL))
		}
	}
	return strings.Join(parts, "\n")
}

func (p *PageScreen) contact(w int) string {
	c := p.portfolio.Contact
	status := theme.Kicker.Render("●") + " " + theme.Dim.Render(c.Status)
	foot := theme.Dim.Render(c.Copyright)
	gap := max(w-lipgloss.Width(foot)-lipgloss.Width(status), 1)

	return lipgloss.JoinVertical(lipgloss.Left,
		theme.Kicker.Render(strings.ToUpper(c.Kicker)),
		"",
		theme.Title.Render(strings.ToUpper(c.Headline)),
		"",
		lipgloss.NewStyle().Width(w).Render(theme.Body.Render(c.Blurb)),
		"",
		theme.Emphasis.Render("✉ "+c.Email),
		"",
		theme.Dim.Render(strings.Repeat("─", w)),
		foot+strings.Repeat(" ", gap)+status,
	)
}
