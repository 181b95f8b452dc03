package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: black canvas, one hot-pink accent
var (
	Primary   = lipgloss.Color("#F472B6") // Pink
	Text      = lipgloss.Color("#FFFFFF") // White
	TextBody  = lipgloss.Color("#D1D5DB") // Gray 300
	TextDim   = lipgloss.Color("#6B7280") // Gray 500
	TextFaint = lipgloss.Color("#374151") // Gray 700
	BgCard    = lipgloss.Color("#0A0A0A") // Near black
	Border    = lipgloss.Color("#1A1A1A") // Hairline
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text)

	Heading = lipgloss.NewStyle().
		Bold(true).
		Italic(true).
		Foreground(Primary)

	Kicker = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Body = lipgloss.NewStyle().
		Foreground(TextBody)

	Emphasis = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	Dim = lipgloss.NewStyle().
		Foreground(TextDim)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	CardSelected = Card.
			BorderForeground(Text)

	CardExplored = Card.
			BorderForeground(Primary)

	Banner = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(Primary).
		Foreground(Primary).
		Bold(true).
		Padding(0, 2).
		Align(lipgloss.Center)

	Chip = lipgloss.NewStyle().
		Foreground(TextDim).
		Border(lipgloss.NormalBorder()).
		BorderForeground(Border).
		Padding(0, 1)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Primary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)
