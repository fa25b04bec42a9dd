package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
const (
	ColorBorder   = lipgloss.Color("#2A2F3A")
	ColorOnline   = lipgloss.Color("#3FB950")
	ColorOffline  = lipgloss.Color("#F85149")
	ColorText     = lipgloss.Color("#E6E8EE")
	ColorMuted    = lipgloss.Color("#8B92A3")
	ColorAccent   = lipgloss.Color("#58A6FF")
	ColorChipEdge = lipgloss.Color("#3A4150")
)

// Layout constants.
const (
	// DefaultCardWidth is the outer width of a grid card, borders included.
	DefaultCardWidth = 40

	// MinCardWidth is the narrowest card that is still readable.
	MinCardWidth = 24

	// cardChrome is the horizontal space taken by border and padding.
	cardChrome = 4
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true).
			Padding(0, 1)

	StatusLineStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	ErrorLineStyle = lipgloss.NewStyle().
			Foreground(ColorOffline).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	OnlineBadgeStyle = lipgloss.NewStyle().
				Foreground(ColorOnline).
				Bold(true)

	OfflineBadgeStyle = lipgloss.NewStyle().
				Foreground(ColorOffline).
				Bold(true)

	MetaStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SectionStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	ChipStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorChipEdge).
			Padding(0, 1)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	EmptyStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 2)
)
