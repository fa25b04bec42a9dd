package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jpalmerr/serverboard/internal/dom"
	"github.com/jpalmerr/serverboard/internal/view"
)

// class names of the card tree built by view.DOMSurface
const (
	classCard         = "card"
	classBadge        = "status"
	classMetaItem     = "meta-item"
	classStat         = "stat"
	classPlayersTitle = "players-title"
	classPlayers      = "players"
	classChip         = "chip"
	classMuted        = "muted"
)

// RenderView draws a reconciled card container for the terminal.
//
// width is the terminal width; zero means unknown, in which case cards are
// stacked at [DefaultCardWidth]. A container marked single stretches its card
// across the full width. Otherwise cards are laid out in rows of as many
// default-width cards as fit.
func RenderView(root *dom.Element, width int) string {
	if root == nil {
		return ""
	}
	if empty := root.Find(view.ClassEmpty); empty != nil {
		return EmptyStyle.Render(empty.Text())
	}

	cards := root.FindAll(classCard)
	if len(cards) == 0 {
		return ""
	}

	cardWidth := DefaultCardWidth
	perRow := 1
	switch {
	case width <= 0:
	case root.HasClass(view.ClassSingle):
		cardWidth = max(width, MinCardWidth)
	case width < DefaultCardWidth:
		cardWidth = max(width, MinCardWidth)
	default:
		perRow = width / DefaultCardWidth
	}

	rendered := make([]string, 0, len(cards))
	for _, card := range cards {
		rendered = append(rendered, renderCard(card, cardWidth))
	}
	return layoutCards(rendered, perRow)
}

// layoutCards arranges cards in rows of perRow.
func layoutCards(cards []string, perRow int) string {
	var rows []string
	for i := 0; i < len(cards); i += perRow {
		end := min(i+perRow, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderCard draws one card element at the given outer width.
func renderCard(card *dom.Element, width int) string {
	inner := width - cardChrome

	border := ColorOffline
	badgeStyle := OfflineBadgeStyle
	if card.HasClass(view.Online.Class()) {
		border = ColorOnline
		badgeStyle = OnlineBadgeStyle
	}

	lines := []string{
		spread(TitleStyle.Render(textOf(card.FindTag("h3"))), badgeStyle.Render(textOf(card.Find(classBadge))), inner),
	}
	for _, item := range card.FindAll(classMetaItem) {
		lines = append(lines, MetaStyle.Render(item.Text()))
	}
	for _, stat := range card.FindAll(classStat) {
		lines = append(lines, stat.Text())
	}

	lines = append(lines, "", SectionStyle.Render(textOf(card.Find(classPlayersTitle))))
	if players := card.Find(classPlayers); players != nil {
		lines = append(lines, renderPlayers(players, inner)...)
	}

	// Width excludes the border
	style := CardStyle.BorderForeground(border).Width(width - 2)
	return style.Render(strings.Join(lines, "\n"))
}

// renderPlayers wraps the chips of a player list into lines no wider than
// width. A placeholder is drawn muted.
func renderPlayers(players *dom.Element, width int) []string {
	chips := players.FindAll(classChip)
	if len(chips) == 0 {
		return []string{MutedStyle.Render(textOf(players.Find(classMuted)))}
	}

	var lines []string
	var line string
	for _, chip := range chips {
		rendered := ChipStyle.Render(chip.Text())
		switch {
		case line == "":
			line = rendered
		case lipgloss.Width(line)+1+lipgloss.Width(rendered) > width:
			lines = append(lines, line)
			line = rendered
		default:
			line += " " + rendered
		}
	}
	return append(lines, line)
}

// spread places left and right at the two ends of a line of width.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func textOf(e *dom.Element) string {
	if e == nil {
		return ""
	}
	return e.Text()
}
