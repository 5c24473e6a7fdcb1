package terminal

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles of the terminal client.
type Styles struct {
	Title       lipgloss.Style
	Text        lipgloss.Style
	Help        lipgloss.Style
	Bag         lipgloss.Style
	CordIntact  lipgloss.Style
	CordBroken  lipgloss.Style
	Word        lipgloss.Style
	Mercy       lipgloss.Style
	Boom        lipgloss.Style
	Fuse        lipgloss.Style
	Highlighted lipgloss.Style
}

func DefaultStyles() Styles {
	red := lipgloss.Color("#B91C1C")
	grey := lipgloss.Color("#9CA3AF")
	brown := lipgloss.Color("#431407")
	sand := lipgloss.Color("#D4C5B0")

	return Styles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(brown).MarginBottom(1),
		Text:       lipgloss.NewStyle().Foreground(brown),
		Help:       lipgloss.NewStyle().Foreground(grey).MarginTop(1),
		Bag:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(sand).Padding(1, 4),
		CordIntact: lipgloss.NewStyle().Foreground(red).Bold(true),
		CordBroken: lipgloss.NewStyle().Foreground(grey),
		Word:       lipgloss.NewStyle().Foreground(red).Italic(true),
		Mercy: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(red).
			Padding(0, 2).
			MarginTop(1),
		Boom:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#EF4444")).Padding(1, 6),
		Fuse:        lipgloss.NewStyle().Foreground(red),
		Highlighted: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(red).Padding(0, 1),
	}
}
