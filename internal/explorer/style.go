package explorer

import "github.com/charmbracelet/lipgloss"

// Style controls the explorer's rendering.
type Style struct {
	Label        lipgloss.Style
	LabelFocused lipgloss.Style

	Text  lipgloss.Style
	Match lipgloss.Style

	Status lipgloss.Style
	Miss   lipgloss.Style
	Help   lipgloss.Style
}

func DefaultStyle() Style {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Label:        dim,
		LabelFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:         lipgloss.NewStyle(),
		Match:        lipgloss.NewStyle().Background(lipgloss.Color("237")).Underline(true),
		Status:       lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Miss:         lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Help:         dim,
	}
}
