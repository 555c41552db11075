package keys

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title        lipgloss.Style
	header       lipgloss.Style
	key          lipgloss.Style
	detail       lipgloss.Style
	section      lipgloss.Style
	empty        lipgloss.Style
	connected    lipgloss.Style
	disconnected lipgloss.Style
	label        lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:        lipgloss.NewStyle().Bold(true),
		header:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		key:          lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		section:      lipgloss.NewStyle().MarginTop(1),
		empty:        lipgloss.NewStyle().Faint(true),
		connected:    lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		disconnected: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		label:        lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	}
}
