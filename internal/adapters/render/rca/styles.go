package rca

import "github.com/charmbracelet/lipgloss"

type styles struct {
	rule        lipgloss.Style
	heading     lipgloss.Style
	problem     lipgloss.Style
	index       lipgloss.Style
	label       lipgloss.Style
	query       lipgloss.Style
	snippet     lipgloss.Style
	remediation lipgloss.Style
	info        lipgloss.Style
	success     lipgloss.Style
	progress    lipgloss.Style
	warning     lipgloss.Style
	failure     lipgloss.Style
	emphasis    lipgloss.Style
}

func newStyles() styles {
	return styles{
		rule:        lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		heading:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")),
		problem:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		index:       lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		label:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		query:       lipgloss.NewStyle().Italic(true),
		snippet:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("238")),
		remediation: lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		info:        lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
		success:     lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		progress:    lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
		warning:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("221")),
		failure:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		emphasis:    lipgloss.NewStyle().Bold(true),
	}
}
