package cli

import "github.com/charmbracelet/lipgloss"

type styles struct {
	banner lipgloss.Style
	menu   lipgloss.Style
	prompt lipgloss.Style
	ok     lipgloss.Style
	errs   lipgloss.Style
	faint  lipgloss.Style
}

func newStyles(colored bool) styles {
	if !colored {
		plain := lipgloss.NewStyle()
		return styles{banner: plain, menu: plain, prompt: plain, ok: plain, errs: plain, faint: plain}
	}
	return styles{
		banner: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")), // bright cyan
		menu:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),            // bright green
		prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),            // bright yellow
		ok:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		errs:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")), // bright red
		faint:  lipgloss.NewStyle().Faint(true),
	}
}
