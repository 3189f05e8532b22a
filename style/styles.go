// Package style centralizes the lipgloss styles and color helpers
// shared by bars and the shell.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles for bar widgets and the shell.
type Styles struct {
	// Bar surfaces
	Bar       lipgloss.Style // background fill for bar rows
	BarText   lipgloss.Style // default widget text
	Separator lipgloss.Style
	Clock     lipgloss.Style

	// Prompt
	PromptText lipgloss.Style

	// Shell
	Hint  lipgloss.Style
	Muted lipgloss.Style
	Error lipgloss.Style
}

// DefaultStyles returns the default palette, adapted to a dark or
// light terminal background.
func DefaultStyles() Styles {
	if termenv.HasDarkBackground() {
		return darkStyles()
	}
	return lightStyles()
}

func darkStyles() Styles {
	return Styles{
		Bar: lipgloss.NewStyle().
			Background(lipgloss.Color("236")),
		BarText: lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")),
		Separator: lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("240")),
		Clock: lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("117")),

		PromptText: lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("230")),

		Hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
	}
}

func lightStyles() Styles {
	return Styles{
		Bar: lipgloss.NewStyle().
			Background(lipgloss.Color("254")),
		BarText: lipgloss.NewStyle().
			Background(lipgloss.Color("254")).
			Foreground(lipgloss.Color("235")),
		Separator: lipgloss.NewStyle().
			Background(lipgloss.Color("254")).
			Foreground(lipgloss.Color("249")),
		Clock: lipgloss.NewStyle().
			Background(lipgloss.Color("254")).
			Foreground(lipgloss.Color("26")),

		PromptText: lipgloss.NewStyle().
			Background(lipgloss.Color("254")).
			Foreground(lipgloss.Color("16")),

		Hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color("246")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("160")),
	}
}
