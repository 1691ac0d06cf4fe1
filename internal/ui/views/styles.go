package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Section     lipgloss.Style
	Login       lipgloss.Style
	Avatar      lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Scroll      lipgloss.Style
	SelectionBg lipgloss.Style
	StatusError lipgloss.Style
	StatusInfo  lipgloss.Style
	Loading     lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		Login:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		Avatar: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Help:   lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Loading:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
	}
}
