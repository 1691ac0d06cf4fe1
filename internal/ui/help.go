package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	minQueryLength int
	debounce       time.Duration
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(minQueryLength int, debounce time.Duration) *HelpRenderer {
	return &HelpRenderer{minQueryLength: minQueryLength, debounce: debounce}
}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("GitHub User Search Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Searching"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("typing  "), descStyle.Render(
		fmt.Sprintf("Search after %s without a keystroke", r.debounce))))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("enter   "), descStyle.Render("Search immediately")))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("esc     "), descStyle.Render("Clear the query")))
	help.WriteString(fmt.Sprintf("  %s\n", descStyle.Render(
		fmt.Sprintf("Queries shorter than %d characters clear the results.", r.minQueryLength))))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Results"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("↑/ctrl+p"), descStyle.Render("Previous user")))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("↓/ctrl+n"), descStyle.Render("Next user")))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("ctrl+o  "), descStyle.Render("Open profile in browser")))
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).Render(
		"  Logins are terminal hyperlinks; ctrl/cmd+click works where supported"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("f1      "), descStyle.Render("Show this help")))
	help.WriteString(fmt.Sprintf("  %s  %s", keyStyle.Render("ctrl+c  "), descStyle.Render("Quit")))

	return help.String()
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Give ov a moment to leave the alternate screen
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Don't leave the help text behind on our screen
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
