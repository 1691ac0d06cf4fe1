package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ghsearch/internal/domain"
)

// ResultRenderer handles rendering of individual result rows
type ResultRenderer struct {
	styles        *Styles
	showAvatarURL bool
}

// NewResultRenderer creates a new result renderer
func NewResultRenderer(styles *Styles, showAvatarURL bool) *ResultRenderer {
	return &ResultRenderer{
		styles:        styles,
		showAvatarURL: showAvatarURL,
	}
}

// RenderRow renders one user as a clickable profile link
func (rr *ResultRenderer) RenderRow(user domain.User, selected bool, width int) string {
	marker := "  "
	if selected {
		marker = "› "
	}

	login := Hyperlink(user.HTMLURL, rr.styles.Login.Render(user.Login))
	line := marker + login
	if user.HTMLURL != "" {
		line += "  " + rr.styles.Dim.Render(user.HTMLURL)
	}
	if rr.showAvatarURL && user.AvatarURL != "" {
		line += "  " + rr.styles.Avatar.Render("["+user.AvatarURL+"]")
	}

	if selected {
		// Pad to full width so the selection bar spans the row
		if pad := width - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		return rr.styles.SelectionBg.Render(line)
	}
	return line
}

// Hyperlink wraps text in an OSC 8 terminal hyperlink. Terminals without
// support show the text alone.
func Hyperlink(url, text string) string {
	if url == "" {
		return text
	}
	return fmt.Sprintf("\x1b]8;;%s\x1b\\%s\x1b]8;;\x1b\\", url, text)
}

// Window returns the [start, end) slice of n rows that keeps selected
// visible in height rows
func Window(n, selected, height int) (int, int) {
	if height <= 0 || n <= height {
		return 0, n
	}
	start := selected - height/2
	if start < 0 {
		start = 0
	}
	if start > n-height {
		start = n - height
	}
	return start, start + height
}
