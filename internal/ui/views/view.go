package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ghsearch/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	InputView      string
	Query          string
	MinQueryLength int
	Results        []domain.User // nil until a lookup has completed
	SelectedIndex  int
	Loading        bool
	SpinnerView    string
	Error          string
	StatusMessage  string
	HelpView       string
}

// Renderer handles all view rendering
type Renderer struct {
	styles       *Styles
	resultRender *ResultRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(showAvatarURL bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:       styles,
		resultRender: NewResultRenderer(styles, showAvatarURL),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	availableWidth := termWidth - 4 // main container padding

	// Title with loading indicator on the right
	logo := r.styles.Title.Render("GitHub User Search")
	titleLine := logo
	if state.Loading {
		indicator := r.styles.Loading.Render(fmt.Sprintf("%s Searching %q", state.SpinnerView, state.Query))
		if pad := availableWidth - lipgloss.Width(logo) - lipgloss.Width(indicator); pad > 0 {
			titleLine = logo + strings.Repeat(" ", pad) + indicator
		} else {
			titleLine = logo + "  " + indicator
		}
	}
	content.WriteString(titleLine)
	content.WriteString("\n")

	content.WriteString(state.InputView)
	content.WriteString("\n")

	if state.Error != "" {
		content.WriteString(r.styles.StatusError.Render(state.Error))
		content.WriteString("\n")
	}

	content.WriteString(r.styles.Section.Render("Results"))
	content.WriteString("\n")

	// Lines used so far plus status and help at the bottom
	used := strings.Count(content.String(), "\n") + 1
	listHeight := state.Height - 2 - used - 3
	content.WriteString(r.renderResults(state, availableWidth, listHeight))

	footer := &strings.Builder{}
	if state.StatusMessage != "" {
		footer.WriteString(r.styles.StatusInfo.Render(state.StatusMessage))
	}
	footer.WriteString("\n")
	footer.WriteString(r.styles.Help.Render(state.HelpView))

	// Push footer to the bottom
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2
	if availableLines <= 0 {
		availableLines = 22
	}
	if paddingNeeded := availableLines - currentLines - 2; paddingNeeded > 0 {
		content.WriteString(strings.Repeat("\n", paddingNeeded))
	}
	content.WriteString("\n")
	content.WriteString(footer.String())

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

// renderResults renders the visible slice of the result list
func (r *Renderer) renderResults(state ViewState, width, height int) string {
	if len([]rune(state.Query)) < state.MinQueryLength && !state.Loading && len(state.Results) == 0 {
		return r.styles.Dim.Render(fmt.Sprintf("Type at least %d characters to search", state.MinQueryLength))
	}
	if state.Results == nil {
		if state.Loading {
			return r.styles.Dim.Render("Searching...")
		}
		return r.styles.Dim.Render("Press enter to search now")
	}
	if len(state.Results) == 0 {
		return r.styles.Dim.Render("No users found")
	}

	start, end := Window(len(state.Results), state.SelectedIndex, height)
	lines := make([]string, 0, end-start+2)
	if start > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more", start)))
	}
	for i := start; i < end; i++ {
		lines = append(lines, r.resultRender.RenderRow(state.Results[i], i == state.SelectedIndex, width))
	}
	if end < len(state.Results) {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more", len(state.Results)-end)))
	}
	return strings.Join(lines, "\n")
}
