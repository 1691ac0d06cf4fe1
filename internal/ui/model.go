package ui

import (
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"ghsearch/internal/config"
	"ghsearch/internal/domain"
	"ghsearch/internal/eventbus"
	"ghsearch/internal/search"
	"ghsearch/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus       eventbus.EventBus
	config    *config.Config
	session   *search.Session
	debouncer *search.Debouncer

	width         int
	height        int
	input         textinput.Model
	spinner       spinner.Model
	spinning      bool
	help          help.Model
	keys          keyMap
	selectedIndex int
	statusMessage string

	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	browser      *Browser

	// Program reference for terminal management
	program *tea.Program
	send    func(tea.Msg)
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config) *Model {
	ti := textinput.New()
	ti.Placeholder = "Enter username or email"
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.Focus()

	m := &Model{
		bus:          bus,
		config:       cfg,
		session:      search.NewSession(cfg.Search.MinQueryLength),
		input:        ti,
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:         help.New(),
		keys:         newKeyMap(),
		renderer:     views.NewRenderer(cfg.UISettings.ShowAvatarURL),
		helpRenderer: NewHelpRenderer(cfg.Search.MinQueryLength, cfg.Search.Debounce()),
		browser:      NewBrowser(cfg.UISettings.OpenCommand),
	}

	m.debouncer = search.NewDebouncer(cfg.Search.Debounce(), cfg.Search.MinQueryLength, func(query string, gen uint64) {
		if m.send == nil {
			log.Printf("Debounce fired for %q with no program attached", query)
			return
		}
		m.send(debounceFiredMsg{query: query, gen: gen})
	})

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.send = p.Send
}

// SetSender replaces the function used to deliver timer messages to Update
func (m *Model) SetSender(send func(tea.Msg)) {
	m.send = send
}

// Session exposes the search state
func (m *Model) Session() *search.Session {
	return m.session
}

// Close releases the debounce timer
func (m *Model) Close() {
	m.debouncer.Stop()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = msg.Width - 8
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case debounceFiredMsg:
		if !m.debouncer.Current(msg.gen) || msg.query != m.session.Query() {
			// A later keystroke or manual trigger superseded this fire
			return m, nil
		}
		return m, m.issue(msg.query)

	case EventMsg:
		m.handleEvent(msg.Event)
		return m, nil

	case spinner.TickMsg:
		if !m.session.Loading() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case openProfileMsg:
		if msg.err != nil {
			log.Printf("Failed to open profile: %v", msg.err)
			m.statusMessage = "Could not open browser: " + msg.err.Error()
		} else {
			m.statusMessage = "Opened " + msg.url
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
			m.statusMessage = "Help unavailable: " + msg.err.Error()
		}
		return m, nil
	}

	// Cursor blink and other textinput internals
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.debouncer.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Search):
		// Manual trigger wins over any pending debounce
		m.debouncer.Trigger()
		query := m.input.Value()
		m.session.SetQuery(query)
		return m, m.issue(query)

	case key.Matches(msg, m.keys.Clear):
		m.input.SetValue("")
		m.queryChanged("")
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.selectedIndex > 0 {
			m.selectedIndex--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selectedIndex < len(m.session.Results())-1 {
			m.selectedIndex++
		}
		return m, nil

	case key.Matches(msg, m.keys.Open):
		user, ok := m.selectedUser()
		if !ok {
			return m, nil
		}
		return m, m.openProfile(user.HTMLURL)

	case key.Matches(msg, m.keys.Help):
		return m, m.showHelp()
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.queryChanged(after)
	}
	return m, cmd
}

// queryChanged runs the keystroke transition
func (m *Model) queryChanged(query string) {
	m.statusMessage = ""
	cleared := m.session.SetQuery(query)
	if m.debouncer.Keystroke(query) == search.DecisionClear || cleared {
		m.selectedIndex = 0
	}
}

// issue tags a lookup and hands it to the lookup service
func (m *Model) issue(query string) tea.Cmd {
	ticket, ok := m.session.Issue(query)
	if !ok {
		m.selectedIndex = 0
		return nil
	}

	log.Printf("Issuing lookup %s for %q (seq %d)", ticket.ID, ticket.Query, ticket.Seq)
	m.bus.Publish(eventbus.LookupRequestedEvent{Ticket: ticket})

	if m.spinning {
		return nil
	}
	m.spinning = true
	return m.spinner.Tick
}

// handleEvent applies lookup completions from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.LookupSucceededEvent:
		prev, hadPrev := m.selectedUser()
		if !m.session.Complete(e.Ticket, e.Users) {
			return
		}
		m.selectedIndex = 0
		if hadPrev {
			// Keep the cursor on the same user when they are still listed
			for i, u := range m.session.Results() {
				if u.ID == prev.ID {
					m.selectedIndex = i
					break
				}
			}
		}

	case eventbus.LookupFailedEvent:
		m.session.Fail(e.Ticket, e.Err)
	}
}

func (m *Model) selectedUser() (domain.User, bool) {
	results := m.session.Results()
	if m.selectedIndex < 0 || m.selectedIndex >= len(results) {
		return domain.User{}, false
	}
	return results[m.selectedIndex], true
}

func (m *Model) openProfile(url string) tea.Cmd {
	browser := m.browser
	return func() tea.Msg {
		return openProfileMsg{url: url, err: browser.Open(url)}
	}
}

func (m *Model) showHelp() tea.Cmd {
	ops := NewHelpOps(m.program)
	content := m.helpRenderer.RenderHelpContent()
	return func() tea.Msg {
		return helpPagerMsg{err: ops.ShowHelpInPager(content)}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	state := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		InputView:      m.input.View(),
		Query:          m.session.Query(),
		MinQueryLength: m.config.Search.MinQueryLength,
		Results:        m.session.Results(),
		SelectedIndex:  m.selectedIndex,
		Loading:        m.session.Loading(),
		SpinnerView:    m.spinner.View(),
		Error:          m.session.Err(),
		StatusMessage:  m.statusMessage,
		HelpView:       m.help.View(m.keys),
	}
	return m.renderer.Render(state)
}
