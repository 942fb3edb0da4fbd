package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/twentyone/internal/display"
	"github.com/lox/twentyone/internal/game"
)

// promptMode is what the input box is currently asking for
type promptMode int

const (
	modeWaiting promptMode = iota
	modeDecision
	modePlayAgain
)

// Model represents the Bubble Tea model for the game
type Model struct {
	logger   *log.Logger
	renderer *display.Renderer
	styles   *display.Styles

	// UI components
	logViewport viewport.Model
	actionInput textinput.Model

	// State
	gameLog      []string
	actionResult chan ActionResult
	quitSignal   chan bool
	closed       chan struct{}
	closeOnce    sync.Once
	quitting     bool
	focusedPane  int // 0 = log, 1 = input
	mode         promptMode

	// Sidebar state, driven by events and prompts
	match       int
	round       int
	balance     int
	richBalance int
	cardsLeft   int
	view        *game.TableView
	lastOutcome string

	// Dimensions
	width       int
	height      int
	initialized bool // Track if viewport has been properly sized

	// Test mode
	testMode    bool
	capturedLog []string // For test assertions
}

// ActionResult represents the result of a user action
type ActionResult struct {
	Action   string
	Continue bool
}

// QuitMsg is a custom message to signal quit
type QuitMsg struct{}

// eventMsg carries a game event and its rendered text into Update
type eventMsg struct {
	event game.GameEvent
	text  string
}

// logMsg appends a line to the game log
type logMsg string

// promptMsg switches what the input box is asking for
type promptMsg struct {
	mode promptMode
	view *game.TableView
}

// NewModel creates a new TUI model
func NewModel(renderer *display.Renderer, logger *log.Logger) *Model {
	return NewModelWithOptions(renderer, logger, false)
}

// NewModelWithOptions creates a new TUI model with test mode option
func NewModelWithOptions(renderer *display.Renderer, logger *log.Logger, testMode bool) *Model {
	styles := renderer.Styles()

	// Will be properly sized when WindowSizeMsg arrives
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 20
	ti.Width = 40
	ti.PromptStyle = styles.Prompt
	ti.Prompt = "> "

	// tests queue several answers ahead of the engine
	buffer := 1
	if testMode {
		buffer = 32
	}

	return &Model{
		logger:       logger.WithPrefix("tui"),
		renderer:     renderer,
		styles:       styles,
		logViewport:  vp,
		actionInput:  ti,
		gameLog:      []string{},
		actionResult: make(chan ActionResult, buffer),
		quitSignal:   make(chan bool, 1),
		closed:       make(chan struct{}),
		focusedPane:  1,
		testMode:     testMode,
		capturedLog:  []string{},
	}
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.listenForQuit())
}

// listenForQuit returns a command that listens for quit signals
func (m *Model) listenForQuit() tea.Cmd {
	return func() tea.Msg {
		<-m.quitSignal
		return QuitMsg{}
	}
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case QuitMsg:
		m.quitting = true
		return m, tea.Sequence(tea.ClearScreen, tea.Quit)

	case eventMsg:
		m.applyEvent(msg.event)
		if msg.text != "" {
			m.AddLogEntry(msg.text)
		}
		return m, nil

	case logMsg:
		m.AddLogEntry(string(msg))
		return m, nil

	case promptMsg:
		m.mode = msg.mode
		if msg.view != nil {
			m.view = msg.view
			m.cardsLeft = msg.view.CardsRemaining
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			m.sendResult(ActionResult{Action: "quit", Continue: false})
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		case "tab":
			if m.focusedPane == 0 {
				m.focusedPane = 1
				m.actionInput.Focus()
			} else {
				m.focusedPane = 0
				m.actionInput.Blur()
			}
		case "enter":
			if m.focusedPane == 1 {
				m.processAction(strings.TrimSpace(m.actionInput.Value()))
				m.actionInput.SetValue("")
			}
		case "up", "k":
			if m.focusedPane == 0 {
				m.logViewport.ScrollUp(1)
			}
		case "down", "j":
			if m.focusedPane == 0 {
				m.logViewport.ScrollDown(1)
			}
		case "pgup":
			if m.focusedPane == 0 {
				m.logViewport.HalfPageUp()
			}
		case "pgdown":
			if m.focusedPane == 0 {
				m.logViewport.HalfPageDown()
			}
		case "home":
			if m.focusedPane == 0 {
				m.logViewport.GotoTop()
			}
		case "end":
			if m.focusedPane == 0 {
				m.logViewport.GotoBottom()
			}
		}
	}

	var cmd tea.Cmd
	if m.focusedPane == 1 {
		m.actionInput, cmd = m.actionInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// applyEvent keeps the sidebar in step with the engine
func (m *Model) applyEvent(event game.GameEvent) {
	switch e := event.(type) {
	case game.MatchStartEvent:
		m.match = e.Match
		m.balance = e.Balance
		m.richBalance = e.RichBalance
		m.lastOutcome = ""
	case game.RoundStartEvent:
		m.round = e.Round
		m.balance = e.Balance
		m.cardsLeft = e.CardsRemaining
		m.view = nil
	case game.RoundEndEvent:
		m.balance = e.Balance
		m.lastOutcome = e.Outcome.String()
	case game.MatchEndEvent:
		m.balance = e.Balance
	}
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	// Don't render until we have valid dimensions
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Action pane (bottom, full width)
	actionContent := m.renderActionPane()
	actionHeight := lipgloss.Height(actionContent)
	actionPane := m.styles.ActionPane.
		Width(max(m.width-2, 1)).
		Height(max(actionHeight-2, 1)).
		Render(actionContent)

	// Sidebar pane (right side of log pane, same height as log pane)
	sidebarContent := m.renderSidebarPane()
	sidebarWidth := max(lipgloss.Width(sidebarContent), 25)
	paneHeight := max(m.height-actionHeight-4, 1) // Account for border x 2 and action pane

	sidebarPane := m.styles.Sidebar.
		Width(sidebarWidth).
		Height(paneHeight).
		Render(sidebarContent)

	// Log pane (top, fills height minus action pane)
	m.logViewport.SetContent(m.renderLogPane())
	m.logViewport.Width = max(m.width-sidebarWidth-4, 1)
	m.logViewport.Height = paneHeight

	if !m.initialized && m.logViewport.Width > 1 && m.logViewport.Height > 1 {
		m.logViewport.GotoBottom()
		m.initialized = true
	}

	logStyle := m.styles.LogPane.
		Width(m.logViewport.Width).
		Height(m.logViewport.Height)
	if m.focusedPane == 0 {
		logStyle = logStyle.BorderForeground(m.styles.ActionPane.GetBorderTopForeground())
	}
	logPane := logStyle.Render(m.logViewport.View())

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, logPane, sidebarPane)
	return lipgloss.JoinVertical(lipgloss.Top, topRow, actionPane)
}

// renderLogPane renders the game log pane content
func (m *Model) renderLogPane() string {
	return strings.Join(m.gameLog, "\n")
}

// renderSidebarPane creates the sidebar content
func (m *Model) renderSidebarPane() string {
	var content strings.Builder

	content.WriteString(m.styles.Balance.Render(fmt.Sprintf("Balance: $%d", m.balance)))
	if m.richBalance > 0 {
		content.WriteString(m.styles.Info.Render(fmt.Sprintf(" / $%d", m.richBalance)))
	}
	content.WriteString("\n\n")

	fmt.Fprintf(&content, "Match: %d\n", m.match)
	fmt.Fprintf(&content, "Round: %d\n", m.round)
	fmt.Fprintf(&content, "Cards left: %d\n", m.cardsLeft)

	if m.lastOutcome != "" {
		content.WriteString("\n")
		content.WriteString(m.styles.Info.Render("Last round: " + m.lastOutcome))
	}

	return content.String()
}

// renderActionPane renders the action input pane
func (m *Model) renderActionPane() string {
	var content strings.Builder

	switch m.mode {
	case modeDecision:
		if m.view != nil {
			content.WriteString(m.styles.HandInfo.Render(fmt.Sprintf("Your hand: %s (total %d)  Dealer shows: %s",
				m.renderer.Cards(m.view.PlayerCards), m.view.PlayerTotal, m.renderer.Cards(m.view.DealerUpCards))))
			content.WriteString("\n")
		}
		content.WriteString(m.styles.Actions.Render("Actions: [h]it [s]tay [q]uit"))
		m.actionInput.Placeholder = display.DecisionPrompt
	case modePlayAgain:
		content.WriteString(m.styles.Actions.Render("Match over. [y]es [n]o"))
		m.actionInput.Placeholder = display.PlayAgainPrompt
	default:
		content.WriteString(m.styles.HandInfo.Render("Waiting..."))
		m.actionInput.Placeholder = "'quit' to exit"
	}
	content.WriteString("\n")

	content.WriteString(m.actionInput.View())
	content.WriteString("\n")

	if m.focusedPane == 0 {
		content.WriteString(m.styles.Info.Render("Log focused: ↑↓ scroll, PgUp/PgDn half page, Home/End, Tab to input"))
	} else {
		content.WriteString(m.styles.Info.Render("Tab to scroll log • Enter to submit • Ctrl+C to quit"))
	}

	return content.String()
}

// AddLogEntry adds an entry to the game log
func (m *Model) AddLogEntry(entry string) {
	m.gameLog = append(m.gameLog, entry)

	if m.testMode {
		m.capturedLog = append(m.capturedLog, entry)
		return // Skip UI updates in test mode
	}

	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// processAction forwards typed input to the engine. Input typed while the
// engine is busy is dropped unless it asks to quit.
func (m *Model) processAction(input string) {
	if m.mode == modeWaiting && !display.IsQuit(input) {
		return
	}
	m.sendResult(ActionResult{Action: input, Continue: true})
}

// sendResult hands a result to the engine without blocking the UI
func (m *Model) sendResult(result ActionResult) {
	select {
	case m.actionResult <- result:
	default:
		m.logger.Debug("Dropped input, engine has not taken the previous one", "action", result.Action)
	}
}

// WaitForAction waits for user input (for use by the engine goroutine).
// Once the model is closed it reports a quit.
func (m *Model) WaitForAction() ActionResult {
	select {
	case result := <-m.actionResult:
		return result
	case <-m.closed:
		return ActionResult{Action: "quit", Continue: false}
	}
}

// Close releases an engine waiting for input after the program has exited
func (m *Model) Close() {
	m.closeOnce.Do(func() { close(m.closed) })
}

// SendQuitSignal signals the TUI to quit gracefully
func (m *Model) SendQuitSignal() {
	select {
	case m.quitSignal <- true:
	default:
		// Channel is full, quit signal already sent
	}
}

// GetCapturedLog returns the captured log entries (test mode only)
func (m *Model) GetCapturedLog() []string {
	if !m.testMode {
		return nil
	}
	result := make([]string, len(m.capturedLog))
	copy(result, m.capturedLog)
	return result
}

// InjectAction programmatically injects an action (test mode only)
func (m *Model) InjectAction(action string) error {
	if !m.testMode {
		return fmt.Errorf("action injection only available in test mode")
	}

	select {
	case m.actionResult <- ActionResult{Action: action, Continue: true}:
		return nil
	default:
		return fmt.Errorf("action channel full")
	}
}

// IsTestMode returns whether the TUI is in test mode
func (m *Model) IsTestMode() bool {
	return m.testMode
}
