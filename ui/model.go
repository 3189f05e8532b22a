package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/drake/ledge/style"
)

// Model is the Bubble Tea model for the panel shell. It owns no widget
// state: bars arrive fully rendered from Session, and every scripted
// key goes back out over the outbound channel.
type Model struct {
	top    []string
	bottom []string

	// Push-based state from Session
	boundKeys    map[string]bool
	promptActive bool

	status    string
	statusSeq int

	width       int
	height      int
	outbound    chan<- Event
	styles      style.Styles
	quitting    bool
	initialized bool
}

// NewModel creates a new shell model.
func NewModel(outbound chan<- Event) Model {
	return Model{
		outbound: outbound,
		styles:   style.DefaultStyles(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.initialized = true
		m.sendOutbound(WindowSizeChangedMsg{Width: msg.Width, Height: msg.Height})
		return m, nil

	case SetBarsMsg:
		m.top = msg.Top
		m.bottom = msg.Bottom
		return m, nil

	case UpdateBindsMsg:
		m.boundKeys = msg
		return m, nil

	case PromptStateMsg:
		m.promptActive = msg.Active
		return m, nil

	case StatusTextMsg:
		m.status = string(msg)
		m.statusSeq++
		return m, expireStatus(m.statusSeq)

	case statusExpireMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always exits, even mid-prompt.
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// While a prompt is active the session owns key handling; it holds
	// the prompt widget and decides what Enter and Esc mean.
	if m.promptActive {
		m.sendOutbound(PromptKeyMsg{Key: msg})
		return m, nil
	}

	keyStr := keyToString(msg)
	if keyStr != "" && m.boundKeys[keyStr] {
		m.sendOutbound(ExecuteBindMsg(keyStr))
		return m, nil
	}

	if keyStr == ":" {
		m.sendOutbound(PromptOpenMsg{})
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.initialized {
		return "Loading..."
	}
	if m.quitting {
		return ""
	}

	rows := make([]string, 0, m.height)
	rows = append(rows, m.top...)
	if filler := m.height - len(m.top) - len(m.bottom); filler > 0 {
		rows = append(rows, strings.Split(m.fillerView(filler), "\n")...)
	}
	rows = append(rows, m.bottom...)
	if len(rows) > m.height {
		rows = rows[:m.height]
	}
	return strings.Join(rows, "\n")
}

// fillerView renders the space between the bar edges: the transient
// status line when one is live, otherwise a muted usage hint.
func (m Model) fillerView(height int) string {
	text := m.status
	sty := m.styles.Hint
	if text == "" {
		text = "ledge · : command · ctrl+c quit"
		sty = m.styles.Muted
	}
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, sty.Render(text))
}

func (m *Model) sendOutbound(msg Event) {
	if m.outbound == nil {
		return
	}
	select {
	case m.outbound <- msg:
	default:
	}
}

// keyToString normalizes a key press into the name scripts use with
// ledge.bind: printable keys as their runes, everything else in Bubble
// Tea's notation ("ctrl+r", "f1", "enter").
func keyToString(msg tea.KeyMsg) string {
	if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
		return string(msg.Runes)
	}
	return msg.String()
}
