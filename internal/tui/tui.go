// Package tui implements the interactive showdown board.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/showdown/poker"
)

// Model is the Bubble Tea model for the showdown board. Each submitted
// line becomes a hand; the board keeps every hand's score and the current
// winners.
type Model struct {
	logger *log.Logger

	// UI components
	boardViewport viewport.Model
	handInput     textinput.Model

	// State
	hands   []poker.Hand
	scores  []poker.Score
	winners []int
	lastErr error

	quitting bool

	// Dimensions
	width  int
	height int
}

// New creates a new board model
func New(logger *log.Logger) *Model {
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "Enter a hand, e.g. 6C 7C 8C 9C TC"
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40
	ti.PromptStyle = PromptStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.Prompt = "> "

	return &Model{
		logger:        logger.WithPrefix("tui"),
		boardViewport: vp,
		handInput:     ti,
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "ctrl+r":
			m.Clear()
			return m, nil
		case "enter":
			m.Submit(m.handInput.Value())
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.handInput, cmd = m.handInput.Update(msg)
	cmds = append(cmds, cmd)

	m.boardViewport, cmd = m.boardViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// Submit parses line as a hand and adds it to the board. A parse failure
// is kept for display and leaves the input untouched so it can be fixed.
func (m *Model) Submit(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	h, err := poker.ParseHandString(line)
	if err != nil {
		m.logger.Debug("Rejected hand", "input", line, "error", err)
		m.lastErr = err
		return
	}

	m.lastErr = nil
	m.hands = append(m.hands, h)
	m.scores = append(m.scores, poker.Classify(h))
	m.winners, _ = poker.Winners(m.hands) // never empty here
	m.handInput.SetValue("")
}

// Clear removes every hand from the board
func (m *Model) Clear() {
	m.hands = nil
	m.scores = nil
	m.winners = nil
	m.lastErr = nil
	m.handInput.SetValue("")
}

// Hands returns the hands on the board in entry order
func (m *Model) Hands() []poker.Hand { return m.hands }

// Winners returns the indices of every hand holding the best score
func (m *Model) Winners() []int { return m.winners }

// Err returns the last parse error, if any
func (m *Model) Err() error { return m.lastErr }

func (m *Model) isWinner(i int) bool {
	for _, w := range m.winners {
		if w == i {
			return true
		}
	}
	return false
}

// View renders the board
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(" showdown "))
	b.WriteString("\n\n")

	m.boardViewport.SetContent(m.renderBoard())
	if m.width > 0 && m.height > 0 {
		m.boardViewport.Width = max(m.width-2, 1)
		m.boardViewport.Height = max(m.height-8, 1)
		b.WriteString(BoardStyle.Render(m.boardViewport.View()))
	} else {
		b.WriteString(m.renderBoard())
	}
	b.WriteString("\n\n")

	b.WriteString(m.handInput.View())
	b.WriteString("\n")

	if m.lastErr != nil {
		b.WriteString(ErrorStyle.Render(m.lastErr.Error()))
		b.WriteString("\n")
	}
	b.WriteString(InfoStyle.Render("enter add • ctrl+r clear • esc quit"))
	return b.String()
}

func (m *Model) renderBoard() string {
	if len(m.hands) == 0 {
		return InfoStyle.Render("No hands yet")
	}

	var b strings.Builder
	for i, h := range m.hands {
		marker := "  "
		if m.isWinner(i) {
			marker = WinnerStyle.Render("★ ")
		}
		fmt.Fprintf(&b, "%s%2d  %s  %s\n", marker, i+1, renderCards(h), m.scores[i])
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func renderCards(h poker.Hand) string {
	parts := make([]string, 0, poker.HandSize)
	for _, c := range h {
		style := BlackCardStyle
		if c.Suit.IsRed() {
			style = RedCardStyle
		}
		parts = append(parts, style.Render(c.Rank.String()+c.Suit.Symbol()))
	}
	return strings.Join(parts, " ")
}
