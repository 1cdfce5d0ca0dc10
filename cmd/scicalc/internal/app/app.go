// Package app is the bubbletea model of the terminal calculator. It owns one
// calc.State, feeds it key presses and renders the display and keypad after
// every update.
package app

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/germanamz/scicalc/cmd/scicalc/internal/styles"
	"github.com/germanamz/scicalc/pkg/calc"
	"github.com/germanamz/scicalc/pkg/config"
	"github.com/germanamz/scicalc/pkg/keypad"
)

const (
	cellWidth = 6
	columns   = 4
)

// Model is the root bubbletea model.
type Model struct {
	state    calc.State
	layout   keypad.Layout
	theme    styles.Theme
	keys     keyMap
	extra    map[string]calc.Token
	help     help.Model
	showHelp bool
	row      int
	col      int
	width    int
	log      *slog.Logger
}

// New creates a model from cfg. A nil logger discards log output.
func New(cfg config.Config, log *slog.Logger) (Model, error) {
	extra, err := cfg.Bindings()
	if err != nil {
		return Model{}, err
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	layout := keypad.Default(cfg.ShowScientific)
	row, col, _ := layout.Find(calc.Equals)

	return Model{
		state:  calc.Initial(),
		layout: layout,
		theme:  styles.ForName(cfg.Theme),
		keys:   defaultKeyMap(),
		extra:  extra,
		help:   help.New(),
		row:    row,
		col:    col,
		width:  max(cfg.DisplayWidth, gridWidth()),
		log:    log,
	}, nil
}

// State returns the current calculator state.
func (m Model) State() calc.State { return m.state }

// Cursor returns the keypad position under the cursor.
func (m Model) Cursor() (row, col int) { return m.row, m.col }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case PressMsg:
		return m.press(msg.Token), nil
	}
	return m, nil
}

// PressMsg applies a token as if its key had been pressed.
type PressMsg struct {
	Token calc.Token
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.row, m.col = m.layout.Clamp(m.row-1, m.col)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.row, m.col = m.layout.Clamp(m.row+1, m.col)
		return m, nil
	case key.Matches(msg, m.keys.Left):
		m.row, m.col = m.layout.Clamp(m.row, m.col-1)
		return m, nil
	case key.Matches(msg, m.keys.Right):
		m.row, m.col = m.layout.Clamp(m.row, m.col+1)
		return m, nil
	case key.Matches(msg, m.keys.Press):
		if k, ok := m.layout.At(m.row, m.col); ok {
			return m.press(k.Token), nil
		}
		return m, nil
	}

	if tok, ok := m.tokenFor(msg.String()); ok {
		return m.press(tok), nil
	}

	return m, nil
}

// tokenFor resolves a key name, configured bindings first.
func (m Model) tokenFor(name string) (calc.Token, bool) {
	if tok, ok := m.extra[name]; ok {
		return tok, true
	}
	tok, ok := TokenKeys[name]
	return tok, ok
}

func (m Model) press(tok calc.Token) Model {
	m.state = calc.Apply(m.state, tok)

	if row, col, ok := m.layout.Find(tok); ok {
		m.row, m.col = row, col
	}

	m.log.Debug("key pressed",
		"token", tok.String(),
		"display", m.state.Display,
		"errored", m.state.Errored,
	)

	return m
}

func (m Model) View() string {
	displayStyle := m.theme.Display
	if m.state.Errored {
		displayStyle = m.theme.DisplayError
	}
	display := displayStyle.Width(m.width).Render(fit(m.state.Display, m.width))

	rows := make([]string, 0, m.layout.Rows()+2)
	rows = append(rows, display, "")
	for r := 0; r < m.layout.Rows(); r++ {
		rows = append(rows, m.renderRow(r))
	}

	body := m.theme.Frame.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	return lipgloss.JoinVertical(lipgloss.Left, body, m.theme.Hint.Render(m.help.View(m.keys)))
}

func (m Model) renderRow(r int) string {
	cells := make([]string, 0, m.layout.Width(r))
	for c, k := range m.layout.Row(r) {
		w := k.Span*cellWidth + (k.Span - 1)
		style := m.theme.Button(k.Token.Kind()).Width(w)
		if r == m.row && c == m.col {
			style = m.theme.Cursor.Inherit(style)
		}
		cells = append(cells, style.Render(k.Token.Face()))
	}
	return strings.Join(cells, " ")
}

func gridWidth() int {
	return columns*cellWidth + (columns - 1)
}
