package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/germanamz/scicalc/pkg/calc"
	"github.com/germanamz/scicalc/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModel(t *testing.T, cfg config.Config) Model {
	t.Helper()

	m, err := New(cfg, nil)
	require.NoError(t, err)

	return m
}

func update(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()

	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}

	return m
}

func runes(s string) []tea.Msg {
	out := make([]tea.Msg, 0, len(s))
	for _, r := range s {
		out = append(out, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return out
}

func TestTyping(t *testing.T) {
	m := newModel(t, config.Default())

	m = update(t, m, runes("7+2*3")...)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "27", m.State().Display)
	assert.Contains(t, m.View(), "27")
}

func TestScientificKeys(t *testing.T) {
	m := newModel(t, config.Default())

	m = update(t, m, runes("3q")...)
	assert.Equal(t, "9", m.State().Display)

	m = update(t, m, runes("1nr")...)
	assert.True(t, m.State().Errored)
	assert.Contains(t, m.View(), calc.ErrorMarker)
}

func TestEscapeClears(t *testing.T) {
	m := newModel(t, config.Default())

	m = update(t, m, runes("42")...)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, calc.Initial(), m.State())
}

func TestConfiguredBindings(t *testing.T) {
	cfg := config.Default()
	cfg.Keys = map[string]string{"x": "*", "c": "AC"}
	m := newModel(t, cfg)

	m = update(t, m, runes("6x7=")...)
	assert.Equal(t, "42", m.State().Display)

	m = update(t, m, runes("c")...)
	assert.Equal(t, calc.Initial(), m.State())
}

func TestBadBindingFails(t *testing.T) {
	cfg := config.Default()
	cfg.Keys = map[string]string{"x": "cube"}

	_, err := New(cfg, nil)
	assert.ErrorIs(t, err, calc.ErrUnknownToken)
}

func TestCursorNavigationAndPress(t *testing.T) {
	m := newModel(t, config.Default())

	row, col := m.Cursor()
	k, ok := m.layout.At(row, col)
	require.True(t, ok)
	assert.Equal(t, calc.Equals, k.Token)

	// From "=" move up to "3", right to "+", then back to "3".
	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyLeft})
	row, col = m.Cursor()
	k, _ = m.layout.At(row, col)
	assert.Equal(t, calc.Digit3, k.Token)

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, "3", m.State().Display)
}

func TestCursorFollowsTypedKey(t *testing.T) {
	m := newModel(t, config.Default())

	m = update(t, m, runes("s")...)
	row, col := m.Cursor()
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, col)
}

func TestPressMsg(t *testing.T) {
	m := newModel(t, config.Default())

	m = update(t, m, PressMsg{Token: calc.Pi})
	assert.Equal(t, "3.141592653589793", m.State().Display)
}

func TestQuit(t *testing.T) {
	m := newModel(t, config.Default())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestHelpToggle(t *testing.T) {
	m := newModel(t, config.Default())
	short := m.View()

	m = update(t, m, runes("?")...)
	assert.True(t, m.showHelp)
	assert.NotEqual(t, short, m.View())
	assert.Contains(t, m.View(), "left")
}

func TestBasicLayoutHidesScientific(t *testing.T) {
	cfg := config.Default()
	cfg.ShowScientific = false
	m := newModel(t, cfg)

	assert.NotContains(t, m.View(), "sin")

	// Keyboard shortcuts still work without the buttons.
	m = update(t, m, runes("9r")...)
	assert.Equal(t, "3", m.State().Display)
}

func TestViewTruncatesLongDisplay(t *testing.T) {
	cfg := config.Default()
	m := newModel(t, cfg)

	m = update(t, m, runes(strings.Repeat("9", 60))...)
	assert.Len(t, m.State().Display, 60)
	assert.Contains(t, m.View(), ellipsis)
}

func TestFit(t *testing.T) {
	assert.Equal(t, "123", fit("123", 5))
	assert.Equal(t, "…345", fit("12345", 4))
	assert.Equal(t, "…", fit("12345", 1))
	assert.Equal(t, "", fit("12345", 0))
}
