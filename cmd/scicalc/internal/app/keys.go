package app

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/germanamz/scicalc/pkg/calc"
)

// keyMap holds the navigation bindings. Calculator keys are resolved through
// tokenKeys instead so the help view stays short.
type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Press key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Press: key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "press key")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Press, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Press, k.Help, k.Quit},
	}
}

// TokenKeys maps keyboard keys to calculator tokens.
var TokenKeys = map[string]calc.Token{
	"0":         calc.Digit0,
	"1":         calc.Digit1,
	"2":         calc.Digit2,
	"3":         calc.Digit3,
	"4":         calc.Digit4,
	"5":         calc.Digit5,
	"6":         calc.Digit6,
	"7":         calc.Digit7,
	"8":         calc.Digit8,
	"9":         calc.Digit9,
	".":         calc.Decimal,
	",":         calc.Decimal,
	"+":         calc.Add,
	"-":         calc.Sub,
	"*":         calc.Mul,
	"/":         calc.Div,
	"=":         calc.Equals,
	"enter":     calc.Equals,
	"%":         calc.Percent,
	"n":         calc.Negate,
	"esc":       calc.Clear,
	"backspace": calc.Clear,
	"a":         calc.Clear,
	"s":         calc.Sin,
	"c":         calc.Cos,
	"t":         calc.Tan,
	"r":         calc.Sqrt,
	"q":         calc.Square,
	"l":         calc.Log10,
	"p":         calc.Pi,
}
