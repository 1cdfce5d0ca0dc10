// Package keypad describes the calculator's button grid as data. Presentation
// layers render a Layout and map cursor positions back to tokens.
package keypad

import "github.com/germanamz/scicalc/pkg/calc"

// Key is one button on the grid. Span is the number of columns it occupies.
type Key struct {
	Token calc.Token
	Span  int
}

// Layout is a grid of keys, top row first.
type Layout struct {
	rows [][]Key
}

// New builds a layout from rows. Keys with a span below 1 get span 1.
func New(rows ...[]Key) Layout {
	out := make([][]Key, 0, len(rows))
	for _, r := range rows {
		row := make([]Key, len(r))
		for i, k := range r {
			if k.Span < 1 {
				k.Span = 1
			}
			row[i] = k
		}
		out = append(out, row)
	}
	return Layout{rows: out}
}

func k(t calc.Token) Key { return Key{Token: t, Span: 1} }

// Scientific returns the two rows of scientific function keys.
func Scientific() [][]Key {
	return [][]Key{
		{k(calc.Sin), k(calc.Cos), k(calc.Tan), k(calc.Sqrt)},
		{k(calc.Square), k(calc.Log10), k(calc.Pi)},
	}
}

// Basic returns the rows of a four-function calculator.
func Basic() [][]Key {
	return [][]Key{
		{k(calc.Clear), k(calc.Negate), k(calc.Percent), k(calc.Div)},
		{k(calc.Digit7), k(calc.Digit8), k(calc.Digit9), k(calc.Mul)},
		{k(calc.Digit4), k(calc.Digit5), k(calc.Digit6), k(calc.Sub)},
		{k(calc.Digit1), k(calc.Digit2), k(calc.Digit3), k(calc.Add)},
		{{Token: calc.Digit0, Span: 2}, k(calc.Decimal), k(calc.Equals)},
	}
}

// Default returns the full scientific keypad. With scientific false only the
// basic rows are included.
func Default(scientific bool) Layout {
	var rows [][]Key
	if scientific {
		rows = append(rows, Scientific()...)
	}
	rows = append(rows, Basic()...)
	return New(rows...)
}

// Rows returns the number of rows.
func (l Layout) Rows() int { return len(l.rows) }

// Row returns a copy of row i, or nil when out of range.
func (l Layout) Row(i int) []Key {
	if i < 0 || i >= len(l.rows) {
		return nil
	}
	return append([]Key(nil), l.rows[i]...)
}

// Width returns the number of keys in row i.
func (l Layout) Width(row int) int {
	if row < 0 || row >= len(l.rows) {
		return 0
	}
	return len(l.rows[row])
}

// At returns the key at the given position.
func (l Layout) At(row, col int) (Key, bool) {
	if col < 0 || col >= l.Width(row) {
		return Key{}, false
	}
	return l.rows[row][col], true
}

// Find locates tok on the grid.
func (l Layout) Find(tok calc.Token) (row, col int, ok bool) {
	for r, keys := range l.rows {
		for c, key := range keys {
			if key.Token == tok {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// Clamp moves (row, col) onto the nearest existing key.
func (l Layout) Clamp(row, col int) (int, int) {
	if len(l.rows) == 0 {
		return 0, 0
	}
	row = min(max(row, 0), len(l.rows)-1)
	col = min(max(col, 0), l.Width(row)-1)
	return row, col
}
