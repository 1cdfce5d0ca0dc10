package calc

import (
	"math"
	"strconv"
)

// ErrorMarker is the display text of the error state.
const ErrorMarker = "Error"

// State is the complete calculator state. It is a value: Apply returns a new
// State and never modifies the one it was given.
type State struct {
	// Display is the shown number, or ErrorMarker.
	Display string
	// LeftOperand holds the result carried between operator presses.
	LeftOperand float64
	// PendingOperator is applied between LeftOperand and the display on the
	// next operator or equals. Always one of Add, Sub, Mul, Div.
	PendingOperator Token
	// StartNewNumber makes the next digit or decimal point replace Display
	// instead of extending it.
	StartNewNumber bool
	// Errored is set when the last computation was undefined.
	Errored bool
}

// Initial returns the state of a freshly cleared calculator.
func Initial() State {
	return State{
		Display:         "0",
		LeftOperand:     0,
		PendingOperator: Add,
		StartNewNumber:  true,
	}
}

// Value parses Display. It reports false for the error state and for
// displays that do not hold a finite number.
func (s State) Value() (float64, bool) {
	if s.Errored {
		return 0, false
	}
	v, err := strconv.ParseFloat(s.Display, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// resetChain drops the operator chain, keeping the display.
func (s State) resetChain() State {
	s.LeftOperand = 0
	s.PendingOperator = Add
	s.StartNewNumber = true
	return s
}

// fail enters the error state.
func (s State) fail() State {
	s.Display = ErrorMarker
	s.Errored = true
	return s
}

// show replaces the display with a computed value. Non-finite values are
// undefined results.
func (s State) show(v float64) State {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return s.fail()
	}
	s.Display = Format(v)
	return s
}
