// Package calc implements the input-and-evaluation state machine of a
// scientific pocket calculator.
//
// The machine is a pure function: [Apply] takes a [State] and a [Token] and
// returns the next State. Binary operators chain strictly left to right with
// no precedence, unary scientific functions act on the displayed value, and
// undefined computations (division by zero, square root of a negative, log of
// a non-positive) put the machine into an error state that the next input
// clears.
//
// The package performs no I/O and holds no global state. Callers own the
// State value and thread it through successive Apply calls, serializing
// inputs the way a single-focus UI event loop does naturally.
package calc
