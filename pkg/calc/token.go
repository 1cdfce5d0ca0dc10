package calc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownToken is returned when a label does not name any token.
var ErrUnknownToken = errors.New("calc: unknown token")

// Kind groups tokens by role. Presentation layers use it to pick a style.
type Kind int

const (
	KindDigit Kind = iota
	KindOperator
	KindControl
	KindScientific
)

func (k Kind) String() string {
	switch k {
	case KindDigit:
		return "digit"
	case KindOperator:
		return "operator"
	case KindControl:
		return "control"
	case KindScientific:
		return "scientific"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Token is one discrete user input accepted by the engine.
type Token int

const (
	Digit0 Token = iota
	Digit1
	Digit2
	Digit3
	Digit4
	Digit5
	Digit6
	Digit7
	Digit8
	Digit9
	Decimal

	Add
	Sub
	Mul
	Div
	Equals

	Percent
	Negate
	Clear

	Sin
	Cos
	Tan
	Sqrt
	Square
	Log10
	Pi

	tokenCount
)

var labels = [tokenCount]string{
	Digit0:  "0",
	Digit1:  "1",
	Digit2:  "2",
	Digit3:  "3",
	Digit4:  "4",
	Digit5:  "5",
	Digit6:  "6",
	Digit7:  "7",
	Digit8:  "8",
	Digit9:  "9",
	Decimal: ".",
	Add:     "+",
	Sub:     "-",
	Mul:     "*",
	Div:     "/",
	Equals:  "=",
	Percent: "%",
	Negate:  "+/-",
	Clear:   "AC",
	Sin:     "sin",
	Cos:     "cos",
	Tan:     "tan",
	Sqrt:    "sqrt",
	Square:  "square",
	Log10:   "log10",
	Pi:      "pi",
}

// faces are the labels shown on the physical keypad where they differ from
// the canonical label.
var faces = map[Token]string{
	Sqrt:   "√",
	Square: "x²",
	Log10:  "log",
	Pi:     "π",
}

// aliases maps alternative spellings to tokens. Lookups are case-insensitive
// for the word-like labels.
var aliases = map[string]Token{
	"√":   Sqrt,
	"x²":  Square,
	"x^2": Square,
	"sq":  Square,
	"log": Log10,
	"π":   Pi,
	"×":   Mul,
	"x":   Mul,
	"÷":   Div,
	"−":   Sub,
	"±":   Negate,
	"neg": Negate,
	"ac":  Clear,
}

// Tokens returns every token in declaration order.
func Tokens() []Token {
	out := make([]Token, 0, tokenCount)
	for t := Token(0); t < tokenCount; t++ {
		out = append(out, t)
	}
	return out
}

// String returns the canonical label, the one accepted by ParseToken.
func (t Token) String() string {
	if t < 0 || t >= tokenCount {
		return fmt.Sprintf("token(%d)", int(t))
	}
	return labels[t]
}

// Face returns the label printed on a keypad button.
func (t Token) Face() string {
	if f, ok := faces[t]; ok {
		return f
	}
	return t.String()
}

// Kind reports the role of the token.
func (t Token) Kind() Kind {
	switch {
	case t.IsDigit() || t == Decimal:
		return KindDigit
	case t.IsOperator() || t == Equals:
		return KindOperator
	case t == Percent || t == Negate || t == Clear:
		return KindControl
	default:
		return KindScientific
	}
}

// IsDigit reports whether t is one of 0-9.
func (t Token) IsDigit() bool { return t >= Digit0 && t <= Digit9 }

// IsOperator reports whether t is a binary operator.
func (t Token) IsOperator() bool { return t >= Add && t <= Div }

// Valid reports whether t is a member of the token alphabet.
func (t Token) Valid() bool { return t >= 0 && t < tokenCount }

// ParseToken resolves a label to a token. Canonical labels, keypad faces and
// a few common aliases are accepted.
func ParseToken(s string) (Token, error) {
	s = strings.TrimSpace(s)
	for t := Token(0); t < tokenCount; t++ {
		if labels[t] == s {
			return t, nil
		}
	}
	lower := strings.ToLower(s)
	for t := Token(0); t < tokenCount; t++ {
		if labels[t] == lower {
			return t, nil
		}
	}
	if t, ok := aliases[lower]; ok {
		return t, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownToken, s)
}

// ParseTokens resolves every label in order, stopping at the first unknown
// one.
func ParseTokens(ss []string) ([]Token, error) {
	out := make([]Token, 0, len(ss))
	for _, l := range ss {
		t, err := ParseToken(l)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// MarshalText implements encoding.TextMarshaler.
func (t Token) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownToken, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Token) UnmarshalText(b []byte) error {
	v, err := ParseToken(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
