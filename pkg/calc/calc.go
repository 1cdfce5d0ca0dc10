package calc

import "math"

// Apply returns the state that follows s when tok is pressed.
//
// Any input while s is errored, and AC at any time, yields Initial(); the
// token that cleared an error is not otherwise applied. Tokens outside the
// alphabet leave s unchanged.
func Apply(s State, tok Token) State {
	if !tok.Valid() {
		return s
	}
	if s.Errored || tok == Clear {
		return Initial()
	}

	switch {
	case tok.IsDigit() || tok == Decimal:
		return enter(s, tok)
	case tok.IsOperator():
		s = evaluate(s)
		if s.Errored {
			s.LeftOperand = 0
		} else {
			s.LeftOperand, _ = s.Value()
		}
		s.PendingOperator = tok
		s.StartNewNumber = true
		return s
	case tok == Equals:
		return evaluate(s).resetChain()
	case tok == Negate:
		// Chain state is kept.
		return unary(s, func(v float64) (float64, bool) { return -v, true })
	case tok == Pi:
		s.Display = Format(math.Pi)
		s.StartNewNumber = true
		return s
	}

	f, ok := functions[tok]
	if !ok {
		return s
	}
	return unary(s, f).resetChain()
}

// ApplyAll folds Apply over toks.
func ApplyAll(s State, toks ...Token) State {
	for _, t := range toks {
		s = Apply(s, t)
	}
	return s
}

// fn computes a unary result; false means undefined.
type fn func(float64) (float64, bool)

var functions = map[Token]fn{
	Percent: func(v float64) (float64, bool) { return v / 100, true },
	Sin:     func(v float64) (float64, bool) { return math.Sin(radians(v)), true },
	Cos:     func(v float64) (float64, bool) { return math.Cos(radians(v)), true },
	Tan:     func(v float64) (float64, bool) { return math.Tan(radians(v)), true },
	Sqrt: func(v float64) (float64, bool) {
		if v < 0 {
			return 0, false
		}
		return math.Sqrt(v), true
	},
	Square: func(v float64) (float64, bool) { return v * v, true },
	Log10: func(v float64) (float64, bool) {
		if v <= 0 {
			return 0, false
		}
		r := math.Log10(v)
		// Exact powers of ten get exact exponents.
		if n := math.Round(r); math.Pow(10, n) == v {
			r = n
		}
		return r, true
	},
}

var pi = math.Pi

func radians(deg float64) float64 { return deg * (pi / 180) }

// enter extends or replaces the display with a typed character. Typed text
// is kept verbatim, so no formatting or validation happens here.
func enter(s State, tok Token) State {
	if s.Display == "0" || s.StartNewNumber {
		s.Display = tok.String()
		s.StartNewNumber = false
		return s
	}
	s.Display += tok.String()
	return s
}

// unary replaces the display with f applied to it.
func unary(s State, f fn) State {
	v, ok := s.Value()
	if !ok {
		return s.fail()
	}
	r, ok := f(v)
	if !ok {
		return s.fail()
	}
	return s.show(r)
}

// evaluate computes LeftOperand <PendingOperator> Display into the display.
func evaluate(s State) State {
	rhs, ok := s.Value()
	if !ok {
		return s.fail()
	}

	var r float64
	switch s.PendingOperator {
	case Add:
		r = s.LeftOperand + rhs
	case Sub:
		r = s.LeftOperand - rhs
	case Mul:
		r = s.LeftOperand * rhs
	case Div:
		if rhs == 0 {
			return s.fail()
		}
		r = s.LeftOperand / rhs
	default:
		return s.fail()
	}
	return s.show(r)
}
