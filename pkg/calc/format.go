package calc

import (
	"math"
	"strconv"
)

// Format renders a computed value for the display. Integral values have no
// fractional part. Other values use the shortest decimal that round-trips,
// switching to exponent notation for magnitudes below 1e-4 or from 1e16 up.
// Non-finite values render as ErrorMarker.
func Format(v float64) string {
	switch {
	case math.IsInf(v, 0) || math.IsNaN(v):
		return ErrorMarker
	case v == 0:
		// Covers negative zero.
		return "0"
	case v == math.Trunc(v):
		return strconv.FormatFloat(v, 'f', 0, 64)
	}

	if abs := math.Abs(v); abs < 1e-4 || abs >= 1e16 {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
