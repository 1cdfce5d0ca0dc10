package app

import "github.com/mattn/go-runewidth"

const ellipsis = "…"

// fit shortens s to width cells by dropping characters from the left, so the
// least significant digits stay visible.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}

	w := runewidth.StringWidth(s)
	if w <= width {
		return s
	}
	if width == 1 {
		return ellipsis
	}

	return runewidth.TruncateLeft(s, w-(width-1), ellipsis)
}
