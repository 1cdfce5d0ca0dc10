// Package keyref produces the keyboard reference shown by `scicalc keys`.
package keyref

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/germanamz/scicalc/pkg/calc"
)

// Markdown renders the bindings as a Markdown document, one table row per
// token. Tokens without a key are listed with an empty key column.
func Markdown(bindings map[string]calc.Token) string {
	byToken := make(map[calc.Token][]string)
	for k, tok := range bindings {
		byToken[tok] = append(byToken[tok], k)
	}

	var b strings.Builder
	b.WriteString("# scicalc keys\n\n")
	b.WriteString("| Button | Keys | Kind |\n")
	b.WriteString("|---|---|---|\n")

	for _, tok := range calc.Tokens() {
		keys := byToken[tok]
		sort.Strings(keys)
		for i, k := range keys {
			keys[i] = "`" + escape(k) + "`"
		}
		fmt.Fprintf(&b, "| %s | %s | %s |\n", escape(tok.Face()), strings.Join(keys, " "), tok.Kind())
	}

	b.WriteString("\nArrow keys move the keypad cursor, `space` presses the key under it, `?` toggles help and `ctrl+c` quits.\n")
	b.WriteString("Operators chain left to right: `7 + 2 * 3 =` shows `27`. Trigonometric functions take degrees.\n")

	return b.String()
}

// Render renders md for a terminal of the given width.
func Render(md string, width int, dark bool) (string, error) {
	style := "light"
	if dark {
		style = "dark"
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("keyref: renderer: %w", err)
	}

	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("keyref: render: %w", err)
	}
	return out, nil
}

func escape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
