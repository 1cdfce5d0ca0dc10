package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/germanamz/scicalc/pkg/calc"
)

// Palette is the set of colors a theme is built from.
type Palette struct {
	Fg        lipgloss.Color // primary foreground
	Muted     lipgloss.Color // hints and borders
	Error     lipgloss.Color // error display
	DigitBg   lipgloss.Color
	DigitFg   lipgloss.Color
	OpBg      lipgloss.Color
	OpFg      lipgloss.Color
	ControlBg lipgloss.Color
	ControlFg lipgloss.Color
	SciBg     lipgloss.Color
	SciFg     lipgloss.Color
}

// Dark mirrors the classic black calculator face.
var Dark = Palette{
	Fg:        lipgloss.Color("#ffffff"),
	Muted:     lipgloss.Color("#8b949e"),
	Error:     lipgloss.Color("#ff7b72"),
	DigitBg:   lipgloss.Color("#3d3d3d"), // white 24%
	DigitFg:   lipgloss.Color("#ffffff"),
	OpBg:      lipgloss.Color("#ff9800"), // orange
	OpFg:      lipgloss.Color("#ffffff"),
	ControlBg: lipgloss.Color("#cfd8dc"), // blue grey 100
	ControlFg: lipgloss.Color("#000000"),
	SciBg:     lipgloss.Color("#42a5f5"), // blue 400
	SciFg:     lipgloss.Color("#ffffff"),
}

// Light is the GitHub terminal light palette.
var Light = Palette{
	Fg:        lipgloss.Color("#24292f"),
	Muted:     lipgloss.Color("#656d76"),
	Error:     lipgloss.Color("#cf222e"),
	DigitBg:   lipgloss.Color("#eaeef2"),
	DigitFg:   lipgloss.Color("#24292f"),
	OpBg:      lipgloss.Color("#bc4c00"),
	OpFg:      lipgloss.Color("#ffffff"),
	ControlBg: lipgloss.Color("#d0d7de"),
	ControlFg: lipgloss.Color("#24292f"),
	SciBg:     lipgloss.Color("#0969da"),
	SciFg:     lipgloss.Color("#ffffff"),
}

// Theme holds the rendered styles of the calculator.
type Theme struct {
	Display      lipgloss.Style
	DisplayError lipgloss.Style
	Frame        lipgloss.Style
	Cursor       lipgloss.Style
	Hint         lipgloss.Style
	buttons      map[calc.Kind]lipgloss.Style
}

// New builds a theme from p.
func New(p Palette) Theme {
	button := func(bg, fg lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Background(bg).Foreground(fg).Align(lipgloss.Center)
	}

	return Theme{
		Display:      lipgloss.NewStyle().Bold(true).Foreground(p.Fg).Align(lipgloss.Right),
		DisplayError: lipgloss.NewStyle().Bold(true).Foreground(p.Error).Align(lipgloss.Right),
		Frame:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Muted).Padding(0, 1),
		Cursor:       lipgloss.NewStyle().Bold(true).Underline(true),
		Hint:         lipgloss.NewStyle().Foreground(p.Muted),
		buttons: map[calc.Kind]lipgloss.Style{
			calc.KindDigit:      button(p.DigitBg, p.DigitFg),
			calc.KindOperator:   button(p.OpBg, p.OpFg),
			calc.KindControl:    button(p.ControlBg, p.ControlFg),
			calc.KindScientific: button(p.SciBg, p.SciFg),
		},
	}
}

// ForName returns the theme registered under name, falling back to dark.
func ForName(name string) Theme {
	if name == "light" {
		return New(Light)
	}
	return New(Dark)
}

// Button returns the style for keys of kind k.
func (t Theme) Button(k calc.Kind) lipgloss.Style {
	if s, ok := t.buttons[k]; ok {
		return s
	}
	return lipgloss.NewStyle().Align(lipgloss.Center)
}
