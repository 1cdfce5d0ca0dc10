package styles

import (
	"testing"

	"github.com/germanamz/scicalc/pkg/calc"
	"github.com/stretchr/testify/assert"
)

func TestButton_PerKind(t *testing.T) {
	th := New(Dark)

	assert.Equal(t, Dark.DigitBg, th.Button(calc.KindDigit).GetBackground())
	assert.Equal(t, Dark.OpBg, th.Button(calc.KindOperator).GetBackground())
	assert.Equal(t, Dark.ControlFg, th.Button(calc.KindControl).GetForeground())
	assert.Equal(t, Dark.SciBg, th.Button(calc.KindScientific).GetBackground())
}

func TestButton_UnknownKind(t *testing.T) {
	th := New(Dark)
	assert.NotPanics(t, func() { _ = th.Button(calc.Kind(42)).Render("x") })
}

func TestForName(t *testing.T) {
	assert.Equal(t, Light.Error, ForName("light").DisplayError.GetForeground())
	assert.Equal(t, Dark.Error, ForName("dark").DisplayError.GetForeground())
	assert.Equal(t, Dark.Error, ForName("unknown").DisplayError.GetForeground())
}
