package keypad

import (
	"testing"

	"github.com/germanamz/scicalc/pkg/calc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Scientific(t *testing.T) {
	l := Default(true)

	require.Equal(t, 7, l.Rows())
	assert.Equal(t, 4, l.Width(0))
	assert.Equal(t, 3, l.Width(1))
	assert.Equal(t, 3, l.Width(6))

	key, ok := l.At(0, 3)
	require.True(t, ok)
	assert.Equal(t, calc.Sqrt, key.Token)

	key, ok = l.At(6, 0)
	require.True(t, ok)
	assert.Equal(t, calc.Digit0, key.Token)
	assert.Equal(t, 2, key.Span)
}

func TestDefault_Basic(t *testing.T) {
	l := Default(false)

	require.Equal(t, 5, l.Rows())
	_, _, ok := l.Find(calc.Sin)
	assert.False(t, ok)
}

func TestDefault_CoversAlphabet(t *testing.T) {
	l := Default(true)

	for _, tok := range calc.Tokens() {
		_, _, ok := l.Find(tok)
		assert.True(t, ok, tok.String())
	}
}

func TestFind(t *testing.T) {
	l := Default(true)

	row, col, ok := l.Find(calc.Equals)
	require.True(t, ok)
	assert.Equal(t, 6, row)
	assert.Equal(t, 2, col)
}

func TestAt_OutOfRange(t *testing.T) {
	l := Default(true)

	_, ok := l.At(-1, 0)
	assert.False(t, ok)
	_, ok = l.At(1, 3)
	assert.False(t, ok)
	_, ok = l.At(99, 0)
	assert.False(t, ok)
}

func TestClamp(t *testing.T) {
	l := Default(true)

	r, c := l.Clamp(0, 3)
	assert.Equal(t, 0, r)
	assert.Equal(t, 3, c)

	r, c = l.Clamp(1, 3)
	assert.Equal(t, 1, r)
	assert.Equal(t, 2, c)

	r, c = l.Clamp(-5, -5)
	assert.Equal(t, 0, r)
	assert.Equal(t, 0, c)

	r, c = l.Clamp(50, 50)
	assert.Equal(t, 6, r)
	assert.Equal(t, 2, c)
}

func TestNew_NormalizesSpan(t *testing.T) {
	l := New([]Key{{Token: calc.Digit1}})

	key, ok := l.At(0, 0)
	require.True(t, ok)
	assert.Equal(t, 1, key.Span)
}

func TestRow_ReturnsCopy(t *testing.T) {
	l := Default(true)

	row := l.Row(2)
	row[0].Token = calc.Pi

	key, _ := l.At(2, 0)
	assert.Equal(t, calc.Clear, key.Token)
	assert.Nil(t, l.Row(42))
}
