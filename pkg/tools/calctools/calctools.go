// Package calctools provides the calculator as a set of tools: a stateless
// calculate tool and press/clear tools that operate on named sessions.
package calctools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/germanamz/scicalc/pkg/calc"
	"github.com/germanamz/scicalc/pkg/tools/toolbox"
)

// DefaultSession is used when a press or clear call names no session.
const DefaultSession = "default"

// Result is the JSON body returned by every tool.
type Result struct {
	Display string `json:"display"`
	Errored bool   `json:"errored"`
}

type pressInput struct {
	Session string   `json:"session"`
	Tokens  []string `json:"tokens"`
}

type clearInput struct {
	Session string `json:"session"`
}

// Calculator builds the calculator tools over a session store.
type Calculator struct {
	sessions *Sessions
}

// New creates a Calculator backed by sessions.
func New(sessions *Sessions) *Calculator {
	return &Calculator{sessions: sessions}
}

// Tools returns a ToolBox holding every calculator tool.
func (c *Calculator) Tools() *toolbox.ToolBox {
	tb := toolbox.New()
	tb.Register(c.calculateTool(), c.pressTool(), c.clearTool())
	return tb
}

func (c *Calculator) calculateTool() toolbox.Tool {
	return toolbox.Tool{
		Name: "calculate",
		Description: "Press a sequence of calculator keys on a freshly cleared scientific calculator and return the display. " +
			"Keys: digits 0-9, '.', '+', '-', '*', '/', '=', '%', '+/-', 'AC', 'sin', 'cos', 'tan' (degrees), 'sqrt', 'square', 'log10', 'pi'. " +
			"Operators chain left to right without precedence.",
		InputSchema: json.RawMessage(`{
	"type": "object",
	"properties": {
		"tokens": {"type": "array", "items": {"type": "string"}, "description": "Keys to press, in order"}
	},
	"required": ["tokens"]
}`),
		Handler: func(_ context.Context, input json.RawMessage) (string, error) {
			var in pressInput
			if err := json.Unmarshal(input, &in); err != nil {
				return "", fmt.Errorf("calculate: invalid input: %w", err)
			}

			toks, err := parse(in.Tokens)
			if err != nil {
				return "", fmt.Errorf("calculate: %w", err)
			}

			return encode(calc.ApplyAll(calc.Initial(), toks...))
		},
	}
}

func (c *Calculator) pressTool() toolbox.Tool {
	return toolbox.Tool{
		Name: "press",
		Description: "Press calculator keys on a named session that keeps its state between calls. " +
			"Returns the display and whether the calculator is in the error state; any key clears an error.",
		InputSchema: json.RawMessage(`{
	"type": "object",
	"properties": {
		"session": {"type": "string", "description": "Session name (default: \"default\")"},
		"tokens": {"type": "array", "items": {"type": "string"}, "description": "Keys to press, in order"}
	},
	"required": ["tokens"]
}`),
		Handler: func(_ context.Context, input json.RawMessage) (string, error) {
			var in pressInput
			if err := json.Unmarshal(input, &in); err != nil {
				return "", fmt.Errorf("press: invalid input: %w", err)
			}

			toks, err := parse(in.Tokens)
			if err != nil {
				return "", fmt.Errorf("press: %w", err)
			}

			return encode(c.sessions.Press(sessionName(in.Session), toks...))
		},
	}
}

func (c *Calculator) clearTool() toolbox.Tool {
	return toolbox.Tool{
		Name:        "clear",
		Description: "Reset a named calculator session to its initial state.",
		InputSchema: json.RawMessage(`{
	"type": "object",
	"properties": {
		"session": {"type": "string", "description": "Session name (default: \"default\")"}
	}
}`),
		Handler: func(_ context.Context, input json.RawMessage) (string, error) {
			var in clearInput
			if err := json.Unmarshal(input, &in); err != nil {
				return "", fmt.Errorf("clear: invalid input: %w", err)
			}

			name := sessionName(in.Session)
			c.sessions.Reset(name)

			return encode(c.sessions.Get(name))
		},
	}
}

func parse(labels []string) ([]calc.Token, error) {
	if len(labels) == 0 {
		return nil, errors.New("tokens is required")
	}
	return calc.ParseTokens(labels)
}

func sessionName(s string) string {
	if s == "" {
		return DefaultSession
	}
	return s
}

func encode(s calc.State) (string, error) {
	b, err := json.Marshal(Result{Display: s.Display, Errored: s.Errored})
	if err != nil {
		return "", err
	}
	return string(b), nil
}
