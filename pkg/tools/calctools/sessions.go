package calctools

import (
	"sync"

	"github.com/germanamz/scicalc/pkg/calc"
)

// Sessions holds one calculator state per session name. Inputs to the same
// session are applied one at a time.
type Sessions struct {
	mu     sync.Mutex
	states map[string]calc.State
}

// NewSessions creates an empty store.
func NewSessions() *Sessions {
	return &Sessions{states: make(map[string]calc.State)}
}

// Get returns the state of name; unknown sessions are in the initial state.
func (s *Sessions) Get(name string) calc.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st, ok := s.states[name]; ok {
		return st
	}
	return calc.Initial()
}

// Press applies toks to the named session and returns the resulting state.
func (s *Sessions) Press(name string, toks ...calc.Token) calc.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.states[name]
	if !ok {
		st = calc.Initial()
	}
	st = calc.ApplyAll(st, toks...)
	s.states[name] = st

	return st
}

// Reset forgets the named session.
func (s *Sessions) Reset(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.states, name)
}

// Len returns the number of live sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.states)
}
