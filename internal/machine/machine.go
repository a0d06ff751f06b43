// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package machine implements the calculator input state machine. HandleInput
// is a pure transition function; Machine holds the state of one session and
// logs each transition.
package machine

import (
	"log/slog"
	"strings"

	"github.com/mesh-intelligence/abacus/pkg/calc"
	"github.com/mesh-intelligence/abacus/pkg/types"
)

// HandleInput returns the state that follows s when tok is entered.
// Tokens outside the accepted set leave s unchanged. Evaluation is strictly
// left to right: an operator entered while another is pending collapses the
// pending operation first.
func HandleInput(s types.State, tok types.Token) types.State {
	if tok == types.TokenClear {
		return types.NewState()
	}
	if !tok.Valid() {
		return s
	}

	if s.Errored {
		s.Display = types.InitialDisplay
		s.Errored = false
	}

	switch {
	case tok.IsDigit():
		return enterDigit(s, string(tok))
	case tok == types.TokenDecimal:
		return enterDecimal(s)
	case tok == types.TokenBackspace:
		return backspace(s)
	case tok == types.TokenEquals:
		return equals(s)
	}

	op, _ := tok.Operator()
	return applyOperator(s, op)
}

// Snapshot renders s for a view. The error token bypasses formatting.
func Snapshot(s types.State) types.Snapshot {
	snap := types.Snapshot{
		Display: calc.FormatForDisplay(s.Display),
		Errored: s.Errored,
		Pending: s.PendingOperator.Symbol(),
	}
	if s.Errored {
		snap.Display = types.ErrorToken
	}
	return snap
}

func enterDigit(s types.State, digit string) types.State {
	if s.Display == types.InitialDisplay || s.AwaitingNewEntry {
		s.Display = digit
		s.AwaitingNewEntry = false
		return s
	}
	if next := s.Display + digit; calc.IsNumber(next) {
		s.Display = next
	}
	return s
}

func enterDecimal(s types.State) types.State {
	if s.AwaitingNewEntry {
		s.Display = "0."
		s.AwaitingNewEntry = false
		return s
	}
	if strings.Contains(s.Display, ".") {
		return s
	}
	if next := s.Display + "."; calc.IsNumber(next) {
		s.Display = next
	}
	return s
}

// backspace drops the last character. It keeps dropping while the remainder
// is not a number ("-" left from "-4", "1e+" left from "1e+21") and falls
// back to the initial display when nothing valid remains.
func backspace(s types.State) types.State {
	if len(s.Display) <= 1 || s.Display == types.ErrorToken {
		s.Display = types.InitialDisplay
		s.Errored = false
		return s
	}

	d := s.Display[:len(s.Display)-1]
	for d != "" && !calc.IsNumber(d) {
		d = d[:len(d)-1]
	}
	if d == "" {
		d = types.InitialDisplay
	}
	s.Display = d
	return s
}

func applyOperator(s types.State, op types.Operator) types.State {
	if s.PendingOperator != types.OpNone && s.HasPrevious {
		result, err := evaluatePending(s)
		if err != nil {
			return types.State{
				Display:          types.ErrorToken,
				Errored:          true,
				PendingOperator:  op,
				AwaitingNewEntry: true,
			}
		}
		s.Display = result
		s.PreviousValue = result
	} else {
		s.PreviousValue = s.Display
		s.HasPrevious = true
	}

	s.PendingOperator = op
	s.AwaitingNewEntry = true
	return s
}

func equals(s types.State) types.State {
	if s.PendingOperator == types.OpNone || !s.HasPrevious {
		return s
	}

	result, err := evaluatePending(s)
	if err != nil {
		s.Display = types.ErrorToken
		s.Errored = true
	} else {
		s.Display = result
	}

	s.PreviousValue = ""
	s.HasPrevious = false
	s.PendingOperator = types.OpNone
	s.AwaitingNewEntry = true
	return s
}

func evaluatePending(s types.State) (string, error) {
	return calc.Evaluate(calc.ParseOperand(s.PreviousValue), calc.ParseOperand(s.Display), s.PendingOperator)
}

// Machine holds the state of a single calculator session. It is not safe
// for concurrent use; callers serialize input.
type Machine struct {
	state  types.State
	logger *slog.Logger
}

// New creates a Machine in the initial state.
func New(logger *slog.Logger) *Machine {
	return &Machine{
		state:  types.NewState(),
		logger: logger,
	}
}

// Press applies tok and returns the resulting Snapshot.
func (m *Machine) Press(tok types.Token) types.Snapshot {
	prev := m.state
	m.state = HandleInput(prev, tok)

	if !tok.Valid() {
		m.logger.Debug("ignoring token", "token", string(tok))
	} else {
		m.logger.Debug("input",
			"token", string(tok),
			"display", m.state.Display,
			"pending", m.state.PendingOperator.String(),
			"awaiting", m.state.AwaitingNewEntry,
		)
	}
	if m.state.Errored && !prev.Errored {
		m.logger.Info("computation failed", "err", types.ErrDivisionByZero, "operator", prev.PendingOperator.String())
	}
	return Snapshot(m.state)
}

// State returns a copy of the current state.
func (m *Machine) State() types.State {
	return m.state
}

// Snapshot returns the view-facing rendering of the current state.
func (m *Machine) Snapshot() types.Snapshot {
	return Snapshot(m.state)
}

// Reset returns the machine to the initial state.
func (m *Machine) Reset() {
	m.state = types.NewState()
}
