// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

// ErrorToken is the reserved display literal shown after a failed
// computation. It never collides with numeric output.
const ErrorToken = "Error"

// InitialDisplay is the display value of a fresh or cleared calculator.
const InitialDisplay = "0"

// State is the full calculator state for one session.
type State struct {
	Display          string   // Visible value; a number string or ErrorToken, never empty.
	PreviousValue    string   // Left operand; meaningful only when HasPrevious is true.
	HasPrevious      bool     // Whether PreviousValue is set.
	PendingOperator  Operator // OpNone when no operation is pending.
	AwaitingNewEntry bool     // The next digit starts a fresh number.
	Errored          bool     // Display holds ErrorToken.
}

// NewState returns the initial state.
func NewState() State {
	return State{Display: InitialDisplay}
}

// Snapshot is the view-facing result of a transition: the display string
// already formatted for rendering and the error flag used for styling.
type Snapshot struct {
	Display string `json:"display"`
	Errored bool   `json:"errored"`
	Pending string `json:"pending,omitempty"`
}
