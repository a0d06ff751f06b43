// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenValid(t *testing.T) {
	tests := []struct {
		name  string
		token Token
		want  bool
	}{
		{name: "digit zero", token: "0", want: true},
		{name: "digit nine", token: "9", want: true},
		{name: "decimal point", token: TokenDecimal, want: true},
		{name: "clear", token: TokenClear, want: true},
		{name: "equals", token: TokenEquals, want: true},
		{name: "backspace", token: TokenBackspace, want: true},
		{name: "add", token: TokenAdd, want: true},
		{name: "divide", token: TokenDivide, want: true},
		{name: "lowercase clear is a key, not a token", token: "c", want: false},
		{name: "multi digit", token: "12", want: false},
		{name: "percent", token: "%", want: false},
		{name: "empty", token: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.token.Valid())
		})
	}
}

func TestTokenOperator(t *testing.T) {
	op, ok := TokenMultiply.Operator()
	assert.True(t, ok)
	assert.Equal(t, OpMultiply, op)

	_, ok = Token("7").Operator()
	assert.False(t, ok)
}

func TestOperatorSymbolRoundTrip(t *testing.T) {
	for _, op := range []Operator{OpAdd, OpSubtract, OpMultiply, OpDivide} {
		t.Run(op.String(), func(t *testing.T) {
			assert.True(t, op.Valid())
			got, ok := ParseOperator(op.Symbol())
			assert.True(t, ok)
			assert.Equal(t, op, got)
		})
	}

	assert.False(t, OpNone.Valid())
	assert.Equal(t, "", OpNone.Symbol())
	assert.Equal(t, "none", OpNone.String())
}

func TestNewState(t *testing.T) {
	s := NewState()
	assert.Equal(t, InitialDisplay, s.Display)
	assert.False(t, s.HasPrevious)
	assert.Equal(t, OpNone, s.PendingOperator)
	assert.False(t, s.AwaitingNewEntry)
	assert.False(t, s.Errored)
}
