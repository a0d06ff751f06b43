// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/abacus/pkg/types"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		op   types.Operator
		want string
	}{
		{name: "add integers", a: 7, b: 3, op: types.OpAdd, want: "10"},
		{name: "subtract to negative", a: 3, b: 7, op: types.OpSubtract, want: "-4"},
		{name: "multiply", a: 6, b: 7, op: types.OpMultiply, want: "42"},
		{name: "divide exact", a: 9, b: 3, op: types.OpDivide, want: "3"},
		{name: "divide repeating rounds to 10 places", a: 1, b: 3, op: types.OpDivide, want: "0.3333333333"},
		{name: "two thirds rounds up", a: 2, b: 3, op: types.OpDivide, want: "0.6666666667"},
		{name: "floating point noise is suppressed", a: 0.1, b: 0.2, op: types.OpAdd, want: "0.3"},
		{name: "zero numerator divides", a: 0, b: 5, op: types.OpDivide, want: "0"},
		{name: "negative zero renders as zero", a: -0.0, b: 1, op: types.OpMultiply, want: "0"},
		{name: "decimal result keeps fraction", a: 123.5, b: 2, op: types.OpMultiply, want: "247"},
		{name: "large result uses exponent form", a: 1e20, b: 10, op: types.OpMultiply, want: "1e+21"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.a, tt.b, tt.op)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_Errors(t *testing.T) {
	t.Run("divide by zero", func(t *testing.T) {
		_, err := Evaluate(5, 0, types.OpDivide)
		assert.ErrorIs(t, err, types.ErrDivisionByZero)
	})

	t.Run("zero divided by zero", func(t *testing.T) {
		_, err := Evaluate(0, 0, types.OpDivide)
		assert.ErrorIs(t, err, types.ErrDivisionByZero)
	})

	t.Run("no operator", func(t *testing.T) {
		_, err := Evaluate(1, 2, types.OpNone)
		assert.ErrorIs(t, err, types.ErrUnknownOperator)
	})
}

func TestFormatNumber_NonFinite(t *testing.T) {
	assert.Equal(t, "Infinity", FormatNumber(math.Inf(1)))
	assert.Equal(t, "-Infinity", FormatNumber(math.Inf(-1)))
	assert.Equal(t, "NaN", FormatNumber(math.NaN()))
}

func TestParseOperand(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{in: "0", want: 0},
		{in: "123", want: 123},
		{in: "123.5", want: 123.5},
		{in: "5.", want: 5},
		{in: "0.", want: 0},
		{in: "-4", want: -4},
		{in: "1e+21", want: 1e21},
		{in: "1e+21.", want: 1e21},
		{in: "Infinity", want: math.Inf(1)},
		{in: "-", want: 0},
		{in: "", want: 0},
		{in: "abc", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseOperand(tt.in))
		})
	}
}

func TestIsOperatorToken(t *testing.T) {
	for _, tok := range []string{"+", "-", "*", "/"} {
		assert.True(t, IsOperatorToken(tok), tok)
	}
	for _, tok := range []string{"", "=", "C", "x", "÷", "++", "7"} {
		assert.False(t, IsOperatorToken(tok), tok)
	}
}

func TestIsNumber(t *testing.T) {
	for _, s := range []string{"0", "-4", "12.", "0.5", "1e+21", "1e999", "Infinity", "NaN"} {
		assert.True(t, IsNumber(s), s)
	}
	for _, s := range []string{"", "-", ".", "1e+", "1.2.3", "1e+21.", types.ErrorToken} {
		assert.False(t, IsNumber(s), s)
	}
}
