// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package calc provides the arithmetic evaluator: binary operations on
// display operands, number rendering, and display formatting. Every function
// in this package is pure.
package calc

import (
	"errors"
	"math"
	"strconv"

	"github.com/mesh-intelligence/abacus/pkg/types"
)

// Precision is the number of decimal places results are rounded to before
// rendering. It suppresses binary floating point noise such as
// 0.1+0.2 = 0.30000000000000004.
const Precision = 10

// exponentThreshold is the magnitude from which results render in exponent
// form instead of a long run of digits.
const exponentThreshold = 1e21

// Evaluate applies op to a and b and returns the rendered result.
// Returns types.ErrDivisionByZero when op is OpDivide and b is zero, and
// types.ErrUnknownOperator when op is not an arithmetic operator.
func Evaluate(a, b float64, op types.Operator) (string, error) {
	var result float64
	switch op {
	case types.OpAdd:
		result = a + b
	case types.OpSubtract:
		result = a - b
	case types.OpMultiply:
		result = a * b
	case types.OpDivide:
		if b == 0 {
			return "", types.ErrDivisionByZero
		}
		result = a / b
	default:
		return "", types.ErrUnknownOperator
	}
	return FormatNumber(result), nil
}

// FormatNumber rounds v to Precision decimal places and renders the shortest
// decimal string for the rounded value, so 10 renders as "10" and 0.1+0.2
// renders as "0.3".
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', Precision, 64), 64)
	if err != nil {
		rounded = v
	}
	if rounded == 0 {
		// Also folds negative zero.
		return "0"
	}
	if math.Abs(rounded) >= exponentThreshold {
		return strconv.FormatFloat(rounded, 'g', -1, 64)
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// ParseOperand converts a display string to a number. It accepts a trailing
// decimal point ("5.") and, like a lenient number reader, uses the longest
// numeric prefix of malformed text. Text with no numeric prefix is 0.
func ParseOperand(s string) float64 {
	for end := len(s); end > 0; end-- {
		v, err := strconv.ParseFloat(s[:end], 64)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			return v
		}
	}
	return 0
}

// IsOperatorToken reports whether token is one of + - * /.
func IsOperatorToken(token string) bool {
	_, ok := types.ParseOperator(token)
	return ok
}

// IsNumber reports whether s is a syntactically valid number string. Values
// too large for float64 still count as numbers.
func IsNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil || errors.Is(err, strconv.ErrRange)
}
