// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package calc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/abacus/pkg/types"
)

// EvaluateExpression evaluates an infix expression of non-negative numbers
// and the operators + - * / strictly left to right, without precedence:
// "2+3*4" is 20. Whitespace is ignored.
//
// Returns an error wrapping types.ErrInvalidExpression when the expression
// holds other characters or a missing or malformed operand, and
// types.ErrDivisionByZero when any step divides by zero.
func EvaluateExpression(expr string) (string, error) {
	clean := strings.Join(strings.Fields(expr), "")
	if clean == "" {
		return "", fmt.Errorf("%w: empty expression", types.ErrInvalidExpression)
	}

	operands, operators, err := splitExpression(clean)
	if err != nil {
		return "", err
	}

	result, err := parseNumber(operands[0])
	if err != nil {
		return "", err
	}
	rendered := FormatNumber(result)

	for i, op := range operators {
		next, err := parseNumber(operands[i+1])
		if err != nil {
			return "", err
		}
		rendered, err = Evaluate(result, next, op)
		if err != nil {
			return "", err
		}
		result = ParseOperand(rendered)
	}
	return rendered, nil
}

// splitExpression breaks clean into alternating operands and operators.
// There is always exactly one more operand than operators.
func splitExpression(clean string) ([]string, []types.Operator, error) {
	var (
		operands  []string
		operators []types.Operator
		start     int
	)
	for i, r := range clean {
		if op, ok := types.ParseOperator(string(r)); ok {
			operands = append(operands, clean[start:i])
			operators = append(operators, op)
			start = i + 1
			continue
		}
		if r != '.' && (r < '0' || r > '9') {
			return nil, nil, fmt.Errorf("%w: unexpected character %q", types.ErrInvalidExpression, r)
		}
	}
	operands = append(operands, clean[start:])
	return operands, operators, nil
}

func parseNumber(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: missing operand", types.ErrInvalidExpression)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: malformed operand %q", types.ErrInvalidExpression, s)
	}
	return v, nil
}
