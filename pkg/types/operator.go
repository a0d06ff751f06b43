// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

// Operator is a binary arithmetic operator. The zero value means no operator
// is pending.
type Operator int

// Supported operators.
const (
	OpNone Operator = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

// operatorSymbols maps each operator to its input symbol.
var operatorSymbols = map[Operator]string{
	OpAdd:      "+",
	OpSubtract: "-",
	OpMultiply: "*",
	OpDivide:   "/",
}

// Symbol returns the input symbol for the operator, or "" for OpNone and
// unknown values.
func (o Operator) Symbol() string {
	return operatorSymbols[o]
}

// String implements fmt.Stringer.
func (o Operator) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	default:
		return "none"
	}
}

// Valid reports whether o is one of the four arithmetic operators.
func (o Operator) Valid() bool {
	_, ok := operatorSymbols[o]
	return ok
}

// ParseOperator returns the operator for a symbol. The boolean is false when
// the symbol is not one of + - * /.
func ParseOperator(symbol string) (Operator, bool) {
	for op, s := range operatorSymbols {
		if s == symbol {
			return op, true
		}
	}
	return OpNone, false
}
