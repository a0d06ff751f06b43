// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

// Token is a single discrete input event delivered to the state machine.
type Token string

// Non-digit tokens. Digits are the tokens "0" through "9" and operators are
// their symbols.
const (
	TokenDecimal   Token = "."
	TokenClear     Token = "C"
	TokenEquals    Token = "="
	TokenBackspace Token = "Backspace"
	TokenAdd       Token = "+"
	TokenSubtract  Token = "-"
	TokenMultiply  Token = "*"
	TokenDivide    Token = "/"
)

// IsDigit reports whether t is one of "0" through "9".
func (t Token) IsDigit() bool {
	return len(t) == 1 && t[0] >= '0' && t[0] <= '9'
}

// Operator returns the operator named by t. The boolean is false when t is
// not an operator token.
func (t Token) Operator() (Operator, bool) {
	return ParseOperator(string(t))
}

// Valid reports whether t is in the accepted input set.
func (t Token) Valid() bool {
	if t.IsDigit() {
		return true
	}
	if _, ok := t.Operator(); ok {
		return true
	}
	switch t {
	case TokenDecimal, TokenClear, TokenEquals, TokenBackspace:
		return true
	}
	return false
}
