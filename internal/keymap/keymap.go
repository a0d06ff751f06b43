// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package keymap translates keyboard key names into calculator tokens.
// Key names follow the DOM KeyboardEvent.key convention used by most GUI
// toolkits: printable keys are their character, special keys are named
// ("Enter", "Escape", "Backspace").
package keymap

import "github.com/mesh-intelligence/abacus/pkg/types"

// Named special keys.
const (
	KeyEnter     = "Enter"
	KeyEscape    = "Escape"
	KeyBackspace = "Backspace"
)

// Binding pairs the keys that produce a token.
type Binding struct {
	Token types.Token
	Keys  []string
}

var bindings = []Binding{
	{Token: "0", Keys: []string{"0"}},
	{Token: "1", Keys: []string{"1"}},
	{Token: "2", Keys: []string{"2"}},
	{Token: "3", Keys: []string{"3"}},
	{Token: "4", Keys: []string{"4"}},
	{Token: "5", Keys: []string{"5"}},
	{Token: "6", Keys: []string{"6"}},
	{Token: "7", Keys: []string{"7"}},
	{Token: "8", Keys: []string{"8"}},
	{Token: "9", Keys: []string{"9"}},
	{Token: types.TokenDecimal, Keys: []string{"."}},
	{Token: types.TokenAdd, Keys: []string{"+"}},
	{Token: types.TokenSubtract, Keys: []string{"-"}},
	{Token: types.TokenMultiply, Keys: []string{"*"}},
	{Token: types.TokenDivide, Keys: []string{"/"}},
	{Token: types.TokenEquals, Keys: []string{KeyEnter, "="}},
	{Token: types.TokenClear, Keys: []string{KeyEscape, "c", "C"}},
	{Token: types.TokenBackspace, Keys: []string{KeyBackspace}},
}

var byKey = func() map[string]types.Token {
	m := make(map[string]types.Token)
	for _, b := range bindings {
		for _, k := range b.Keys {
			m[k] = b.Token
		}
	}
	return m
}()

// Lookup returns the token bound to key. The boolean is false for unbound
// keys, which the host must leave to its default handling.
func Lookup(key string) (types.Token, bool) {
	tok, ok := byKey[key]
	return tok, ok
}

// Bindings returns every binding in display order. The slice is a copy.
func Bindings() []Binding {
	out := make([]Binding, len(bindings))
	for i, b := range bindings {
		out[i] = Binding{Token: b.Token, Keys: append([]string(nil), b.Keys...)}
	}
	return out
}
