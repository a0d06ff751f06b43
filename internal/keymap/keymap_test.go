// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/abacus/pkg/types"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		key    string
		want   types.Token
		wantOK bool
	}{
		{key: "0", want: "0", wantOK: true},
		{key: "9", want: "9", wantOK: true},
		{key: ".", want: types.TokenDecimal, wantOK: true},
		{key: "+", want: types.TokenAdd, wantOK: true},
		{key: "-", want: types.TokenSubtract, wantOK: true},
		{key: "*", want: types.TokenMultiply, wantOK: true},
		{key: "/", want: types.TokenDivide, wantOK: true},
		{key: "Enter", want: types.TokenEquals, wantOK: true},
		{key: "=", want: types.TokenEquals, wantOK: true},
		{key: "Escape", want: types.TokenClear, wantOK: true},
		{key: "c", want: types.TokenClear, wantOK: true},
		{key: "C", want: types.TokenClear, wantOK: true},
		{key: "Backspace", want: types.TokenBackspace, wantOK: true},
		{key: "a", wantOK: false},
		{key: "Delete", wantOK: false},
		{key: "Tab", wantOK: false},
		{key: "x", wantOK: false},
		{key: "", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := Lookup(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBindings(t *testing.T) {
	all := Bindings()
	assert.Len(t, all, 18)

	for _, b := range all {
		assert.True(t, b.Token.Valid(), "binding for invalid token %q", b.Token)
		for _, k := range b.Keys {
			tok, ok := Lookup(k)
			assert.True(t, ok, k)
			assert.Equal(t, b.Token, tok, k)
		}
	}

	// Mutating the copy must not affect later lookups.
	all[0].Keys[0] = "z"
	_, ok := Lookup("z")
	assert.False(t, ok)
}
