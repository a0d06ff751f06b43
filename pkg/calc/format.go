// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package calc

import (
	"strings"

	"github.com/mesh-intelligence/abacus/pkg/types"
)

// MaxDisplayWidth bounds the rendered display in characters.
const MaxDisplayWidth = 15

// FormatForDisplay normalizes a raw display string for rendering:
//
//   - leading zeros before another digit are dropped ("007" becomes "7",
//     "0.5" is kept);
//   - an empty value or one starting with a decimal point gains a leading "0";
//   - only the first decimal point is kept;
//   - the result is truncated, not rounded, to MaxDisplayWidth characters.
//
// types.ErrorToken is returned verbatim. FormatForDisplay is idempotent.
func FormatForDisplay(raw string) string {
	if raw == types.ErrorToken {
		return raw
	}

	s := raw
	for len(s) > 1 && s[0] == '0' && isDigit(s[1]) {
		s = s[1:]
	}

	if first := strings.IndexByte(s, '.'); first >= 0 {
		s = s[:first+1] + strings.ReplaceAll(s[first+1:], ".", "")
	}

	if s == "" || s[0] == '.' {
		s = "0" + s
	}

	if r := []rune(s); len(r) > MaxDisplayWidth {
		s = string(r[:MaxDisplayWidth])
	}
	return s
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
