// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package view

import "strings"

// Group inserts thousands separators into the integer part of a display
// value: "1234567.89" becomes "1,234,567.89". Anything other than an optional
// minus sign, digits and one decimal point (the error token, exponent forms,
// "Infinity") is returned unchanged.
func Group(display string) string {
	sign, digits := "", display
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	intPart, frac, hasFrac := strings.Cut(digits, ".")
	if intPart == "" || !allDigits(intPart) || !allDigits(frac) {
		return display
	}

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}

	out := sign + b.String()
	if hasFrac {
		out += "." + frac
	}
	return out
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
