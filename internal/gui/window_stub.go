// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build !cgo

package gui

import "github.com/mesh-intelligence/abacus/internal/session"

// Run reports ErrUnavailable: this build has no window support.
func Run(_ *session.Session, _ Options) error {
	return ErrUnavailable
}
