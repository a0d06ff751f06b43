// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package gui renders the calculator in a desktop window: a display above
// the button grid, driven by mouse clicks and the keyboard.
package gui

import (
	"errors"
	"sync/atomic"
)

// ErrUnavailable is returned by Run in builds without window support.
var ErrUnavailable = errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")

// Options configures the window.
type Options struct {
	Title string
	Scale int // window pixels per logical pixel

	// Grouping toggles thousands separators. It may be flipped while the
	// window is open, for example when the config file changes.
	Grouping *atomic.Bool
}

func (o Options) grouping() bool {
	return o.Grouping != nil && o.Grouping.Load()
}
