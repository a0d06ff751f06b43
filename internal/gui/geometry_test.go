// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package gui

import (
	"image"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/abacus/internal/view"
	"github.com/mesh-intelligence/abacus/pkg/types"
)

func TestScreenSize(t *testing.T) {
	w, h := screenSize()
	assert.Equal(t, 220, w)
	assert.Equal(t, 256, h)
}

func TestHitTest(t *testing.T) {
	cells := view.Cells()

	tests := []struct {
		name   string
		x, y   int
		want   types.Token
		wantOK bool
	}{
		{"clear", 10, 54, types.TokenClear, true},
		{"seven", 30, 110, "7", true},
		{"plus upper half", 170, 100, types.TokenAdd, true},
		{"plus lower half", 170, 150, types.TokenAdd, true},
		{"equals lower half", 170, 240, types.TokenEquals, true},
		{"wide zero right side", 100, 230, "0", true},
		{"decimal", 120, 230, types.TokenDecimal, true},
		{"display area", 20, 20, "", false},
		{"column gap", 57, 60, "", false},
		{"outside", 500, 500, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := hitTest(cells, tt.x, tt.y)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCellsFitScreen(t *testing.T) {
	w, h := screenSize()
	screen := image.Rect(0, 0, w, h)
	d := displayRect()
	for _, c := range view.Cells() {
		r := cellRect(c)
		assert.True(t, r.In(screen), "%s outside screen", c.Label)
		assert.False(t, r.Overlaps(d), "%s overlaps display", c.Label)
	}
}

func TestAsciiLabel(t *testing.T) {
	assert.Equal(t, "/", asciiLabel("÷"))
	assert.Equal(t, "*", asciiLabel("×"))
	assert.Equal(t, "7", asciiLabel("7"))
}

func TestTextOrigin(t *testing.T) {
	p := textOrigin(image.Rect(0, 0, 48, 36), 1)
	assert.Equal(t, image.Pt(21, 10), p)
}

func TestOptionsGrouping(t *testing.T) {
	assert.False(t, Options{}.grouping())

	var on atomic.Bool
	opts := Options{Grouping: &on}
	assert.False(t, opts.grouping())
	on.Store(true)
	assert.True(t, opts.grouping())
}
