// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package gui

import (
	"image"
	"image/color"

	"github.com/mesh-intelligence/abacus/internal/view"
	"github.com/mesh-intelligence/abacus/pkg/types"
)

// Logical pixel geometry.
const (
	cellW    = 48
	cellH    = 36
	gap      = 4
	margin   = 8
	displayH = 40

	// Glyph size of the debug font used for labels.
	glyphW = 6
	glyphH = 16
)

// Palette.
var (
	colorBackground = color.RGBA{0xf5, 0xf5, 0xf5, 0xff}
	colorDisplay    = color.RGBA{0x1e, 0x1e, 0x1e, 0xff}
	colorError      = color.RGBA{0xb0, 0x30, 0x30, 0xff}
	colorNumber     = color.RGBA{0x5a, 0x5a, 0x5a, 0xff}
	colorOperator   = color.RGBA{0xff, 0x95, 0x00, 0xff}
	colorClear      = color.RGBA{0xd4, 0x3f, 0x3a, 0xff}
	colorEquals     = color.RGBA{0x34, 0xa8, 0x53, 0xff}
	colorPressed    = color.RGBA{0xcc, 0xcc, 0xcc, 0xff}
)

// screenSize returns the logical screen size.
func screenSize() (w, h int) {
	rows := len(view.Layout())
	w = 2*margin + view.Columns*cellW + (view.Columns-1)*gap
	h = 2*margin + displayH + gap + rows*cellH + (rows-1)*gap
	return w, h
}

// displayRect returns the display area.
func displayRect() image.Rectangle {
	w, _ := screenSize()
	return image.Rect(margin, margin, w-margin, margin+displayH)
}

// cellRect returns the area covered by c, spans included.
func cellRect(c view.Cell) image.Rectangle {
	top := margin + displayH + gap
	x0 := margin + c.Col*(cellW+gap)
	y0 := top + c.Row*(cellH+gap)
	x1 := x0 + c.ColSpan*cellW + (c.ColSpan-1)*gap
	y1 := y0 + c.RowSpan*cellH + (c.RowSpan-1)*gap
	return image.Rect(x0, y0, x1, y1)
}

// hitTest returns the token of the button under logical point (x, y).
func hitTest(cells []view.Cell, x, y int) (types.Token, bool) {
	p := image.Pt(x, y)
	for _, c := range cells {
		if p.In(cellRect(c)) {
			return c.Token, true
		}
	}
	return "", false
}

// buttonColor returns the fill for a button kind.
func buttonColor(k view.Kind) color.Color {
	switch k {
	case view.KindOperator:
		return colorOperator
	case view.KindClear:
		return colorClear
	case view.KindEquals:
		return colorEquals
	default:
		return colorNumber
	}
}

// asciiLabel replaces labels the debug font cannot draw.
func asciiLabel(label string) string {
	switch label {
	case "÷":
		return "/"
	case "×":
		return "*"
	}
	return label
}

// textOrigin returns the top-left point that centers text of n glyphs in r.
func textOrigin(r image.Rectangle, n int) image.Point {
	return image.Pt(
		r.Min.X+(r.Dx()-n*glyphW)/2,
		r.Min.Y+(r.Dy()-glyphH)/2,
	)
}
