// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package view holds the presentation model shared by the calculator hosts:
// the button grid, display grouping, and a plain-text renderer.
package view

import "github.com/mesh-intelligence/abacus/pkg/types"

// Kind classifies a button for styling.
type Kind int

// Button kinds.
const (
	KindNumber Kind = iota
	KindDecimal
	KindOperator
	KindClear
	KindEquals
)

// Button is one cell of the grid.
type Button struct {
	Token   types.Token
	Label   string
	Kind    Kind
	ColSpan int
	RowSpan int
}

// Columns is the width of the grid in cells.
const Columns = 4

// Layout returns the button rows, top to bottom. Cells covered by a row span
// from an earlier row are not repeated: the "+" and "=" buttons span two
// rows, and "0" spans two columns.
func Layout() [][]Button {
	return [][]Button{
		{
			btn(types.TokenClear, "C", KindClear),
			btn(types.TokenDivide, "÷", KindOperator),
			btn(types.TokenMultiply, "×", KindOperator),
			btn(types.TokenSubtract, "-", KindOperator),
		},
		{
			btn("7", "7", KindNumber),
			btn("8", "8", KindNumber),
			btn("9", "9", KindNumber),
			{Token: types.TokenAdd, Label: "+", Kind: KindOperator, ColSpan: 1, RowSpan: 2},
		},
		{
			btn("4", "4", KindNumber),
			btn("5", "5", KindNumber),
			btn("6", "6", KindNumber),
		},
		{
			btn("1", "1", KindNumber),
			btn("2", "2", KindNumber),
			btn("3", "3", KindNumber),
			{Token: types.TokenEquals, Label: "=", Kind: KindEquals, ColSpan: 1, RowSpan: 2},
		},
		{
			{Token: "0", Label: "0", Kind: KindNumber, ColSpan: 2, RowSpan: 1},
			btn(types.TokenDecimal, ".", KindDecimal),
		},
	}
}

func btn(tok types.Token, label string, kind Kind) Button {
	return Button{Token: tok, Label: label, Kind: kind, ColSpan: 1, RowSpan: 1}
}

// Cell is a button placed on the grid.
type Cell struct {
	Button
	Row, Col int
}

// Cells places every button of Layout on the grid, resolving spans.
func Cells() []Cell {
	rows := Layout()
	taken := make([][Columns]bool, len(rows))
	var cells []Cell
	for r, row := range rows {
		c := 0
		for _, b := range row {
			for c < Columns && taken[r][c] {
				c++
			}
			cells = append(cells, Cell{Button: b, Row: r, Col: c})
			for dr := 0; dr < b.RowSpan && r+dr < len(rows); dr++ {
				for dc := 0; dc < b.ColSpan && c+dc < Columns; dc++ {
					taken[r+dr][c+dc] = true
				}
			}
			c += b.ColSpan
		}
	}
	return cells
}
