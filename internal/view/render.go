// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/mesh-intelligence/abacus/pkg/types"
)

// cellWidth is the text width of one grid column, brackets included.
const cellWidth = 6

// Options controls text rendering.
type Options struct {
	Grouping bool // insert thousands separators
	NoGrid   bool // render the display line only
}

// DisplayText returns the string a view shows for snap.
func DisplayText(snap types.Snapshot, opts Options) string {
	if snap.Errored || !opts.Grouping {
		return snap.Display
	}
	return Group(snap.Display)
}

// Render writes the display box and, unless opts.NoGrid is set, the button
// grid. The left edge of the display shows the pending operator, or "!" when
// the snapshot is errored.
func Render(w io.Writer, snap types.Snapshot, opts Options) error {
	inner := Columns*cellWidth - 2
	marker := snap.Pending
	if snap.Errored {
		marker = "!"
	}
	if marker == "" {
		marker = " "
	}

	border := "+" + strings.Repeat("-", inner) + "+"
	text := DisplayText(snap, opts)
	line := fmt.Sprintf("|%s%*s|", marker, inner-1, text)

	var b strings.Builder
	b.WriteString(border + "\n")
	b.WriteString(line + "\n")
	b.WriteString(border + "\n")
	if !opts.NoGrid {
		writeGrid(&b)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeGrid(b *strings.Builder) {
	rows := len(Layout())
	cells := Cells()
	for r := 0; r < rows; r++ {
		for c := 0; c < Columns; {
			cell, ok := cellAt(cells, r, c)
			if !ok {
				b.WriteString(strings.Repeat(" ", cellWidth))
				c++
				continue
			}
			label := ""
			if cell.Row == r {
				label = cell.Label
			}
			width := cell.ColSpan*cellWidth - 2
			fmt.Fprintf(b, "[%s]", center(label, width))
			c += cell.ColSpan
		}
		b.WriteString("\n")
	}
}

// cellAt returns the cell covering grid position (r, c).
func cellAt(cells []Cell, r, c int) (Cell, bool) {
	for _, cell := range cells {
		if r >= cell.Row && r < cell.Row+cell.RowSpan && c == cell.Col {
			return cell, true
		}
	}
	return Cell{}, false
}

func center(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}
