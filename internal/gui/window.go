// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build cgo

package gui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/mesh-intelligence/abacus/internal/keymap"
	"github.com/mesh-intelligence/abacus/internal/session"
	"github.com/mesh-intelligence/abacus/internal/view"
	"github.com/mesh-intelligence/abacus/pkg/types"
)

// namedKeys maps non-character keys to key names.
var namedKeys = []struct {
	key  ebiten.Key
	name string
}{
	{ebiten.KeyEnter, keymap.KeyEnter},
	{ebiten.KeyNumpadEnter, keymap.KeyEnter},
	{ebiten.KeyEscape, keymap.KeyEscape},
	{ebiten.KeyBackspace, keymap.KeyBackspace},
}

// pressFrames is how long a clicked button stays highlighted.
const pressFrames = 6

// Run opens the calculator window and blocks until it is closed.
func Run(sess *session.Session, opts Options) error {
	if opts.Scale < 1 {
		opts.Scale = 1
	}
	if opts.Title == "" {
		opts.Title = "abacus"
	}

	g := &game{sess: sess, opts: opts, cells: view.Cells()}
	w, h := screenSize()
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(w*opts.Scale, h*opts.Scale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type game struct {
	sess  *session.Session
	opts  Options
	cells []view.Cell

	pressed      types.Token
	pressedTicks int
	chars        []rune
}

func (g *game) Update() error {
	if g.pressedTicks > 0 {
		g.pressedTicks--
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if tok, ok := hitTest(g.cells, x, y); ok {
			g.sess.Press(tok)
			g.pressed, g.pressedTicks = tok, pressFrames
		}
	}

	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, r := range g.chars {
		g.sess.Key(string(r))
	}
	for _, k := range namedKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			g.sess.Key(k.name)
		}
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	snap := g.sess.Snapshot()
	d := displayRect()
	bg := colorDisplay
	if snap.Errored {
		bg = colorError
	}
	fillRect(screen, d, bg)

	text := view.DisplayText(snap, view.Options{Grouping: g.opts.grouping()})
	x := d.Max.X - gap - len(text)*glyphW
	ebitenutil.DebugPrintAt(screen, text, x, d.Min.Y+(d.Dy()-glyphH)/2)
	if snap.Pending != "" {
		ebitenutil.DebugPrintAt(screen, snap.Pending, d.Min.X+gap, d.Min.Y+gap)
	}

	for _, c := range g.cells {
		r := cellRect(c)
		fill := buttonColor(c.Kind)
		if g.pressedTicks > 0 && c.Token == g.pressed {
			fill = colorPressed
		}
		fillRect(screen, r, fill)

		label := asciiLabel(c.Label)
		p := textOrigin(r, len(label))
		ebitenutil.DebugPrintAt(screen, label, p.X, p.Y)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenSize()
}

func fillRect(dst *ebiten.Image, r image.Rectangle, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
}
