package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/cellanim/anim"
	"github.com/milk9111/cellanim/atlas"
)

var _ anim.Host = (*Sprite)(nil)

// Sprite is the demo's owning entity. The manager pushes the active atlas
// cell into it each tick; Draw renders that cell.
type Sprite struct {
	atlas *atlas.Atlas
	x, y  float64
	scale float64
	cell  int
}

func (s *Sprite) SetCell(index int) { s.cell = index }

func (s *Sprite) Draw(screen *ebiten.Image) {
	img := s.atlas.SubImage(s.cell)
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Scale(s.scale, s.scale)
	op.GeoM.Translate(s.x, s.y)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(img, op)
}
