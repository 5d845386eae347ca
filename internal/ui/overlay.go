//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var gridLineColor = color.RGBA{R: 20, G: 40, B: 80, A: 255}

// Overlay draws cell boundaries on top of the board. G toggles it.
type Overlay struct {
	w, h  int
	scale int
	show  bool
	pixel *ebiten.Image
}

// NewOverlay constructs a hidden overlay for a w*h board drawn at scale.
func NewOverlay(w, h, scale int) *Overlay {
	o := &Overlay{w: w, h: h, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the visibility toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.show = !o.show
	}
}

// Draw renders the grid lines onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || o.scale < 3 {
		return
	}
	width := float64(o.w * o.scale)
	height := float64(o.h * o.scale)
	for x := 1; x < o.w; x++ {
		o.line(screen, float64(x*o.scale), 0, 1, height)
	}
	for y := 1; y < o.h; y++ {
		o.line(screen, 0, float64(y*o.scale), width, 1)
	}
}

func (o *Overlay) line(dst *ebiten.Image, x, y, w, h float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(gridLineColor)
	dst.DrawImage(o.pixel, op)
}
