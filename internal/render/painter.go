//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/rejschaap/game-of-life/internal/board"
)

// GridPainter uploads board generations into a single image, one pixel per
// cell, and draws it scaled.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte

	On, Off color.Color
}

// NewGridPainter allocates a painter for a w*h board.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), On: AliveColor, Off: DeadColor}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit draws b onto dst with each cell scale pixels wide.
func (gp *GridPainter) Blit(dst *ebiten.Image, b *board.Board, scale int) {
	if b.Width() != gp.w || b.Height() != gp.h {
		return
	}
	fillBoardRGBA(gp.buf, b, gp.On, gp.Off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
