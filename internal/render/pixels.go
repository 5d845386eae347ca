package render

import (
	"image/color"

	"github.com/rejschaap/game-of-life/internal/board"
)

// Default cell colors.
var (
	AliveColor = color.RGBA{R: 112, G: 147, B: 204, A: 255}
	DeadColor  = color.RGBA{R: 38, G: 82, B: 153, A: 255}
)

// fillBoardRGBA converts the board into RGBA pixels in buf, one pixel per
// cell. buf must hold 4*width*height bytes.
func fillBoardRGBA(buf []byte, b *board.Board, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	w := b.Width()
	for y, row := range b.Rows() {
		for x, alive := range row {
			base := (y*w + x) * 4
			if alive {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
				continue
			}
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
		}
	}
}
