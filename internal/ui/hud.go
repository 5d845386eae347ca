//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/rejschaap/game-of-life/internal/core"
)

var (
	panelColor = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	textColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
)

// HUD renders the status and controls panel to the right of the board.
type HUD struct {
	pixel *ebiten.Image
}

// NewHUD constructs a HUD.
func NewHUD() *HUD {
	h := &HUD{pixel: ebiten.NewImage(1, 1)}
	h.pixel.Fill(color.White)
	return h
}

// Draw paints the panel onto screen starting at column offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, stats *core.Stats, paused bool) {
	if h == nil {
		return
	}
	height := screen.Bounds().Dy()
	h.fillRect(screen, image.Rect(offsetX, 0, offsetX+PanelWidth, height), panelColor)

	face := basicfont.Face7x13
	for i, line := range PanelLines(stats, paused) {
		y := panelPadding + (i+1)*lineHeight - 3
		text.Draw(screen, line, face, offsetX+panelPadding, y, textColor)
	}
}

func (h *HUD) fillRect(dst *ebiten.Image, rect image.Rectangle, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(h.pixel, op)
}
