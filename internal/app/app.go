//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/rejschaap/game-of-life/internal/core"
	"github.com/rejschaap/game-of-life/internal/render"
	"github.com/rejschaap/game-of-life/internal/ui"
)

var digitKeys = [10]ebiten.Key{
	ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	timer   *core.FixedStep

	scale int
	keys  []ebiten.Key
}

// New constructs a Game drawing each cell scale pixels wide and advancing
// tps generations per second.
func New(session *Session, scale, tps int) *Game {
	b := session.Board()
	return &Game{
		session: session,
		painter: render.NewGridPainter(b.Width(), b.Height()),
		overlay: ui.NewOverlay(b.Width(), b.Height(), scale),
		hud:     ui.NewHUD(),
		timer:   core.NewFixedStep(tps),
		scale:   scale,
	}
}

// Update handles per-frame input and advances the simulation when due.
func (g *Game) Update() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		c, ok := keyCommand(k)
		if !ok {
			continue
		}
		if g.session.Apply(c) {
			return ebiten.Termination
		}
	}
	g.overlay.Update()
	g.handleMouse()

	// paused sessions only advance on an explicit step request
	if g.timer.ShouldStep() || g.session.Paused() {
		g.session.Tick()
	}
	return nil
}

func (g *Game) handleMouse() {
	px, py := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if x, y, ok := g.session.CellAt(px, py, g.scale, g.scale); ok {
			g.session.Paint(x, y)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		if x, y, ok := g.session.CellAt(px, py, g.scale, g.scale); ok {
			g.session.Toggle(x, y)
		}
	}
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Board(), g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.session.Board().Width()*g.scale, g.session.Stats(), g.session.Paused())
}

// Layout returns the logical screen size: the board plus the side panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.session.Board()
	return ui.WindowSize(b.Width()*g.scale, b.Height()*g.scale)
}

func keyCommand(k ebiten.Key) (Command, bool) {
	for n, dk := range digitKeys {
		if k == dk {
			return Command{Kind: CommandGliders, N: n}, true
		}
	}
	switch k {
	case ebiten.KeyEscape:
		return Command{Kind: CommandQuit}, true
	case ebiten.KeyBackspace:
		return Command{Kind: CommandClear}, true
	case ebiten.KeyEnter:
		return Command{Kind: CommandResume}, true
	case ebiten.KeySpace:
		return RuneCommand(' ')
	case ebiten.KeyN:
		return RuneCommand('n')
	case ebiten.KeyR:
		return RuneCommand('r')
	case ebiten.KeyQ:
		return RuneCommand('q')
	}
	return Command{}, false
}
