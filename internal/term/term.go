// Package term runs a session in a terminal using tcell. Each cell is drawn
// two columns wide; the status and help lines sit below the board.
package term

import (
	"context"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/rejschaap/game-of-life/internal/app"
	"github.com/rejschaap/game-of-life/internal/render"
	"github.com/rejschaap/game-of-life/internal/ui"
)

// ErrQuit is returned internally when the user asks to exit.
var ErrQuit = errors.New("quit")

const cellColumns = 2

var (
	aliveStyle  = tcell.StyleDefault.Background(tcell.FromImageColor(render.AliveColor))
	deadStyle   = tcell.StyleDefault.Background(tcell.FromImageColor(render.DeadColor))
	footerStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// Frontend binds a session to an initialised screen.
type Frontend struct {
	screen  tcell.Screen
	session *app.Session

	mu          sync.Mutex
	lastButtons tcell.ButtonMask
}

// New returns a Frontend. The caller owns the screen lifecycle.
func New(screen tcell.Screen, session *app.Session) *Frontend {
	return &Frontend{screen: screen, session: session}
}

// Run polls input and advances one generation per interval until the user
// quits or ctx is cancelled. A user quit returns nil.
func (f *Frontend) Run(ctx context.Context, interval time.Duration) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return f.pollInput(ctx)
	})
	g.Go(func() error {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				// wake the input loop blocked in PollEvent
				_ = f.screen.PostEvent(tcell.NewEventInterrupt(nil))
				return ctx.Err()
			case <-ticker.C:
				f.mu.Lock()
				if f.session.Tick() {
					f.draw()
				}
				f.mu.Unlock()
			}
		}
	})

	f.mu.Lock()
	f.draw()
	f.mu.Unlock()

	err := g.Wait()
	if errors.Is(err, ErrQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (f *Frontend) pollInput(ctx context.Context) error {
	for {
		ev := f.screen.PollEvent()
		if ev == nil {
			// screen finalised underneath us
			return ErrQuit
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		f.mu.Lock()
		quit := f.handle(ev)
		f.draw()
		f.mu.Unlock()
		if quit {
			return ErrQuit
		}
	}
}

// handle applies one event to the session and reports whether to quit.
func (f *Frontend) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		f.screen.Sync()
	case *tcell.EventKey:
		c, ok := keyCommand(ev)
		if ok {
			return f.session.Apply(c)
		}
	case *tcell.EventMouse:
		f.handleMouse(ev)
	}
	return false
}

func keyCommand(ev *tcell.EventKey) (app.Command, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return app.Command{Kind: app.CommandQuit}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return app.Command{Kind: app.CommandClear}, true
	case tcell.KeyEnter:
		return app.Command{Kind: app.CommandResume}, true
	case tcell.KeyRune:
		return app.RuneCommand(ev.Rune())
	}
	return app.Command{}, false
}

func (f *Frontend) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons &^ f.lastButtons
	f.lastButtons = buttons

	mx, my := ev.Position()
	x, y, ok := f.session.CellAt(mx, my, cellColumns, 1)
	if !ok {
		return
	}
	if buttons&tcell.Button1 != 0 {
		f.session.Paint(x, y)
	}
	if pressed&tcell.Button2 != 0 {
		f.session.Toggle(x, y)
	}
}

// draw renders the board and footer. Callers hold f.mu.
func (f *Frontend) draw() {
	f.screen.Clear()
	b := f.session.Board()
	for y, row := range b.Rows() {
		for x, alive := range row {
			style := deadStyle
			if alive {
				style = aliveStyle
			}
			for c := 0; c < cellColumns; c++ {
				f.screen.SetContent(x*cellColumns+c, y, ' ', nil, style)
			}
		}
	}
	drawText(f.screen, 0, b.Height(), ui.StatusLine(f.session.Stats(), f.session.Paused()))
	drawText(f.screen, 0, b.Height()+1, ui.HelpLine())
	f.screen.Show()
}

func drawText(s tcell.Screen, x, y int, text string) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, footerStyle)
	}
}
