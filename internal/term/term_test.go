package term

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/rejschaap/game-of-life/internal/app"
	"github.com/rejschaap/game-of-life/internal/core"
	"github.com/rejschaap/game-of-life/internal/ui"
)

func newTestFrontend(t *testing.T, pattern string) (*Frontend, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 12)

	cfg := *app.NewConfig()
	cfg.Width = 8
	cfg.Height = 6
	cfg.Pattern = pattern
	return New(screen, app.NewSession(cfg, core.NewRNG(3))), screen
}

func background(t *testing.T, s tcell.Screen, x, y int) tcell.Color {
	t.Helper()
	_, _, style, _ := s.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func TestDrawBoardAndFooter(t *testing.T) {
	f, screen := newTestFrontend(t, app.PatternGlider)
	f.draw()

	_, aliveBg, _ := aliveStyle.Decompose()
	_, deadBg, _ := deadStyle.Decompose()

	// glider anchored at (1,1) has (2,1) alive and (1,1) dead
	for c := 0; c < cellColumns; c++ {
		if got := background(t, screen, 2*cellColumns+c, 1); got != aliveBg {
			t.Fatalf("column %d of cell (2,1) background %v, expected alive", c, got)
		}
		if got := background(t, screen, 1*cellColumns+c, 1); got != deadBg {
			t.Fatalf("column %d of cell (1,1) background %v, expected dead", c, got)
		}
	}

	status := ui.StatusLine(f.session.Stats(), false)
	for i, want := range status {
		if r, _, _, _ := screen.GetContent(i, 6); r != want {
			t.Fatalf("status column %d = %q, expected %q", i, r, want)
		}
	}
	help := ui.HelpLine()
	width, _ := screen.Size()
	if len(help) > width {
		t.Fatalf("help line is %d columns, screen has %d", len(help), width)
	}
	for i, want := range help {
		if r, _, _, _ := screen.GetContent(i, 7); r != want {
			t.Fatalf("help column %d = %q, expected %q", i, r, want)
		}
	}
}

func TestHandleKeys(t *testing.T) {
	f, _ := newTestFrontend(t, app.PatternGlider)

	if f.handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)) {
		t.Fatal("space must not quit")
	}
	if !f.session.Paused() {
		t.Fatal("space should pause")
	}
	f.handle(tcell.NewEventKey(tcell.KeyEnter, '\r', tcell.ModNone))
	if f.session.Paused() {
		t.Fatal("enter should resume")
	}
	f.handle(tcell.NewEventKey(tcell.KeyEnter, '\r', tcell.ModNone))
	if f.session.Paused() {
		t.Fatal("enter must not pause a running session")
	}
	f.handle(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone))
	if f.session.Board().Population() != 0 {
		t.Fatal("backspace should clear the board")
	}
	f.handle(tcell.NewEventKey(tcell.KeyRune, '3', tcell.ModNone))
	if f.session.Board().Population() == 0 {
		t.Fatal("digit should add gliders")
	}
	if !f.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape should quit")
	}
}

func TestHandleMouse(t *testing.T) {
	f, _ := newTestFrontend(t, app.PatternEmpty)

	f.handle(tcell.NewEventMouse(5, 2, tcell.Button1, tcell.ModNone))
	f.handle(tcell.NewEventMouse(7, 2, tcell.Button1, tcell.ModNone))
	f.handle(tcell.NewEventMouse(7, 2, tcell.ButtonNone, tcell.ModNone))
	b := f.session.Board()
	if !b.IsAlive(2, 2) || !b.IsAlive(3, 2) || b.Population() != 2 {
		t.Fatal("dragging with the left button should paint the cells under the cursor")
	}

	f.handle(tcell.NewEventMouse(0, 0, tcell.Button2, tcell.ModNone))
	f.handle(tcell.NewEventMouse(0, 0, tcell.Button2, tcell.ModNone))
	if !f.session.Board().IsAlive(0, 0) {
		t.Fatal("holding the right button should toggle once")
	}

	f.handle(tcell.NewEventMouse(70, 2, tcell.Button1, tcell.ModNone))
	if f.session.Board().Population() != 3 {
		t.Fatal("clicks outside the board must be ignored")
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	f, screen := newTestFrontend(t, app.PatternGlider)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- f.Run(context.Background(), time.Millisecond) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run returned %v, expected nil on quit", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop after quit key")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	f, _ := newTestFrontend(t, app.PatternGlider)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- f.Run(ctx, 5*time.Millisecond) }()
	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run returned %v, expected nil on cancel", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop after cancel")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.session.Stats().Generation == 0 {
		t.Fatal("expected the ticker to advance at least one generation")
	}
}
