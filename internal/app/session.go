package app

import (
	"time"

	"github.com/rejschaap/game-of-life/internal/board"
	"github.com/rejschaap/game-of-life/internal/core"
)

// Session owns the live board and the control flags that frontends toggle.
// It is not safe for concurrent use.
type Session struct {
	cfg   Config
	board *board.Board
	rng   board.Source
	stats *core.Stats

	paused   bool
	stepOnce bool
	lastStep time.Time
	now      func() time.Time
}

// NewSession seeds a board according to cfg, drawing random gliders from rng.
func NewSession(cfg Config, rng board.Source) *Session {
	s := &Session{cfg: cfg, rng: rng, now: time.Now}
	s.board = Seed(cfg, rng)
	s.stats = core.NewStats(s.now())
	s.stats.Population = s.board.Population()
	s.stats.PeakPopulation = s.stats.Population
	s.lastStep = s.stats.StartTime
	return s
}

// Seed builds the initial board for cfg.
func Seed(cfg Config, rng board.Source) *board.Board {
	var b *board.Board
	switch cfg.Pattern {
	case PatternCheckered:
		b = board.Checkered(cfg.Width, cfg.Height)
	case PatternEmpty:
		b = board.Empty(cfg.Width, cfg.Height)
	default:
		b = board.WithGlider(cfg.Width, cfg.Height)
	}
	b.AddGliders(cfg.Gliders, rng)
	return b
}

// Board returns the current generation. Callers must not mutate it.
func (s *Session) Board() *board.Board { return s.board }

// Stats returns the run statistics.
func (s *Session) Stats() *core.Stats { return s.stats }

// Paused reports whether automatic stepping is suspended.
func (s *Session) Paused() bool { return s.paused }

// TogglePause flips automatic stepping.
func (s *Session) TogglePause() { s.paused = !s.paused }

// Resume clears the pause flag.
func (s *Session) Resume() { s.paused = false }

// RequestStep advances exactly one generation on the next Tick, even when
// paused.
func (s *Session) RequestStep() { s.stepOnce = true }

// Clear replaces the board with an empty one and restarts the counters.
func (s *Session) Clear() {
	s.board = board.Empty(s.cfg.Width, s.cfg.Height)
	s.stepOnce = false
	s.stats.Reset(s.now(), 0)
	s.lastStep = s.stats.StartTime
}

// Reseed rebuilds the initial pattern.
func (s *Session) Reseed() {
	s.board = Seed(s.cfg, s.rng)
	s.stepOnce = false
	s.stats.Reset(s.now(), s.board.Population())
	s.lastStep = s.stats.StartTime
}

// AddGliders scatters n gliders at random anchors.
func (s *Session) AddGliders(n int) {
	s.board.AddGliders(n, s.rng)
	s.stats.Population = s.board.Population()
}

// Paint marks the cell at (x, y) alive.
func (s *Session) Paint(x, y int) {
	s.board.SetAlive(x, y)
	s.stats.Population = s.board.Population()
}

// Toggle flips the cell at (x, y).
func (s *Session) Toggle(x, y int) {
	s.board.Toggle(x, y)
	s.stats.Population = s.board.Population()
}

// Tick advances one generation unless paused without a pending step request.
// It reports whether the board changed generation.
func (s *Session) Tick() bool {
	if s.paused && !s.stepOnce {
		return false
	}
	s.stepOnce = false
	s.board = s.board.Update()

	now := s.now()
	s.stats.Update(s.stats.Generation+1, s.board.Population(), now.Sub(s.lastStep))
	s.lastStep = now
	return true
}

// CellAt maps a point in screen units to a cell, where each cell spans
// cellW by cellH units. ok is false when the point lies outside the board.
func (s *Session) CellAt(px, py, cellW, cellH int) (x, y int, ok bool) {
	if px < 0 || py < 0 || cellW <= 0 || cellH <= 0 {
		return 0, 0, false
	}
	x, y = px/cellW, py/cellH
	if x >= s.board.Width() || y >= s.board.Height() {
		return 0, 0, false
	}
	return x, y, true
}
