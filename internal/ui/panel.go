package ui

import (
	"fmt"

	"github.com/rejschaap/game-of-life/internal/core"
)

// PanelWidth is the width in pixels of the side panel drawn to the right of
// the board in the window.
const PanelWidth = 180

const (
	panelPadding = 6
	lineHeight   = 14
	// advance of basicfont.Face7x13
	glyphWidth = 7
)

// PanelLines returns the status and help text shown in the side panel, one
// entry per line.
func PanelLines(s *core.Stats, paused bool) []string {
	lines := []string{
		fmt.Sprintf("generation %d", s.Generation),
		fmt.Sprintf("population %d", s.Population),
		fmt.Sprintf("peak %d  avg %.1f", s.PeakPopulation, s.AveragePopulation),
		fmt.Sprintf("%.1f gen/s  %s", s.GenerationsPerSecond, runState(paused)),
		"",
	}
	for _, c := range controls {
		lines = append(lines, fmt.Sprintf("%-6s %s", c.key, c.action))
	}
	return lines
}

// PanelHeight returns the pixels needed to show n lines of panel text.
func PanelHeight(n int) int {
	return 2*panelPadding + n*lineHeight
}

// WindowSize returns the logical window size for a board drawn boardW by
// boardH pixels with the panel beside it. The window grows taller than the
// board when the panel text needs more room.
func WindowSize(boardW, boardH int) (int, int) {
	n := len(PanelLines(&core.Stats{}, false))
	return boardW + PanelWidth, max(boardH, PanelHeight(n))
}
