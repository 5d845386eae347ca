package ui

import (
	"fmt"
	"strings"

	"github.com/rejschaap/game-of-life/internal/core"
)

type control struct {
	key, action string
	windowOnly  bool
}

var controls = []control{
	{key: "space", action: "pause"},
	{key: "enter", action: "resume"},
	{key: "n", action: "step"},
	{key: "0-9", action: "gliders"},
	{key: "bksp", action: "clear"},
	{key: "r", action: "reseed"},
	{key: "g", action: "grid", windowOnly: true},
	{key: "q", action: "quit"},
}

// StatusLine summarises the run for the terminal footer.
func StatusLine(s *core.Stats, paused bool) string {
	return fmt.Sprintf("gen %d | pop %d (peak %d, avg %.1f) | %.1f gen/s | %s",
		s.Generation, s.Population, s.PeakPopulation, s.AveragePopulation, s.GenerationsPerSecond, runState(paused))
}

// HelpLine lists the keyboard controls available in the terminal.
func HelpLine() string {
	parts := make([]string, 0, len(controls))
	for _, c := range controls {
		if !c.windowOnly {
			parts = append(parts, c.key+" "+c.action)
		}
	}
	return strings.Join(parts, "  ")
}

func runState(paused bool) string {
	if paused {
		return "paused"
	}
	return "running"
}
