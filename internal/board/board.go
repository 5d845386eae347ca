// Package board implements Conway's Game of Life on a toroidal grid.
//
// Reads are strict and panic on coordinates outside the grid. Writes wrap
// every coordinate so patterns can be placed across the edges without bounds
// checks at the call site.
package board

import (
	"fmt"
	"iter"
	"slices"
)

// Source yields random integers in [0, n). *math/rand/v2.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// glider lists the live offsets of a glider relative to its anchor.
var glider = [5][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}

// Board stores one generation of cells in row-major order.
type Board struct {
	w, h  int
	cells [][]bool
}

// Empty returns a board with every cell dead.
func Empty(w, h int) *Board {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("board: invalid dimensions %dx%d", w, h))
	}
	cells := make([][]bool, h)
	for y := range cells {
		cells[y] = make([]bool, w)
	}
	return &Board{w: w, h: h, cells: cells}
}

// Checkered returns a board where (x, y) is alive iff x+y is even.
func Checkered(w, h int) *Board {
	b := Empty(w, h)
	for y, row := range b.cells {
		for x := range row {
			row[x] = (x+y)%2 == 0
		}
	}
	return b
}

// WithGlider returns an empty board with a single glider anchored at (1, 1).
func WithGlider(w, h int) *Board {
	b := Empty(w, h)
	b.AddGlider(1, 1)
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.w }

// Height returns the number of rows.
func (b *Board) Height() int { return b.h }

// IsAlive reports the state of the cell at exact coordinates.
func (b *Board) IsAlive(x, y int) bool {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		panic(fmt.Sprintf("board: cell (%d,%d) out of range %dx%d", x, y, b.w, b.h))
	}
	return b.cells[y][x]
}

// Rows yields each row top to bottom. Rows are copies; mutating them does not
// affect the board.
func (b *Board) Rows() iter.Seq2[int, []bool] {
	return func(yield func(int, []bool) bool) {
		for y, row := range b.cells {
			if !yield(y, slices.Clone(row)) {
				return
			}
		}
	}
}

// Population returns the number of live cells.
func (b *Board) Population() int {
	n := 0
	for _, row := range b.cells {
		for _, alive := range row {
			if alive {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([][]bool, b.h)
	for y, row := range b.cells {
		cells[y] = slices.Clone(row)
	}
	return &Board{w: b.w, h: b.h, cells: cells}
}

// Equal reports whether both boards have the same size and live cells.
func (b *Board) Equal(o *Board) bool {
	if b.w != o.w || b.h != o.h {
		return false
	}
	for y := range b.cells {
		if !slices.Equal(b.cells[y], o.cells[y]) {
			return false
		}
	}
	return true
}

// wrap maps any coordinate pair onto the torus.
func (b *Board) wrap(x, y int) (int, int) {
	x = (x%b.w + b.w) % b.w
	y = (y%b.h + b.h) % b.h
	return x, y
}

// SetAlive marks a cell alive. Coordinates wrap.
func (b *Board) SetAlive(x, y int) {
	x, y = b.wrap(x, y)
	b.cells[y][x] = true
}

// Toggle flips a cell. Coordinates wrap.
func (b *Board) Toggle(x, y int) {
	x, y = b.wrap(x, y)
	b.cells[y][x] = !b.cells[y][x]
}

// AddGlider stamps a glider with its bounding box anchored at (x, y).
func (b *Board) AddGlider(x, y int) {
	for _, off := range glider {
		b.SetAlive(x+off[0], y+off[1])
	}
}

// AddGliders stamps count gliders at anchors drawn from src.
func (b *Board) AddGliders(count int, src Source) {
	for i := 0; i < count; i++ {
		x := src.IntN(b.w)
		y := src.IntN(b.h)
		b.AddGlider(x, y)
	}
}
