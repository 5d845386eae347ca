package board

// Update returns the next generation. The receiver is left untouched.
func (b *Board) Update() *Board {
	if len(b.cells) == 0 {
		panic("board: update on a board with no rows")
	}
	next := Empty(b.w, b.h)
	for y, row := range b.cells {
		for x, alive := range row {
			next.cells[y][x] = survives(alive, b.neighbors(x, y))
		}
	}
	return next
}

// neighbors counts live cells around (x, y). Each of the eight offsets is
// wrapped and counted on its own, so on boards narrower or shorter than three
// cells the same physical cell, including (x, y) itself, may be counted more
// than once.
func (b *Board) neighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := b.wrap(x+dx, y+dy)
			if b.cells[ny][nx] {
				n++
			}
		}
	}
	return n
}

// survives applies B3/S23.
func survives(alive bool, neighbors int) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}
