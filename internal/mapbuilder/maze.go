package mapbuilder

import (
	"shadoblade/internal/gamemap"
	"shadoblade/internal/rng"
)

// Maze carves a perfect maze with a recursive backtracker.
type Maze struct{}

type mazeCell struct {
	walls   [4]bool // top, right, bottom, left
	visited bool
}

func (Maze) Build(r *rng.RNG, b *BuildData) {
	m := b.Map
	cols, rows := m.Width/2-2, m.Height/2-2
	if cols < 1 || rows < 1 {
		return
	}
	cells := make([]mazeCell, cols*rows)
	for i := range cells {
		cells[i].walls = [4]bool{true, true, true, true}
	}
	at := func(c, row int) int {
		if c < 0 || row < 0 || c >= cols || row >= rows {
			return -1
		}
		return row*cols + c
	}

	stack := []int{0}
	cells[0].visited = true
	steps := 0
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		c, row := cur%cols, cur/cols
		var options []int
		for _, n := range [4]int{at(c, row-1), at(c+1, row), at(c, row+1), at(c-1, row)} {
			if n >= 0 && !cells[n].visited {
				options = append(options, n)
			}
		}
		if len(options) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		next := options[0]
		if len(options) > 1 {
			next = options[r.RollDice(1, len(options))-1]
		}
		nc, nr := next%cols, next/cols
		switch {
		case nc == c+1:
			cells[cur].walls[1], cells[next].walls[3] = false, false
		case nc == c-1:
			cells[cur].walls[3], cells[next].walls[1] = false, false
		case nr == row+1:
			cells[cur].walls[2], cells[next].walls[0] = false, false
		default:
			cells[cur].walls[0], cells[next].walls[2] = false, false
		}
		cells[next].visited = true
		stack = append(stack, next)

		steps++
		if steps%10 == 0 {
			copyMaze(m, cells, cols)
			b.TakeSnapshot()
		}
	}
	copyMaze(m, cells, cols)
	b.TakeSnapshot()
}

func copyMaze(m *gamemap.Map, cells []mazeCell, cols int) {
	fillWalls(m)
	for i, cell := range cells {
		x := (i%cols)*2 + 1
		y := (i/cols)*2 + 1
		m.Set(x, y, gamemap.Floor)
		if !cell.walls[1] {
			m.Set(x+1, y, gamemap.Floor)
		}
		if !cell.walls[2] {
			m.Set(x, y+1, gamemap.Floor)
		}
	}
}
