package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

// Grid is one generation of the game board.
//
// Dimensions are fixed at construction and every cell starts out dead. Once a
// grid has been handed to Advance it is treated as a read-only snapshot; Set
// is only meant for building seeds and fixtures.
type Grid struct {
	width  int
	height int
	cells  [][]bool
}

// NewGrid creates a new grid with the specified dimensions, all cells dead
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("[NewGrid] invalid grid dimensions %dx%d", width, height)
	}
	return newGrid(width, height), nil
}

// newGrid allocates without validating; callers guarantee positive dimensions
func newGrid(width, height int) *Grid {
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// GetWidth returns the width of the grid in cells
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid in cells
func (g *Grid) GetHeight() int {
	return g.height
}

// InBounds reports whether (x, y) is a valid cell coordinate
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Set sets a cell to alive (true) or dead (false). Out-of-range coordinates are ignored.
func (g *Grid) Set(x, y int, alive bool) {
	if g.InBounds(x, y) {
		g.cells[y][x] = alive
	}
}

// Get returns the state of a cell. Out-of-range coordinates read as dead
// without touching the cell buffer.
func (g *Grid) Get(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[y][x]
}

// CountLiveNeighbors counts living cells among the 8 neighbors of (x, y).
// Neighbors beyond the grid edge are absent: edges do not wrap.
func (g *Grid) CountLiveNeighbors(x, y int) int {
	count := 0

	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if g.cells[ny][nx] {
				count++
			}
		}
	}

	return count
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}

// Equal reports whether both grids have the same dimensions and cell states
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	c := newGrid(g.width, g.height)
	for y := range g.height {
		copy(c.cells[y], g.cells[y])
	}
	return c
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	row := make([]byte, g.width)
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				row[x] = 1
			} else {
				row[x] = 0
			}
		}
		h.Write(row)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
