package model

import "github.com/sheikhrachel/go-gol-window/rules"

// Advance computes the next generation of g.
//
// Every neighbor count is taken from g and the result is written to a freshly
// allocated grid of the same dimensions, so g is never modified and the same
// input always yields the same output.
func Advance(g *Grid) *Grid {
	next := newGrid(g.width, g.height)
	for y := range g.height {
		for x := range g.width {
			next.cells[y][x] = rules.ApplyConwayRules(g.CountLiveNeighbors(x, y), g.cells[y][x])
		}
	}
	return next
}
