package model

// Bounds is the bounding box of the living cells in a grid
type Bounds struct {
	MinX, MaxX, MinY, MaxY int
	Valid                  bool
}

// ActiveBounds calculates the bounding box of living cells.
// Valid is false when no cell is alive.
func (g *Grid) ActiveBounds() (b Bounds) {
	for y := range g.height {
		for x := range g.width {
			if !g.cells[y][x] {
				continue
			}
			if !b.Valid {
				b = Bounds{MinX: x, MaxX: x, MinY: y, MaxY: y, Valid: true}
				continue
			}
			b.MinX = min(b.MinX, x)
			b.MaxX = max(b.MaxX, x)
			b.MinY = min(b.MinY, y)
			b.MaxY = max(b.MaxY, y)
		}
	}
	return
}

// Size returns the number of cells covered by the bounding box
func (b Bounds) Size() int {
	if !b.Valid {
		return 0
	}
	return (b.MaxX - b.MinX + 1) * (b.MaxY - b.MinY + 1)
}
