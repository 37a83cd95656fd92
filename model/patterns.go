package model

// Pattern is a rectangular cell layout, indexed [y][x]
type Pattern [][]bool

var (
	// Glider travels one cell diagonally every four generations
	Glider = Pattern{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	// Blinker is a period-2 oscillator, horizontal phase
	Blinker = Pattern{
		{true, true, true},
	}

	// Block is the smallest still life
	Block = Pattern{
		{true, true},
		{true, true},
	}
)

// Stamp copies the pattern onto the grid with its top-left corner at (startX, startY).
// Parts of the pattern that fall outside the grid are dropped.
func (g *Grid) Stamp(p Pattern, startX, startY int) {
	for y, row := range p {
		for x, cell := range row {
			g.Set(startX+x, startY+y, cell)
		}
	}
}
