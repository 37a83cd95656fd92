package driver

import (
	"image"
	"image/color"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-window/display"
	"github.com/sheikhrachel/go-gol-window/model"
)

// CellRect returns the pixel block covered by cell (x, y)
func CellRect(x, y, cellSize int) image.Rectangle {
	return image.Rect(x*cellSize, y*cellSize, (x+1)*cellSize, (y+1)*cellSize)
}

// Rasterize draws every cell of g as a cellSize square, live cells in live
// and dead cells in background.
func Rasterize(s display.Surface, g *model.Grid, cellSize int, live, background color.RGBA) error {
	for y := range g.GetHeight() {
		for x := range g.GetWidth() {
			c := background
			if g.Get(x, y) {
				c = live
			}
			if err := s.FillRect(CellRect(x, y, cellSize), c); err != nil {
				return errors.Wrapf(err, "[Rasterize] failed to draw cell (%d, %d)", x, y)
			}
		}
	}
	return nil
}
