// Package driver runs the simulation loop: it advances the grid once per
// frame, draws it on a display surface and stops when the surface reports quit.
package driver

import (
	"context"
	"image/color"
	"log"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-window/display"
	"github.com/sheikhrachel/go-gol-window/model"
	"github.com/sheikhrachel/go-gol-window/utils"
)

// Options configure how the grid is drawn and paced
type Options struct {
	CellSize        int
	FPS             int
	LiveColor       color.RGBA
	BackgroundColor color.RGBA
	// Logger defaults to log.Default()
	Logger *log.Logger
}

// Driver owns the surface and the current generation. It is not safe for
// concurrent use; everything happens on the goroutine that calls Run.
type Driver struct {
	surface display.Surface
	grid    *model.Grid
	opts    Options
	logger  *log.Logger

	open       bool
	generation int
	settledAt  int
	settled    bool
	history    *model.History
	stats      *utils.Stats
	lastFrame  time.Time

	now  func() time.Time
	wait func(ctx context.Context, d time.Duration)
}

// New validates the options and returns a driver for grid. Nothing is opened yet.
func New(surface display.Surface, grid *model.Grid, opts Options) (*Driver, error) {
	if surface == nil {
		return nil, errors.New("[driver.New] nil surface")
	}
	if grid == nil {
		return nil, errors.New("[driver.New] nil grid")
	}
	if opts.CellSize <= 0 {
		return nil, errors.Errorf("[driver.New] cell size must be positive, got %d", opts.CellSize)
	}
	if opts.FPS <= 0 {
		return nil, errors.Errorf("[driver.New] fps must be positive, got %d", opts.FPS)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	d := &Driver{
		surface:   surface,
		grid:      grid,
		opts:      opts,
		logger:    logger,
		settledAt: -1,
		history:   model.NewHistory(),
		stats:     utils.NewStats(),
		now:       time.Now,
		wait:      sleepContext,
	}
	d.history.Observe(grid)
	return d, nil
}

// Grid returns the current generation
func (d *Driver) Grid() *model.Grid {
	return d.grid
}

// Generation returns the number of generations computed so far
func (d *Driver) Generation() int {
	return d.generation
}

// SettledAt returns the first generation that repeated a recent one, or -1
func (d *Driver) SettledAt() int {
	return d.settledAt
}

// Stats returns the running statistics
func (d *Driver) Stats() *utils.Stats {
	return d.stats
}

// FrameInterval is the time budget of one loop iteration
func (d *Driver) FrameInterval() time.Duration {
	return time.Second / time.Duration(d.opts.FPS)
}

// Unpaced disables frame pacing so the loop runs as fast as the surface allows
func (d *Driver) Unpaced() {
	d.wait = func(context.Context, time.Duration) {}
}

// Run opens the surface and runs the loop until a quit event arrives or ctx
// is done, in which case it closes the surface and returns nil. Any other
// failure also closes the surface and is returned.
func (d *Driver) Run(ctx context.Context) error {
	width := d.grid.GetWidth() * d.opts.CellSize
	height := d.grid.GetHeight() * d.opts.CellSize
	if err := d.surface.Open(width, height); err != nil {
		return errors.Wrap(err, "[Driver.Run] failed to open display")
	}
	d.open = true
	d.lastFrame = d.now()
	d.logger.Printf("display open: %dx%d px, %dx%d cells, %d fps",
		width, height, d.grid.GetWidth(), d.grid.GetHeight(), d.opts.FPS)

	if owner, ok := d.surface.(display.LoopOwner); ok {
		err := owner.RunLoop(d.opts.FPS, func() (bool, error) {
			if ctx.Err() != nil {
				return true, d.close()
			}
			return d.Frame()
		})
		return d.finish(err)
	}

	interval := d.FrameInterval()
	for {
		if ctx.Err() != nil {
			return d.close()
		}

		start := d.now()
		quit, err := d.Frame()
		if err != nil {
			return d.finish(err)
		}
		if quit {
			return nil
		}

		if remaining := interval - d.now().Sub(start); remaining > 0 {
			d.wait(ctx, remaining)
		}
	}
}

// Frame runs one loop iteration without pacing: poll events, advance the
// grid, draw it and present it. On a quit event the surface is closed and
// quit is true.
func (d *Driver) Frame() (quit bool, err error) {
	if !d.open {
		return false, errors.New("[Driver.Frame] display not open")
	}

	if display.HasQuit(d.surface.PollEvents()) {
		return true, d.close()
	}

	d.grid = model.Advance(d.grid)
	d.generation++

	if err = Rasterize(d.surface, d.grid, d.opts.CellSize, d.opts.LiveColor, d.opts.BackgroundColor); err != nil {
		return false, errors.Wrapf(err, "[Driver.Frame] generation %d", d.generation)
	}

	d.observe()

	if err = d.surface.Present(); err != nil {
		return false, errors.Wrapf(err, "[Driver.Frame] failed to present generation %d", d.generation)
	}
	return false, nil
}

// observe updates statistics, the caption and cycle detection for the new generation
func (d *Driver) observe() {
	now := d.now()
	d.stats.Update(d.generation, d.grid.CountLivingCells(), now.Sub(d.lastFrame))
	d.lastFrame = now

	if c, ok := d.surface.(display.Captioner); ok {
		c.SetCaption(d.stats.Caption())
	}

	stagnant, period := d.history.Observe(d.grid)
	if stagnant && !d.settled {
		if d.settledAt < 0 {
			d.settledAt = d.generation
		}
		d.logger.Printf("generation %d repeats with period %d, %d cells alive",
			d.generation, period, d.stats.ActiveCells)
	}
	d.settled = stagnant
}

// close releases the surface once
func (d *Driver) close() error {
	if !d.open {
		return nil
	}
	d.open = false
	d.logger.Printf("closing display: %s", d.stats.Summary())
	return errors.Wrap(d.surface.Close(), "[Driver.close] failed to close display")
}

// finish closes the surface after the loop ended and returns the loop error
func (d *Driver) finish(err error) error {
	if closeErr := d.close(); closeErr != nil && err == nil {
		return closeErr
	}
	return err
}

func sleepContext(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
