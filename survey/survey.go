// Package survey runs many independent seeded simulations headlessly and
// reports how each one ended up.
package survey

import (
	"context"
	"io"
	"log"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-window/display"
	"github.com/sheikhrachel/go-gol-window/driver"
	"github.com/sheikhrachel/go-gol-window/model"
	"github.com/sheikhrachel/go-gol-window/utils"
)

// DefaultGenerations is used when the config sets no generation limit
const DefaultGenerations = 500

// Result describes one finished run
type Result struct {
	Seed           int64
	Generations    int
	InitialCells   int
	FinalCells     int
	SettledAt      int
	BoundingBoxEnd int
}

// Run simulates runs boards seeded cfg.Seed, cfg.Seed+1, ... concurrently,
// each for cfg.MaxGenerations generations. Every simulation is single
// threaded; only whole runs execute in parallel.
func Run(ctx context.Context, cfg utils.Config, runs int) ([]Result, error) {
	if runs <= 0 {
		return nil, errors.Errorf("[survey.Run] run count must be positive, got %d", runs)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "[survey.Run] invalid config")
	}
	if cfg.MaxGenerations == 0 {
		cfg.MaxGenerations = DefaultGenerations
	}

	live, _ := utils.ParseColor(cfg.LiveColor)
	background, _ := utils.ParseColor(cfg.BackgroundColor)
	opts := driver.Options{
		CellSize:        1,
		FPS:             cfg.FPS,
		LiveColor:       live,
		BackgroundColor: background,
		Logger:          log.New(io.Discard, "", 0),
	}

	results := make([]Result, runs)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.NumCPU())

	for i := range runs {
		seed := cfg.Seed + int64(i)
		eg.Go(func() error {
			res, err := simulate(ctx, cfg, opts, seed)
			if err != nil {
				return errors.Wrapf(err, "[survey.Run] seed %d", seed)
			}
			results[i] = res
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func simulate(ctx context.Context, cfg utils.Config, opts driver.Options, seed int64) (Result, error) {
	grid, err := model.NewSeededGrid(cfg, seed)
	if err != nil {
		return Result{}, err
	}

	d, err := driver.New(display.NewHeadless(cfg.MaxGenerations), grid, opts)
	if err != nil {
		return Result{}, err
	}
	d.Unpaced()

	if err = d.Run(ctx); err != nil {
		return Result{}, err
	}
	if err = ctx.Err(); err != nil {
		return Result{}, errors.Wrap(err, "[survey.simulate] cancelled")
	}

	return Result{
		Seed:           seed,
		Generations:    d.Generation(),
		InitialCells:   grid.CountLivingCells(),
		FinalCells:     d.Grid().CountLivingCells(),
		SettledAt:      d.SettledAt(),
		BoundingBoxEnd: d.Grid().ActiveBounds().Size(),
	}, nil
}
