package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-window/display"
	"github.com/sheikhrachel/go-gol-window/driver"
	"github.com/sheikhrachel/go-gol-window/model"
	"github.com/sheikhrachel/go-gol-window/survey"
	"github.com/sheikhrachel/go-gol-window/utils"
)

const windowTitle = "Game of Life"

// loadConfig reads the config file, falling back to defaults when it does not exist
func loadConfig(path string) (utils.Config, error) {
	config, err := utils.LoadConfig(path)
	if err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			log.Printf("Using default configuration (%s not found)", path)
			return utils.DefaultConfig(), nil
		}
		return config, err
	}
	return config, nil
}

// setupLogging points the standard logger at the configured log file. The
// terminal backend owns stdout and stderr, so without a file it logs nowhere.
func setupLogging(config utils.Config) (func(), error) {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if config.LogFile == "" {
		if config.Backend == "terminal" {
			log.SetOutput(io.Discard)
		}
		return func() {}, nil
	}

	f, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "[setupLogging] failed to open log file: %+v", config.LogFile)
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}

// initializeGame seeds the grid and builds the driver for the configured backend
func initializeGame(config utils.Config) (*driver.Driver, error) {
	seed := config.ResolvedSeed()
	grid, err := model.NewSeededGrid(config, seed)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to create grid")
	}

	surface, err := display.New(config.Backend, display.Options{
		Title:     windowTitle,
		MaxFrames: config.MaxGenerations,
	})
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to create display")
	}

	cellSize := config.CellSize
	if config.Backend == "terminal" {
		// one terminal row per cell
		cellSize = 1
	}

	live, _ := utils.ParseColor(config.LiveColor)
	background, _ := utils.ParseColor(config.BackgroundColor)

	log.Printf("seed %d, mode %s", seed, config.SeedMode)
	return driver.New(surface, grid, driver.Options{
		CellSize:        cellSize,
		FPS:             config.FPS,
		LiveColor:       live,
		BackgroundColor: background,
	})
}

// displayGameInfo logs the initial game information
func displayGameInfo(config utils.Config, game *driver.Driver) {
	grid := game.Grid()
	log.Printf("Backend: %s | Grid: %dx%d | Initial living cells: %d",
		config.Backend, grid.GetWidth(), grid.GetHeight(), grid.CountLivingCells())
	log.Printf("Close the window or press Esc/Q to exit")
}

// runSurvey runs headless simulations and prints one line per seed
func runSurvey(ctx context.Context, config utils.Config, runs int, out io.Writer) error {
	config.Seed = config.ResolvedSeed()
	results, err := survey.Run(ctx, config, runs)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tGENERATIONS\tINITIAL\tFINAL\tSETTLED AT\tBOUNDING BOX")
	for _, r := range results {
		settled := "-"
		if r.SettledAt >= 0 {
			settled = fmt.Sprint(r.SettledAt)
		}
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%s\t%d\n",
			r.Seed, r.Generations, r.InitialCells, r.FinalCells, settled, r.BoundingBoxEnd)
	}
	return w.Flush()
}
