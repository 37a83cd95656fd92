package model

import (
	"math/rand"

	perlin "github.com/aquilax/go-perlin"

	"github.com/sheikhrachel/go-gol-window/utils"
)

// Rand is the random source used for seeding. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Int63() int64
}

const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3

	// DefaultNoiseScale maps one cell to this many noise units
	DefaultNoiseScale = 0.1
)

// Randomize sets each cell independently alive or dead with an unbiased coin flip.
// The result depends only on rng, so a seeded source reproduces the same board.
func Randomize(g *Grid, rng Rand) {
	for y := range g.height {
		for x := range g.width {
			g.cells[y][x] = rng.Intn(2) == 1
		}
	}
}

// SeedNoise fills the grid from 2D Perlin noise thresholded at zero, which
// gives clustered populations with roughly half of the cells alive.
func SeedNoise(g *Grid, rng Rand, scale float64) {
	if scale <= 0 {
		scale = DefaultNoiseScale
	}
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, rng.Int63())
	for y := range g.height {
		for x := range g.width {
			g.cells[y][x] = p.Noise2D(float64(x)*scale, float64(y)*scale) > 0
		}
	}
}

// SeedPatterns randomizes the grid and then stamps gliders and blinkers on top
func SeedPatterns(g *Grid, rng Rand) {
	Randomize(g, rng)

	if g.width < 10 || g.height < 10 {
		return
	}

	g.Stamp(Glider, 5, 5)
	if g.width >= 20 && g.height >= 15 {
		g.Stamp(Glider, g.width-8, 5)
	}

	g.Stamp(Blinker, g.width/4, g.height/4)
	if g.width >= 30 {
		g.Stamp(Blinker, 3*g.width/4, 3*g.height/4)
	}
}

// NewSeededGrid builds a grid from the config's dimensions and seeds it
// according to the config's seed mode using a source seeded with seed.
func NewSeededGrid(config utils.Config, seed int64) (*Grid, error) {
	g, err := NewGrid(config.Width, config.Height)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	switch config.SeedMode {
	case utils.SeedNoise:
		SeedNoise(g, rng, config.NoiseScale)
	case utils.SeedPatterns:
		SeedPatterns(g, rng)
	default:
		Randomize(g, rng)
	}
	return g, nil
}
