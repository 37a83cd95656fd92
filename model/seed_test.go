package model

import (
	"math/rand"
	"testing"

	"github.com/sheikhrachel/go-gol-window/utils"
)

func TestRandomizeDistribution(t *testing.T) {
	g := mustGrid(t, 100, 100)
	Randomize(g, rand.New(rand.NewSource(1)))

	fraction := float64(g.CountLivingCells()) / 10000
	if fraction < 0.45 || fraction > 0.55 {
		t.Fatalf("live fraction %.3f, want close to 0.5", fraction)
	}
}

func TestRandomizeReproducible(t *testing.T) {
	a := mustGrid(t, 30, 20)
	b := mustGrid(t, 30, 20)
	Randomize(a, rand.New(rand.NewSource(99)))
	Randomize(b, rand.New(rand.NewSource(99)))
	if !a.Equal(b) {
		t.Fatal("same seed produced different boards")
	}

	c := mustGrid(t, 30, 20)
	Randomize(c, rand.New(rand.NewSource(100)))
	if a.Equal(c) {
		t.Fatal("different seeds produced identical boards")
	}
}

// scriptedRand replays a fixed sequence of coin flips
type scriptedRand struct {
	flips []int
	i     int
}

func (r *scriptedRand) Intn(int) int {
	v := r.flips[r.i%len(r.flips)]
	r.i++
	return v
}

func (r *scriptedRand) Int63() int64 { return 0 }

func TestRandomizeUsesOneFlipPerCellRowMajor(t *testing.T) {
	g := mustGrid(t, 3, 2)
	Randomize(g, &scriptedRand{flips: []int{1, 0, 0, 0, 1, 1}})

	want := [][]bool{
		{true, false, false},
		{false, true, true},
	}
	for y, row := range want {
		for x, alive := range row {
			if g.Get(x, y) != alive {
				t.Errorf("cell (%d, %d) = %v, want %v", x, y, g.Get(x, y), alive)
			}
		}
	}
}

func TestSeedNoise(t *testing.T) {
	a := mustGrid(t, 200, 100)
	b := mustGrid(t, 200, 100)
	SeedNoise(a, rand.New(rand.NewSource(5)), DefaultNoiseScale)
	SeedNoise(b, rand.New(rand.NewSource(5)), 0)
	if !a.Equal(b) {
		t.Fatal("noise seeding is not reproducible")
	}

	n := a.CountLivingCells()
	if n == 0 || n == 200*100 {
		t.Fatalf("noise seeding produced a uniform board (%d alive)", n)
	}
}

func TestSeedPatternsStampsGliders(t *testing.T) {
	g := mustGrid(t, 40, 30)
	SeedPatterns(g, &scriptedRand{flips: []int{0}})

	// background is all dead, so only the stamped patterns remain
	want := 5*2 + 3*2
	if n := g.CountLivingCells(); n != want {
		t.Fatalf("living cells = %d, want %d", n, want)
	}
	if !g.Get(6, 5) || !g.Get(7, 6) || !g.Get(5, 7) {
		t.Fatal("first glider missing")
	}
}

func TestNewSeededGrid(t *testing.T) {
	config := utils.DefaultConfig()
	config.Width, config.Height = 24, 12

	for _, mode := range []string{utils.SeedRandom, utils.SeedNoise, utils.SeedPatterns} {
		config.SeedMode = mode
		a, err := NewSeededGrid(config, 11)
		if err != nil {
			t.Fatalf("%s: %v", mode, err)
		}
		b, _ := NewSeededGrid(config, 11)
		if !a.Equal(b) {
			t.Errorf("%s: same seed produced different boards", mode)
		}
		if a.GetWidth() != 24 || a.GetHeight() != 12 {
			t.Errorf("%s: dimensions %dx%d", mode, a.GetWidth(), a.GetHeight())
		}
	}

	config.Width = 0
	if _, err := NewSeededGrid(config, 1); err == nil {
		t.Fatal("zero width accepted")
	}
}
