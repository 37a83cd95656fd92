package utils

import (
	"encoding/hex"
	"encoding/json"
	"image/color"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Seed modes
const (
	SeedRandom   = "random"
	SeedNoise    = "noise"
	SeedPatterns = "patterns"
)

// Config holds the startup parameters of a simulation run
type Config struct {
	Width           int     `json:"width"`
	Height          int     `json:"height"`
	CellSize        int     `json:"cell_size"`
	FPS             int     `json:"fps"`
	Seed            int64   `json:"seed"`
	SeedMode        string  `json:"seed_mode"`
	NoiseScale      float64 `json:"noise_scale"`
	Backend         string  `json:"backend"`
	MaxGenerations  int     `json:"max_generations"`
	LiveColor       string  `json:"live_color"`
	BackgroundColor string  `json:"background_color"`
	LogFile         string  `json:"log_file"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:           200,
		Height:          100,
		CellSize:        10,
		FPS:             20,
		SeedMode:        SeedRandom,
		NoiseScale:      0.1,
		Backend:         "ebiten",
		LiveColor:       "#ff9b00",
		BackgroundColor: "#ffffff",
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate rejects configurations that cannot start a simulation
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("[Validate] grid dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.CellSize <= 0 {
		return errors.Errorf("[Validate] cell size must be positive, got %d", c.CellSize)
	}
	if c.FPS <= 0 {
		return errors.Errorf("[Validate] fps must be positive, got %d", c.FPS)
	}
	if c.MaxGenerations < 0 {
		return errors.Errorf("[Validate] max generations must not be negative, got %d", c.MaxGenerations)
	}
	switch c.SeedMode {
	case SeedRandom, SeedNoise, SeedPatterns:
	default:
		return errors.Errorf("[Validate] unknown seed mode %q", c.SeedMode)
	}
	if _, err := ParseColor(c.LiveColor); err != nil {
		return errors.Wrap(err, "[Validate] live_color")
	}
	if _, err := ParseColor(c.BackgroundColor); err != nil {
		return errors.Wrap(err, "[Validate] background_color")
	}
	return nil
}

// FrameInterval is the time budget of one frame
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// ResolvedSeed returns the configured seed, or a time based one when unset
func (c Config) ResolvedSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// ParseColor parses a "#rrggbb" string into an opaque color
func ParseColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, errors.Errorf("[ParseColor] want #rrggbb, got %q", s)
	}
	rgb, err := hex.DecodeString(s[1:])
	if err != nil {
		return color.RGBA{}, errors.Wrapf(err, "[ParseColor] invalid hex color %q", s)
	}
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}, nil
}
