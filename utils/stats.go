package utils

import (
	"fmt"
	"time"
)

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	ActiveCells          int
	BoundingBoxSize      int
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	s.ActiveCells = population
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Caption is the one-line status shown by the display backends
func (s *Stats) Caption() string {
	return fmt.Sprintf("Game of Life | Gen: %d | Living: %d | %.1f gen/sec",
		s.TotalGenerations, s.ActiveCells, s.GenerationsPerSecond)
}

// Summary describes the whole run, for logging at exit
func (s *Stats) Summary() string {
	return fmt.Sprintf("%d generations in %.1fs, %.1f avg population",
		s.TotalGenerations, time.Since(s.StartTime).Seconds(), s.AveragePopulation)
}
