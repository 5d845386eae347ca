package core

import "time"

// Stats tracks run statistics for the status line.
type Stats struct {
	Generation           int
	Population           int
	PeakPopulation       int
	AveragePopulation    float64
	GenerationsPerSecond float64
	StartTime            time.Time

	samples int
}

// NewStats returns Stats with the clock started at now.
func NewStats(now time.Time) *Stats {
	return &Stats{StartTime: now}
}

// Update records a generation that took duration to reach.
func (s *Stats) Update(generation, population int, duration time.Duration) {
	s.Generation = generation
	s.Population = population
	s.PeakPopulation = max(s.PeakPopulation, population)
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// exponential moving average seeded by the first sample
	s.samples++
	if s.samples == 1 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Reset clears the counters after the board is replaced.
func (s *Stats) Reset(now time.Time, population int) {
	*s = Stats{StartTime: now, Population: population, PeakPopulation: population}
}
