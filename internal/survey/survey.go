// Package survey runs many independently seeded boards without a frontend
// and reports how each one ended up.
package survey

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rejschaap/game-of-life/internal/app"
	"github.com/rejschaap/game-of-life/internal/core"
)

// DefaultGliders is the number of random gliders a survey seeds when none is
// configured. The seed only affects random gliders, so a survey without any
// runs the same board for every seed.
const DefaultGliders = 8

// NewConfig returns the app defaults with DefaultGliders random gliders.
func NewConfig() *app.Config {
	cfg := app.NewConfig()
	cfg.Gliders = DefaultGliders
	return cfg
}

// Result summarises one seeded run.
type Result struct {
	Seed           int64
	Generations    int
	Population     int
	PeakPopulation int
	// StillAt is the first generation equal to its successor, or -1.
	StillAt int
}

// Extinct reports whether no cell survived.
func (r Result) Extinct() bool { return r.Population == 0 }

// Run simulates cfg once per seed for up to steps generations using at most
// workers goroutines. Each board is owned by a single goroutine. Results keep
// the order of seeds.
func Run(ctx context.Context, cfg app.Config, seeds []int64, steps, workers int) ([]Result, error) {
	results := make([]Result, len(seeds))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, seed := range seeds {
		g.Go(func() error {
			r, err := simulate(ctx, cfg, seed, steps)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func simulate(ctx context.Context, cfg app.Config, seed int64, steps int) (Result, error) {
	b := app.Seed(cfg, core.NewRNG(seed))
	stats := core.NewStats(time.Time{})
	stats.Reset(time.Time{}, b.Population())
	r := Result{Seed: seed, StillAt: -1}

	for gen := 0; gen < steps; gen++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		next := b.Update()
		stats.Update(gen+1, next.Population(), 0)
		if next.Equal(b) {
			r.StillAt = gen
			b = next
			break
		}
		b = next
	}
	r.Generations = stats.Generation
	r.Population = b.Population()
	r.PeakPopulation = stats.PeakPopulation
	return r, nil
}

// MeanPopulation averages the final population over results.
func MeanPopulation(results []Result) float64 {
	if len(results) == 0 {
		return 0
	}
	total := 0
	for _, r := range results {
		total += r.Population
	}
	return float64(total) / float64(len(results))
}
