package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"

	"github.com/rejschaap/game-of-life/internal/survey"
)

func main() {
	logger := log.New(os.Stderr, "life-survey: ", log.LstdFlags)

	fs := flag.CommandLine
	steps := fs.Int("steps", 500, "generations to simulate per seed")
	seedCount := fs.Int("seeds", 16, "number of consecutive seeds to run")
	firstSeed := fs.Int64("first-seed", 1, "first seed of the range")
	workers := fs.Int("workers", runtime.NumCPU(), "boards simulated in parallel")

	cfg := survey.NewConfig()
	if err := cfg.Load(fs, os.Args[1:]); err != nil {
		logger.Fatal(err)
	}
	if cfg.Gliders == 0 {
		logger.Printf("gliders=0: the seed only places random gliders, so every seed runs the same board")
	}
	if *seedCount <= 0 || *steps < 0 {
		logger.Fatalf("seeds must be positive and steps non-negative, got %d and %d", *seedCount, *steps)
	}

	seeds := make([]int64, *seedCount)
	for i := range seeds {
		seeds[i] = *firstSeed + int64(i)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Printf("board %dx%d pattern=%s gliders=%d steps=%d workers=%d",
		cfg.Width, cfg.Height, cfg.Pattern, cfg.Gliders, *steps, *workers)
	results, err := survey.Run(ctx, *cfg, seeds, *steps, *workers)
	if err != nil {
		logger.Fatal(err)
	}

	extinct := 0
	for _, r := range results {
		still := "-"
		if r.StillAt >= 0 {
			still = fmt.Sprint(r.StillAt)
		}
		if r.Extinct() {
			extinct++
		}
		fmt.Printf("seed %d: population %d (peak %d) after %d generations, still at %s\n",
			r.Seed, r.Population, r.PeakPopulation, r.Generations, still)
	}
	fmt.Printf("\nmean population %.2f, extinct %d/%d\n", survey.MeanPopulation(results), extinct, len(results))
}
