package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/rejschaap/game-of-life/internal/app"
	"github.com/rejschaap/game-of-life/internal/core"
	"github.com/rejschaap/game-of-life/internal/term"
)

func main() {
	logger := log.New(os.Stderr, "life-term: ", log.LstdFlags)

	cfg, err := app.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		logger.Fatal(err)
	}
	if cfg.Seed == 0 {
		if cfg.Seed, err = core.NewSeed(); err != nil {
			logger.Fatal(err)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		logger.Fatalf("init screen: %v", err)
	}
	screen.EnableMouse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := app.NewSession(*cfg, core.NewRNG(cfg.Seed))
	interval := time.Second / time.Duration(cfg.TPS)
	err = term.New(screen, session).Run(ctx, interval)
	screen.Fini()
	if err != nil {
		logger.Fatal(err)
	}

	stats := session.Stats()
	logger.Printf("stopped after %d generations, population %d (peak %d), seed %d",
		stats.Generation, stats.Population, stats.PeakPopulation, cfg.Seed)
}
