//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/rejschaap/game-of-life/internal/app"
	"github.com/rejschaap/game-of-life/internal/core"
	"github.com/rejschaap/game-of-life/internal/ui"
)

func main() {
	logger := log.New(os.Stderr, "life: ", log.LstdFlags)

	cfg, err := app.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		logger.Fatal(err)
	}
	if cfg.Seed == 0 {
		if cfg.Seed, err = core.NewSeed(); err != nil {
			logger.Fatal(err)
		}
	}
	logger.Printf("board %dx%d pattern=%s gliders=%d seed=%d tps=%d",
		cfg.Width, cfg.Height, cfg.Pattern, cfg.Gliders, cfg.Seed, cfg.TPS)

	session := app.NewSession(*cfg, core.NewRNG(cfg.Seed))
	game := app.New(session, cfg.Scale, cfg.TPS)

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetWindowSize(ui.WindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal(err)
	}
}
