//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"islandgen/internal/app"
	"islandgen/internal/config"
	"islandgen/internal/island"
	"islandgen/internal/logger"
)

func main() {
	flags := config.NewFlags()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Load(context.Background(), flag.CommandLine)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logger.Sync()

	world, err := island.New(cfg.Generation, island.WithLogger(logger.Named("island")))
	if err != nil {
		logger.Log.Fatal("configure island", zap.Error(err))
	}
	game := app.New(world, cfg.Display, logger.Named("app"))
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("islandgen")
	ebiten.SetTPS(cfg.Display.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Log.Fatal("run viewer", zap.Error(err))
	}
}
