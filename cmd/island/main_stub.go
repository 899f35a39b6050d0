//go:build !ebiten

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"islandgen/internal/config"
	"islandgen/internal/island"
	"islandgen/internal/logger"
	"islandgen/internal/render"
)

// The headless build generates one island and prints it as text.
func main() {
	flags := config.NewFlags()
	flags.Bind(flag.CommandLine)
	save := flag.String("save", "", "write the resolved config to this path")
	quiet := flag.Bool("q", false, "print stats only")
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

	if *save != "" {
		if err := cfg.SaveTo(*save); err != nil {
			logger.Log.Fatal("save config", zap.String("path", *save), zap.Error(err))
		}
	}

	world, err := island.New(cfg.Generation, island.WithLogger(logger.Named("island")))
	if err != nil {
		logger.Log.Fatal("configure island", zap.Error(err))
	}
	res, err := world.Generate()
	if err != nil {
		logger.Log.Fatal("generate island", zap.Error(err))
	}

	if !*quiet {
		if err := render.WriteText(os.Stdout, world.Cells(), res.Terrain.Size, island.Glyphs); err != nil {
			logger.Log.Fatal("write map", zap.Error(err))
		}
		fmt.Println()
	}
	for _, line := range res.Stats.Lines() {
		fmt.Println(line)
	}
	fmt.Fprintln(os.Stderr, "The interactive viewer requires the ebiten build tag: go run -tags ebiten ./cmd/island")
}
