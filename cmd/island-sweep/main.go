package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"islandgen/internal/config"
	"islandgen/internal/logger"
	"islandgen/internal/sweep"
)

func main() {
	flags := config.NewFlags()
	flags.Bind(flag.CommandLine)
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	runs := flag.Int("runs", 4, "seeds per parameter combination")
	top := flag.Int("top", 20, "combinations to print (0 prints all)")
	thresholds := flag.String("thresholds", "-0.1,0,0.1,0.2,0.3", "comma-separated land thresholds")
	biases := flag.String("biases", "0.5,0.6,0.7,0.8,0.9", "comma-separated radial biases")
	scales := flag.String("scales", "2,4,6", "comma-separated noise scales")
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

	grid := sweep.Grid{
		Thresholds:   mustFloats("thresholds", *thresholds),
		RadialBiases: mustFloats("biases", *biases),
		NoiseScales:  mustFloats("scales", *scales),
	}
	base := cfg.Generation.Seed
	if base == 0 {
		base = time.Now().UnixNano()
	}
	seeds := make([]int64, max(*runs, 1))
	for i := range seeds {
		seeds[i] = base + int64(i)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	points := len(grid.Points(cfg.Generation.Params))
	fmt.Printf("Sweeping %d combinations x %d seeds (%d workers, size %d)\n",
		points, len(seeds), *workers, cfg.Generation.Params.Size)

	start := time.Now()
	results, err := sweep.Run(ctx, cfg.Generation, grid, sweep.Options{
		Seeds:   seeds,
		Workers: *workers,
		Log:     logger.Named("sweep"),
	})
	if err != nil {
		logger.Log.Warn("sweep finished with errors", zap.Error(err))
	}

	fmt.Printf("%-40s %8s %8s %8s %8s\n", "combination", "land%", "sand%", "roads", "centers")
	for i, r := range results {
		if *top > 0 && i >= *top {
			break
		}
		fmt.Printf("%-40s %8.1f %8.1f %8.1f %8.1f\n", r.Point, 100*r.LandShare, 100*r.SandShare, r.Roads, r.Centers)
	}
	fmt.Printf("Sweep complete in %s\n", time.Since(start).Round(time.Millisecond))
}

func mustFloats(name, list string) []float64 {
	var out []float64
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "-%s: %v\n", name, err)
			os.Exit(2)
		}
		out = append(out, v)
	}
	return out
}
