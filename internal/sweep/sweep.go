// Package sweep runs the island pipeline over a grid of terrain parameters and
// aggregates the outcome per combination.
package sweep

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"islandgen/internal/core"
	"islandgen/internal/island"
)

// Point is one terrain parameter combination.
type Point struct {
	Threshold  float64
	RadialBias float64
	NoiseScale float64
}

func (p Point) String() string {
	return fmt.Sprintf("threshold=%.2f bias=%.2f scale=%.1f", p.Threshold, p.RadialBias, p.NoiseScale)
}

// Grid lists the values to combine. An empty axis uses the base config value.
type Grid struct {
	Thresholds   []float64
	RadialBiases []float64
	NoiseScales  []float64
}

// Points expands the grid into every combination against base.
func (g Grid) Points(base island.Params) []Point {
	or := func(vs []float64, def float64) []float64 {
		if len(vs) == 0 {
			return []float64{def}
		}
		return vs
	}
	var pts []Point
	for _, th := range or(g.Thresholds, base.Threshold) {
		for _, bias := range or(g.RadialBiases, base.RadialBias) {
			for _, scale := range or(g.NoiseScales, base.NoiseScale) {
				pts = append(pts, Point{Threshold: th, RadialBias: bias, NoiseScale: scale})
			}
		}
	}
	return pts
}

// Result holds per-seed averages for one Point.
type Result struct {
	Point
	Runs      int
	LandShare float64
	SandShare float64
	Roads     float64
	Centers   float64
}

// Options controls a sweep.
type Options struct {
	Seeds   []int64
	Workers int
	Log     *zap.Logger
}

// Run generates one island per seed for every grid point. Points are
// distributed over a worker pool; each worker owns its worlds. The results are
// sorted by land share, largest first. Points whose config is invalid are
// skipped and reported in the returned error.
func Run(ctx context.Context, base island.Config, g Grid, opts Options) ([]Result, error) {
	if len(opts.Seeds) == 0 {
		return nil, fmt.Errorf("sweep: no seeds")
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	points := g.Points(base.Params)
	jobs := make(chan Point)
	type outcome struct {
		res Result
		err error
	}
	outcomes := make(chan outcome)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				res, err := runPoint(ctx, base, p, opts.Seeds)
				outcomes <- outcome{res: res, err: err}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	go func() {
		defer close(jobs)
		for _, p := range points {
			select {
			case jobs <- p:
			case <-ctx.Done():
				return
			}
		}
	}()

	var (
		all  []Result
		errs error
	)
	for o := range outcomes {
		if o.err != nil {
			errs = multierr.Append(errs, o.err)
			continue
		}
		log.Debug("point done", zap.Stringer("point", o.res.Point), zap.Float64("land_share", o.res.LandShare))
		all = append(all, o.res)
	}
	if err := ctx.Err(); err != nil {
		errs = multierr.Append(errs, err)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].LandShare != all[j].LandShare {
			return all[i].LandShare > all[j].LandShare
		}
		return all[i].Point.String() < all[j].Point.String()
	})
	return all, errs
}

func runPoint(ctx context.Context, base island.Config, p Point, seeds []int64) (Result, error) {
	cfg := base
	cfg.Params.Threshold = p.Threshold
	cfg.Params.RadialBias = p.RadialBias
	cfg.Params.NoiseScale = p.NoiseScale

	res := Result{Point: p}
	for _, seed := range seeds {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		cfg.Seed = seed
		w, err := island.New(cfg, island.WithRNG(core.NewRNG(seed)))
		if err != nil {
			return res, fmt.Errorf("%s: %w", p, err)
		}
		out, err := w.Generate()
		if err != nil {
			return res, fmt.Errorf("%s seed %d: %w", p, seed, err)
		}
		total := float64(out.Stats.Size * out.Stats.Size)
		res.LandShare += out.Stats.LandShare()
		res.SandShare += float64(out.Stats.Sand) / total
		res.Roads += float64(out.Stats.Road)
		res.Centers += float64(out.Stats.Center)
		res.Runs++
	}
	n := float64(res.Runs)
	res.LandShare /= n
	res.SandShare /= n
	res.Roads /= n
	res.Centers /= n
	return res, nil
}
