package config

import (
	"context"
	"flag"

	"islandgen/internal/noise"
)

// Flags binds command-line overrides. Only flags set explicitly on the
// command line override the loaded file.
type Flags struct {
	Path   string
	Preset string

	v     Config
	noise string
}

// NewFlags returns Flags whose defaults mirror Default.
func NewFlags() *Flags {
	f := &Flags{v: *Default()}
	f.noise = string(f.v.Generation.Noise)
	return f
}

// Bind attaches the flags to the provided FlagSet.
func (f *Flags) Bind(fs *flag.FlagSet) {
	g := &f.v.Generation
	fs.StringVar(&f.Path, "config", "", "path to a YAML config file")
	fs.StringVar(&f.Preset, "preset", "", "go-getter address of a YAML preset to fetch and load")
	fs.Int64Var(&g.Seed, "seed", g.Seed, "generation seed (0 draws entropy)")
	fs.StringVar(&f.noise, "noise", f.noise, "noise backend: perlin or simplex")
	fs.IntVar(&g.Params.Size, "size", g.Params.Size, "grid side length")
	fs.Float64Var(&g.Params.NoiseScale, "noise-scale", g.Params.NoiseScale, "noise periods across the grid")
	fs.Float64Var(&g.Params.RadialBias, "radial-bias", g.Params.RadialBias, "land score offset at the grid center")
	fs.Float64Var(&g.Params.Threshold, "threshold", g.Params.Threshold, "land score threshold")
	fs.IntVar(&g.Params.RoadSpacing, "road-spacing", g.Params.RoadSpacing, "road lattice period")
	fs.IntVar(&g.Params.PruneCount, "prune", g.Params.PruneCount, "road pruning passes")
	fs.IntVar(&g.Params.AreaCount, "areas", g.Params.AreaCount, "city-center growth passes")
	fs.Float64Var(&g.Params.RadiusThreshold, "radius-threshold", g.Params.RadiusThreshold, "city-center score threshold")
	fs.IntVar(&f.v.Display.Scale, "scale", f.v.Display.Scale, "pixel scale multiplier")
	fs.IntVar(&f.v.Display.TPS, "tps", f.v.Display.TPS, "ticks per second")
	fs.DurationVar(&f.v.Display.Reroll, "reroll", f.v.Display.Reroll, "auto-regeneration interval (0 disables)")
	fs.StringVar(&f.v.Logging.Level, "log-level", f.v.Logging.Level, "log level: debug, info, warn, error")
	fs.StringVar(&f.v.Logging.File, "log-file", f.v.Logging.File, "rotating log file path")
}

// Load resolves the configuration with priority defaults < file < flags.
// A preset, when given, is fetched and used as the file.
func (f *Flags) Load(ctx context.Context, fs *flag.FlagSet) (*Config, error) {
	path := f.Path
	if f.Preset != "" {
		fetched, err := Fetch(ctx, f.Preset, PresetDir())
		if err != nil {
			return nil, err
		}
		path = fetched
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	f.Apply(cfg, fs)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Apply copies every flag that was set on fs into cfg.
func (f *Flags) Apply(cfg *Config, fs *flag.FlagSet) {
	fs.Visit(func(fl *flag.Flag) {
		if set, ok := overrides[fl.Name]; ok {
			set(cfg, f)
		}
	})
}

var overrides = map[string]func(*Config, *Flags){
	"seed":             func(c *Config, f *Flags) { c.Generation.Seed = f.v.Generation.Seed },
	"noise":            func(c *Config, f *Flags) { c.Generation.Noise = noise.Kind(f.noise) },
	"size":             func(c *Config, f *Flags) { c.Generation.Params.Size = f.v.Generation.Params.Size },
	"noise-scale":      func(c *Config, f *Flags) { c.Generation.Params.NoiseScale = f.v.Generation.Params.NoiseScale },
	"radial-bias":      func(c *Config, f *Flags) { c.Generation.Params.RadialBias = f.v.Generation.Params.RadialBias },
	"threshold":        func(c *Config, f *Flags) { c.Generation.Params.Threshold = f.v.Generation.Params.Threshold },
	"road-spacing":     func(c *Config, f *Flags) { c.Generation.Params.RoadSpacing = f.v.Generation.Params.RoadSpacing },
	"prune":            func(c *Config, f *Flags) { c.Generation.Params.PruneCount = f.v.Generation.Params.PruneCount },
	"areas":            func(c *Config, f *Flags) { c.Generation.Params.AreaCount = f.v.Generation.Params.AreaCount },
	"radius-threshold": func(c *Config, f *Flags) { c.Generation.Params.RadiusThreshold = f.v.Generation.Params.RadiusThreshold },
	"scale":            func(c *Config, f *Flags) { c.Display.Scale = f.v.Display.Scale },
	"tps":              func(c *Config, f *Flags) { c.Display.TPS = f.v.Display.TPS },
	"reroll":           func(c *Config, f *Flags) { c.Display.Reroll = f.v.Display.Reroll },
	"log-level":        func(c *Config, f *Flags) { c.Logging.Level = f.v.Logging.Level },
	"log-file":         func(c *Config, f *Flags) { c.Logging.File = f.v.Logging.File },
}

