package island

import (
	"math"
	"strconv"

	"islandgen/internal/noise"
)

// Bounds accepted at the configuration boundary.
const (
	MinSize  = 10
	MaxSize  = 1000
	MaxScore = 2.0
)

// Params holds the generation tunables.
type Params struct {
	Size       int     `yaml:"size"`
	NoiseScale float64 `yaml:"noise_scale"`
	RadialBias float64 `yaml:"radial_bias"`
	Threshold  float64 `yaml:"threshold"`

	RoadSpacing int `yaml:"road_spacing"`
	PruneCount  int `yaml:"prune_count"`

	AreaCount       int     `yaml:"area_count"`
	RadiusThreshold float64 `yaml:"radius_threshold"`
}

// Config controls a World. A zero Seed draws fresh entropy on every reset.
type Config struct {
	Seed   int64      `yaml:"seed"`
	Noise  noise.Kind `yaml:"noise"`
	Params Params     `yaml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Noise: noise.KindPerlin,
		Params: Params{
			Size:            100,
			NoiseScale:      4,
			RadialBias:      0.7,
			Threshold:       0.1,
			RoadSpacing:     3,
			PruneCount:      0,
			AreaCount:       3,
			RadiusThreshold: 0.6,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unparseable or out-of-range values keep the default.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= MinSize && parsed <= MaxSize {
			c.Params.Size = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["noise"]; ok {
		if kind, err := noise.ParseKind(v); err == nil {
			c.Noise = kind
		}
	}
	if v, ok := cfg["noise_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 && !math.IsInf(parsed, 0) {
			c.Params.NoiseScale = parsed
		}
	}
	if v, ok := cfg["radial_bias"]; ok {
		if parsed, ok := parseScore(v); ok {
			c.Params.RadialBias = parsed
		}
	}
	if v, ok := cfg["threshold"]; ok {
		if parsed, ok := parseScore(v); ok {
			c.Params.Threshold = parsed
		}
	}
	if v, ok := cfg["road_spacing"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.Params.RoadSpacing = parsed
		}
	}
	if v, ok := cfg["prune_count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.PruneCount = parsed
		}
	}
	if v, ok := cfg["area_count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.AreaCount = parsed
		}
	}
	if v, ok := cfg["radius_threshold"]; ok {
		if parsed, ok := parseScore(v); ok {
			c.Params.RadiusThreshold = parsed
		}
	}
	return c
}

func parseScore(v string) (float64, bool) {
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil || !validScore(parsed) {
		return 0, false
	}
	return parsed, true
}

func validScore(v float64) bool {
	return !math.IsNaN(v) && v >= -MaxScore && v <= MaxScore
}

// Validate rejects out-of-range values.
func (c Config) Validate() error {
	if _, err := noise.ParseKind(string(c.Noise)); err != nil {
		return invalidf("noise: %v", err)
	}
	return c.Params.Validate()
}

// Validate checks every tunable against the configuration bounds.
func (p Params) Validate() error {
	if p.Size < MinSize || p.Size > MaxSize {
		return invalidf("size %d outside [%d, %d]", p.Size, MinSize, MaxSize)
	}
	if err := p.Terrain().Validate(); err != nil {
		return err
	}
	if err := p.Roads().Validate(); err != nil {
		return err
	}
	return p.Zones().Validate()
}

// Terrain extracts the terrain phase parameters.
func (p Params) Terrain() TerrainParams {
	return TerrainParams{
		Size:       p.Size,
		NoiseScale: p.NoiseScale,
		RadialBias: p.RadialBias,
		Threshold:  p.Threshold,
	}
}

// Roads extracts the road phase parameters.
func (p Params) Roads() RoadParams {
	return RoadParams{Spacing: p.RoadSpacing, PruneCount: p.PruneCount}
}

// Zones extracts the zone phase parameters.
func (p Params) Zones() ZoneParams {
	return ZoneParams{AreaCount: p.AreaCount, RadiusThreshold: p.RadiusThreshold}
}
