package island

import (
	"go.uber.org/zap"

	"islandgen/internal/core"
	"islandgen/internal/noise"
)

// World is a generation session. It owns the model, the noise field, the
// uniform random source and the logger; nothing else mutates the model.
// A World is not safe for concurrent use, and slices returned by Cells are
// only stable until the next phase call.
type World struct {
	cfg   Config
	model *Model
	noise noise.Source
	rng   *core.RNG
	log   *zap.Logger

	newNoise NoiseFactory
}

// Option customises a World.
type Option func(*World)

// WithRNG injects the uniform random source. The default noise backend draws
// its seeds from the same source, so one seeded RNG reproduces a whole world.
func WithRNG(r *core.RNG) Option {
	return func(w *World) {
		if r != nil {
			w.rng = r
		}
	}
}

// NoiseFactory builds a noise source drawing its seeds from the world's RNG.
type NoiseFactory func(seeds noise.Seeder) noise.Source

// WithNoise replaces the configured noise backend. The factory receives the
// world's RNG, so Reset(seed) reseeds the injected source as well.
func WithNoise(f NoiseFactory) Option {
	return func(w *World) {
		if f != nil {
			w.newNoise = f
		}
	}
}

// WithLogger attaches a logger for phase summaries.
func WithLogger(l *zap.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.log = l
		}
	}
}

// New validates cfg and returns a World with no terrain yet.
func New(cfg Config, opts ...Option) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := &World{cfg: cfg, log: zap.NewNop()}
	for _, opt := range opts {
		opt(w)
	}
	if w.rng == nil {
		if cfg.Seed != 0 {
			w.rng = core.NewRNG(cfg.Seed)
		} else {
			w.rng = core.NewEntropyRNG()
		}
	}
	if w.newNoise != nil {
		w.noise = w.newNoise(w.rng)
	}
	if w.noise == nil {
		src, err := noise.New(cfg.Noise, w.rng)
		if err != nil {
			return nil, invalidf("noise: %v", err)
		}
		w.noise = src
	}
	return w, nil
}

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// HasTerrain reports whether GenerateTerrain has run.
func (w *World) HasTerrain() bool { return w.model != nil }

// GenerateTerrain discards any previous grid and classifies a fresh one.
func (w *World) GenerateTerrain(p TerrainParams) (GridSnapshot, error) {
	if err := p.Validate(); err != nil {
		return GridSnapshot{}, err
	}
	w.model = classifyTerrain(w.noise, p)
	w.log.Debug("terrain generated",
		zap.Int("size", p.Size),
		zap.Int("island", len(w.model.island)),
		zap.Int("sand", len(w.model.sand)))
	return w.terrainSnapshot(), nil
}

// CarveRoads rebuilds the road network on the current terrain.
func (w *World) CarveRoads(p RoadParams) (RoadSnapshot, error) {
	if err := p.Validate(); err != nil {
		return RoadSnapshot{}, err
	}
	if w.model == nil {
		return RoadSnapshot{}, ErrNoTerrain
	}
	rep := carveRoads(w.model, w.rng, p)
	w.log.Debug("roads carved",
		zap.Int("spacing", p.Spacing),
		zap.Int("carved", rep.carved),
		zap.Int("pruned", rep.pruned),
		zap.Int("stubs", rep.stubs),
		zap.Int("roads", len(w.model.roads)))
	return w.roadSnapshot(), nil
}

// PlaceCenters regrows the city-center zones and returns a copy of the grid.
func (w *World) PlaceCenters(p ZoneParams) ([]Tile, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if w.model == nil {
		return nil, ErrNoTerrain
	}
	placed := placeCenters(w.model, w.noise, w.rng, p)
	w.log.Debug("centers placed",
		zap.Int("areas", p.AreaCount),
		zap.Int("centers", placed))
	return w.model.tiles(), nil
}

// Result bundles the output of a full pipeline run.
type Result struct {
	Terrain GridSnapshot
	Roads   RoadSnapshot
	Tiles   []Tile
	Stats   Stats
}

// Generate runs terrain, roads and zones with the configured parameters.
func (w *World) Generate() (Result, error) {
	var res Result
	p := w.cfg.Params
	if err := p.Validate(); err != nil {
		return res, err
	}
	var err error
	if res.Terrain, err = w.GenerateTerrain(p.Terrain()); err != nil {
		return res, err
	}
	if res.Roads, err = w.CarveRoads(p.Roads()); err != nil {
		return res, err
	}
	if res.Tiles, err = w.PlaceCenters(p.Zones()); err != nil {
		return res, err
	}
	res.Stats = w.model.stats()
	w.log.Info("island generated", zap.Object("stats", res.Stats))
	return res, nil
}

// Relayout re-carves roads and re-places centers on the current terrain.
func (w *World) Relayout() error {
	if _, err := w.CarveRoads(w.cfg.Params.Roads()); err != nil {
		return err
	}
	_, err := w.PlaceCenters(w.cfg.Params.Zones())
	return err
}

// TileAt returns the tile at (x, y); ok is false outside the grid or before
// terrain exists.
func (w *World) TileAt(x, y int) (Tile, bool) {
	if w.model == nil {
		return Sea, false
	}
	return w.model.TileAt(x, y)
}

// Neighbors8 lists the in-grid Moore neighbours of (x, y).
func (w *World) Neighbors8(x, y int) []Neighbor {
	if w.model == nil {
		return nil
	}
	return w.model.Neighbors8(x, y)
}

// Island returns a copy of the interior-land index set.
func (w *World) Island() []core.Point { return w.points(func(m *Model) []core.Point { return m.island }) }

// Sand returns a copy of the coastal index set.
func (w *World) Sand() []core.Point { return w.points(func(m *Model) []core.Point { return m.sand }) }

// Roads returns a copy of the road index set.
func (w *World) Roads() []core.Point { return w.points(func(m *Model) []core.Point { return m.roads }) }

// Stats scans the grid and counts tiles.
func (w *World) Stats() Stats {
	if w.model == nil {
		return Stats{}
	}
	return w.model.stats()
}

func (w *World) points(sel func(*Model) []core.Point) []core.Point {
	if w.model == nil {
		return nil
	}
	return clonePoints(sel(w.model))
}

func (w *World) terrainSnapshot() GridSnapshot {
	return GridSnapshot{
		Size:   w.model.size,
		Tiles:  w.model.tiles(),
		Island: clonePoints(w.model.island),
		Sand:   clonePoints(w.model.sand),
	}
}

func (w *World) roadSnapshot() RoadSnapshot {
	return RoadSnapshot{
		Size:  w.model.size,
		Tiles: w.model.tiles(),
		Roads: clonePoints(w.model.roads),
	}
}
