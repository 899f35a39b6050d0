package island

import (
	"go.uber.org/zap"

	"islandgen/internal/core"
)

var _ core.Sim = (*World)(nil)

// Name returns the generator identifier.
func (w *World) Name() string { return "island" }

// Size reports the grid dimensions, falling back to the configured size
// before any terrain exists.
func (w *World) Size() core.Size {
	n := w.cfg.Params.Size
	if w.model != nil {
		n = w.model.size
	}
	return core.Size{W: n, H: n}
}

// Cells exposes the live tile buffer, one Tile value per byte in row-major
// order. Callers must treat it as read-only.
func (w *World) Cells() []uint8 {
	if w.model == nil {
		n := w.cfg.Params.Size
		return make([]uint8, n*n)
	}
	return w.model.grid.Cells()
}

// Reset reseeds the random source, and with it the noise seeded from it, then
// runs the full pipeline. A zero seed falls back to the configured seed, and a
// zero configured seed draws fresh entropy.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	if effective == 0 {
		effective = core.NewEntropyRNG().Int64()
	}
	w.rng.Seed(effective)
	if _, err := w.Generate(); err != nil {
		w.log.Error("generate island", zap.Int64("seed", effective), zap.Error(err))
		return
	}
	w.log.Debug("island reset", zap.Int64("seed", effective))
}

// Step re-lays roads and centers on the current terrain, drawing fresh
// randomness. Without terrain it runs a full reset.
func (w *World) Step() {
	if w.model == nil {
		w.Reset(0)
		return
	}
	if err := w.Relayout(); err != nil {
		w.log.Error("relayout island", zap.Error(err))
	}
}
