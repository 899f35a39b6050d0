package island

import (
	"errors"
	"testing"

	"islandgen/internal/core"
	"islandgen/internal/noise"
)

func TestGenerateTerrainPartitionsLand(t *testing.T) {
	for _, size := range []int{1, 2, 10, 37, 100} {
		for _, kind := range noise.Kinds() {
			cfg := DefaultConfig()
			cfg.Noise = kind
			w, err := New(cfg, WithRNG(core.NewRNG(int64(size))))
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			params := cfg.Params.Terrain()
			params.Size = size
			snap, err := w.GenerateTerrain(params)
			if err != nil {
				t.Fatalf("size %d: %v", size, err)
			}
			if len(snap.Tiles) != size*size {
				t.Fatalf("size %d: %d tiles", size, len(snap.Tiles))
			}

			island := pointSet(snap.Island)
			sand := pointSet(snap.Sand)
			for p := range island {
				if sand[p] {
					t.Fatalf("size %d: %+v in both island and sand", size, p)
				}
			}
			for y := 0; y < size; y++ {
				for x := 0; x < size; x++ {
					p := core.Point{X: x, Y: y}
					tile := snap.At(x, y)
					switch tile {
					case Sea:
						if island[p] || sand[p] {
							t.Fatalf("size %d: sea tile %+v indexed as land", size, p)
						}
					case Grass:
						if !island[p] {
							t.Fatalf("size %d: grass %+v missing from island", size, p)
						}
					case Sand:
						if !sand[p] {
							t.Fatalf("size %d: sand %+v missing from sand set", size, p)
						}
					default:
						t.Fatalf("size %d: unexpected %s at %+v after terrain", size, tile, p)
					}
				}
			}
		}
	}
}

func TestCoastalClassification(t *testing.T) {
	w := newTestWorld(t, 42)
	snap, err := w.GenerateTerrain(TerrainParams{Size: 80, NoiseScale: 4, RadialBias: 0.7, Threshold: 0.1})
	if err != nil {
		t.Fatal(err)
	}
	if len(snap.Sand) == 0 || len(snap.Island) == 0 {
		t.Fatalf("expected a real island, got %d sand and %d interior tiles", len(snap.Sand), len(snap.Island))
	}
	for _, p := range snap.Sand {
		if !hasTileNeighbor8(snap.Tiles, snap.Size, p, Sea) {
			t.Fatalf("sand %+v has no sea neighbour", p)
		}
	}
	for _, p := range snap.Island {
		if hasTileNeighbor8(snap.Tiles, snap.Size, p, Sea) {
			t.Fatalf("interior %+v touches the sea", p)
		}
	}
}

func TestTerrainCappedNoiseYieldsAllSea(t *testing.T) {
	w, _ := flatWorld(t, 0.1)
	snap, err := w.GenerateTerrain(TerrainParams{Size: 10, NoiseScale: 4, RadialBias: 0.7, Threshold: 0.9})
	if err != nil {
		t.Fatal(err)
	}
	if len(snap.Island) != 0 || len(snap.Sand) != 0 {
		t.Fatalf("expected empty index sets, got %d island / %d sand", len(snap.Island), len(snap.Sand))
	}
	for i, tile := range snap.Tiles {
		if tile != Sea {
			t.Fatalf("tile %d = %s, want sea", i, tile)
		}
	}
}

func TestTerrainThresholdAboveScoreCeiling(t *testing.T) {
	w := newTestWorld(t, 3)
	snap, err := w.GenerateTerrain(TerrainParams{Size: 50, NoiseScale: 4, RadialBias: 0.7, Threshold: MaxScore})
	if err != nil {
		t.Fatal(err)
	}
	if len(snap.Island)+len(snap.Sand) != 0 {
		t.Fatal("no score can exceed 1.7, so the grid must be all sea")
	}
}

func TestTerrainRadialFalloff(t *testing.T) {
	// With flat noise, land is exactly the disk where bias - d/half > threshold - value.
	w, src := flatWorld(t, 0.5)
	snap, err := w.GenerateTerrain(TerrainParams{Size: 20, NoiseScale: 4, RadialBias: 0.7, Threshold: 0.1})
	if err != nil {
		t.Fatal(err)
	}
	if src.Seeds != 1 {
		t.Fatalf("terrain should seed the noise once, seeded %d times", src.Seeds)
	}
	if got := snap.At(10, 10); got != Grass {
		t.Fatalf("center = %s, want grass", got)
	}
	if got := snap.At(0, 0); got != Sea {
		t.Fatalf("corner = %s, want sea", got)
	}
}

func TestGenerateTerrainRejectsInvalidParams(t *testing.T) {
	w := newTestWorld(t, 1)
	bad := []TerrainParams{
		{Size: 0, NoiseScale: 4, RadialBias: 0.7, Threshold: 0.1},
		{Size: MaxSize + 1, NoiseScale: 4, RadialBias: 0.7, Threshold: 0.1},
		{Size: 10, NoiseScale: 0, RadialBias: 0.7, Threshold: 0.1},
		{Size: 10, NoiseScale: 4, RadialBias: 5, Threshold: 0.1},
		{Size: 10, NoiseScale: 4, RadialBias: 0.7, Threshold: -3},
	}
	for _, p := range bad {
		if _, err := w.GenerateTerrain(p); !errors.Is(err, ErrInvalidConfiguration) {
			t.Fatalf("%+v: expected ErrInvalidConfiguration, got %v", p, err)
		}
	}
	if w.HasTerrain() {
		t.Fatal("rejected parameters must not create a grid")
	}
}

func TestRegenerateTerrainReplacesGrid(t *testing.T) {
	w := newTestWorld(t, 9)
	if _, err := w.GenerateTerrain(TerrainParams{Size: 30, NoiseScale: 4, RadialBias: 0.7, Threshold: 0.1}); err != nil {
		t.Fatal(err)
	}
	snap, err := w.GenerateTerrain(TerrainParams{Size: 12, NoiseScale: 4, RadialBias: 0.7, Threshold: 0.1})
	if err != nil {
		t.Fatal(err)
	}
	if snap.Size != 12 || w.Size().W != 12 || len(w.Cells()) != 144 {
		t.Fatalf("grid was not recreated at the new size: %d", snap.Size)
	}
}
