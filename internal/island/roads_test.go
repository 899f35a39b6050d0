package island

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"islandgen/internal/core"
)

func generateTerrain(t *testing.T, w *World, size int) GridSnapshot {
	t.Helper()
	snap, err := w.GenerateTerrain(TerrainParams{Size: size, NoiseScale: 4, RadialBias: 0.7, Threshold: 0.1})
	if err != nil {
		t.Fatalf("GenerateTerrain: %v", err)
	}
	return snap
}

func TestCarveRoadsLatticeRules(t *testing.T) {
	for _, spacing := range []int{1, 2, 3, 7} {
		w := newTestWorld(t, int64(100+spacing))
		terrain := generateTerrain(t, w, 90)
		island := pointSet(terrain.Island)

		snap, err := w.CarveRoads(RoadParams{Spacing: spacing, PruneCount: 25})
		if err != nil {
			t.Fatalf("spacing %d: %v", spacing, err)
		}
		if len(snap.Roads) == 0 {
			t.Fatalf("spacing %d: expected surviving roads", spacing)
		}
		for _, p := range snap.Roads {
			if !island[p] {
				t.Fatalf("spacing %d: road %+v was not interior land", spacing, p)
			}
			if hasTileNeighbor8(terrain.Tiles, terrain.Size, p, Sand) {
				t.Fatalf("spacing %d: road %+v touches sand", spacing, p)
			}
			if p.X%spacing != 0 && p.Y%spacing != 0 {
				t.Fatalf("spacing %d: road %+v is off the lattice", spacing, p)
			}
			if roadNeighbours(snap.Tiles, snap.Size, p) == 0 {
				t.Fatalf("spacing %d: road %+v is isolated after cleanup", spacing, p)
			}
		}
		roads := pointSet(snap.Roads)
		for i, tile := range snap.Tiles {
			p := core.Point{X: i % snap.Size, Y: i / snap.Size}
			if (tile == Road) != roads[p] {
				t.Fatalf("spacing %d: road index out of sync at %+v", spacing, p)
			}
			if terrain.Tiles[i] != Grass && tile != terrain.Tiles[i] {
				t.Fatalf("spacing %d: non-grass tile %+v changed to %s", spacing, p, tile)
			}
		}
	}
}

func TestCarveRoadsWithoutPruningIsIdempotent(t *testing.T) {
	w := newTestWorld(t, 5)
	generateTerrain(t, w, 70)

	first, err := w.CarveRoads(RoadParams{Spacing: 3})
	if err != nil {
		t.Fatal(err)
	}
	second, err := w.CarveRoads(RoadParams{Spacing: 3})
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(first.Roads, second.Roads) {
		t.Fatal("prune count 0 must reproduce the same road set")
	}
	if !slices.Equal(first.Tiles, second.Tiles) {
		t.Fatal("prune count 0 must reproduce the same grid")
	}
}

func TestCarveRoadsSpacingOneCoversInterior(t *testing.T) {
	w, _ := flatWorld(t, 0.5)
	terrain, err := w.GenerateTerrain(TerrainParams{Size: 20, NoiseScale: 4, RadialBias: 0.7, Threshold: 0.1})
	if err != nil {
		t.Fatal(err)
	}
	snap, err := w.CarveRoads(RoadParams{Spacing: 1})
	if err != nil {
		t.Fatal(err)
	}

	candidate := map[core.Point]bool{}
	for _, p := range terrain.Island {
		if !hasTileNeighbor8(terrain.Tiles, terrain.Size, p, Sand) {
			candidate[p] = true
		}
	}
	if len(candidate) == 0 {
		t.Fatal("fixture should leave interior tiles away from the coast")
	}
	for _, p := range terrain.Island {
		linked := false
		for _, d := range core.VonNeumann {
			if candidate[p.Add(d)] {
				linked = true
			}
		}
		want := Grass
		if candidate[p] && linked {
			want = Road
		}
		if got := snap.At(p.X, p.Y); got != want {
			t.Fatalf("tile %+v = %s, want %s", p, got, want)
		}
	}
}

func TestCarveRoadsResetsPreviousLayout(t *testing.T) {
	w := newTestWorld(t, 77)
	generateTerrain(t, w, 60)
	if _, err := w.CarveRoads(RoadParams{Spacing: 2}); err != nil {
		t.Fatal(err)
	}
	if _, err := w.PlaceCenters(ZoneParams{AreaCount: 4, RadiusThreshold: -1}); err != nil {
		t.Fatal(err)
	}
	snap, err := w.CarveRoads(RoadParams{Spacing: 5})
	if err != nil {
		t.Fatal(err)
	}
	for i, tile := range snap.Tiles {
		if tile == Center {
			t.Fatalf("center at %d survived a re-carve", i)
		}
		p := core.Point{X: i % snap.Size, Y: i / snap.Size}
		if tile == Road && p.X%5 != 0 && p.Y%5 != 0 {
			t.Fatalf("stale road %+v from the previous spacing", p)
		}
	}
}

func TestCarveRoadsInvalidSpacingLeavesGrid(t *testing.T) {
	w := newTestWorld(t, 8)
	generateTerrain(t, w, 40)
	before := append([]uint8(nil), w.Cells()...)

	if _, err := w.CarveRoads(RoadParams{Spacing: 0}); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
	if _, err := w.CarveRoads(RoadParams{Spacing: 2, PruneCount: -1}); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration for negative prune count, got %v", err)
	}
	if !slices.Equal(before, w.Cells()) {
		t.Fatal("rejected parameters must not mutate the grid")
	}
}

func TestCarveRoadsRequiresTerrain(t *testing.T) {
	w := newTestWorld(t, 1)
	if _, err := w.CarveRoads(RoadParams{Spacing: 3}); !errors.Is(err, ErrNoTerrain) {
		t.Fatalf("expected ErrNoTerrain, got %v", err)
	}
}

func TestCarveRoadsExcessPruningEmptiesNetwork(t *testing.T) {
	w := newTestWorld(t, 11)
	generateTerrain(t, w, 40)
	snap, err := w.CarveRoads(RoadParams{Spacing: 4, PruneCount: 100000})
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range snap.Roads {
		if roadNeighbours(snap.Tiles, snap.Size, p) == 0 {
			t.Fatalf("isolated road %+v", p)
		}
	}
	if len(snap.Roads) != 0 {
		t.Fatalf("expected every road pruned, %d left", len(snap.Roads))
	}
}

func TestCarveRoadsOnAllSeaIsNoop(t *testing.T) {
	w, _ := flatWorld(t, -1)
	if _, err := w.GenerateTerrain(TerrainParams{Size: 15, NoiseScale: 4, RadialBias: 0, Threshold: 0.5}); err != nil {
		t.Fatal(err)
	}
	snap, err := w.CarveRoads(RoadParams{Spacing: 1, PruneCount: 10})
	if err != nil {
		t.Fatal(err)
	}
	if len(snap.Roads) != 0 {
		t.Fatalf("expected no roads, got %d", len(snap.Roads))
	}
}

func TestPruneErodesDeadEndsAndKeepsJunctions(t *testing.T) {
	m := modelFromRows(t,
		".........",
		"....#....",
		"....#....",
		"....#....",
		".#######.",
		"....#....",
		"....#....",
		"....#....",
		".........",
	)
	live := newRoadSet(m)
	removed := m.pruneFrom(core.Point{X: 1, Y: 4}, live)
	if removed != 3 {
		t.Fatalf("removed %d tiles, want the 3-tile west arm", removed)
	}
	if got := m.at(core.Point{X: 4, Y: 4}); got != Road {
		t.Fatalf("junction = %s, want road", got)
	}
	for _, p := range []core.Point{{X: 1, Y: 4}, {X: 2, Y: 4}, {X: 3, Y: 4}} {
		if m.at(p) != Grass {
			t.Fatalf("%+v should have been eroded", p)
		}
	}
	if live.len() != len(m.roads)-3 {
		t.Fatalf("live set has %d roads, want %d", live.len(), len(m.roads)-3)
	}
}

func TestPruneLongChainUsesBoundedStack(t *testing.T) {
	const size = 1000
	rows := make([]string, size)
	blank := strings.Repeat(".", size)
	for y := range rows {
		rows[y] = blank
	}
	rows[size/2] = "." + strings.Repeat("#", size-2) + "."
	m := modelFromRows(t, rows...)

	removed := m.pruneFrom(core.Point{X: size / 2, Y: size / 2}, newRoadSet(m))
	if removed != size-2 {
		t.Fatalf("removed %d, want the whole %d-tile chain", removed, size-2)
	}
}

func TestPruneSkipsFrameTiles(t *testing.T) {
	m := modelFromRows(t,
		"##...",
		".#...",
		".....",
		".....",
		".....",
	)
	m.pruneFrom(core.Point{X: 1, Y: 1}, newRoadSet(m))
	if m.at(core.Point{X: 1, Y: 0}) != Road || m.at(core.Point{X: 0, Y: 0}) != Road {
		t.Fatal("erosion must not step onto the outer frame")
	}
}
