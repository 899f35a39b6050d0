//go:build ebiten

package app

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"islandgen/internal/config"
	"islandgen/internal/core"
	"islandgen/internal/island"
	"islandgen/internal/render"
	"islandgen/internal/ui"
)

const defaultReroll = 2 * time.Second

// Game adapts an island World to the ebiten.Game interface.
type Game struct {
	world   *island.World
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	log     *zap.Logger

	scale  int
	seed   int64
	auto   bool
	reroll *core.FixedStep
	seeds  *core.RNG
}

// New constructs a Game for world. The world is generated on construction.
func New(world *island.World, display config.DisplayConfig, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	interval := display.Reroll
	if interval <= 0 {
		interval = defaultReroll
	}
	hudWidth := 0
	if display.HUD {
		hudWidth = hudPanelWidth
	}
	g := &Game{
		world:   world,
		overlay: ui.NewOverlay(world, display.Scale),
		hud:     ui.NewHUD(world, hudWidth),
		log:     log,
		scale:   max(display.Scale, 1),
		seed:    world.Config().Seed,
		auto:    display.Reroll > 0,
		reroll:  core.NewFixedStep(interval),
		seeds:   core.NewEntropyRNG(),
	}
	if g.seed == 0 {
		g.seed = g.seeds.Int64()
	}
	g.Reset(g.seed)
	return g
}

// Reset regenerates the whole island from seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.reroll.Restart()
}

// Update handles keyboard input and the auto-reroll timer.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.Reset(g.seed)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.Reset(g.seeds.Int64())
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.world.Step()
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		g.run("terrain", func() error {
			_, err := g.world.Generate()
			return err
		})
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.run("roads", func() error {
			_, err := g.world.CarveRoads(g.world.Config().Params.Roads())
			return err
		})
	case inpututil.IsKeyJustPressed(ebiten.KeyZ):
		g.run("centers", func() error {
			_, err := g.world.PlaceCenters(g.world.Config().Params.Zones())
			return err
		})
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		g.auto = !g.auto
		g.reroll.Restart()
	}

	if g.auto && g.reroll.ShouldStep(time.Now()) {
		g.Reset(g.seeds.Int64())
	}

	g.overlay.Update()
	g.hud.Update(g.mapWidth(), g.infoLines())
	return nil
}

func (g *Game) run(phase string, fn func() error) {
	if err := fn(); err != nil {
		g.log.Warn("regenerate", zap.String("phase", phase), zap.Error(err))
	}
}

func (g *Game) infoLines() []string {
	lines := append([]string{fmt.Sprintf("seed    %d", g.seed)}, g.world.Stats().Lines()...)
	if g.auto {
		lines = append(lines, fmt.Sprintf("auto    every %s", g.reroll.Interval()))
	}
	return append(lines, "", "R seed  S new  N relayout", "T terrain  C roads  Z zones", "1-3 overlays  A auto  Q quit")
}

// Draw renders the map, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	size := g.world.Size()
	if g.painter == nil {
		g.painter = render.NewGridPainter(size.W, size.H)
	} else if w, h := g.painter.Size(); w != size.W || h != size.H {
		g.painter = render.NewGridPainter(size.W, size.H)
	}
	g.painter.Blit(screen, g.world.Cells(), g.world.Palette(), g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.mapWidth(), size.H*g.scale)
}

func (g *Game) mapWidth() int { return g.world.Size().W * g.scale }

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}

const hudPanelWidth = 260
