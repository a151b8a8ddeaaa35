package ember

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	// Fixes discrete GPU selection on dual-GPU Windows machines.
	_ "github.com/silbinarywolf/preferdiscretegpu"
)

// RunConfig configures the Run convenience loop.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ClearColor fills the screen before draw each frame.
	ClearColor Color
	// ShowFPS overlays an FPS/TPS readout in the top-left corner.
	ShowFPS bool
}

// Run creates a window and drives a fixed-timestep game loop, calling
// update with the frame's delta seconds and then draw with the screen.
// It blocks until the window closes or update returns an error.
//
// Run is optional glue for demos and small tools; for full control,
// implement ebiten.Game yourself and call Emitter.Update and
// Emitter.Draw directly.
func Run(cfg RunConfig, update func(dt float64) error, draw func(screen *ebiten.Image)) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if update == nil {
		update = func(float64) error { return nil }
	}
	if draw == nil {
		draw = func(*ebiten.Image) {}
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	return ebiten.RunGame(&runGame{cfg: cfg, update: update, draw: draw})
}

type runGame struct {
	cfg    RunConfig
	update func(dt float64) error
	draw   func(screen *ebiten.Image)
}

func (g *runGame) Update() error {
	return g.update(1.0 / float64(ebiten.TPS()))
}

func (g *runGame) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.ClearColor.RGBA())
	g.draw(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
			ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *runGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
