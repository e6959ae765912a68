package canvasutils

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Run opens a window configured by cfg and runs scene as the game until the
// window closes or an update returns an error. Zero-valued fields of cfg take
// their DefaultRunConfig values.
func Run(scene *Scene, cfg RunConfig) error {
	if scene == nil {
		return fmt.Errorf("canvasutils: run: nil scene")
	}
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return err
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(cfg.TPS)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	scene.SetSize(cfg.Width, cfg.Height)
	if cfg.Debug {
		scene.SetDebugMode(true)
	}
	if cfg.ShowFPS {
		scene.AddLayer(NewGroupSingle("fps", NewFPSCounter()))
	}

	if err := ebiten.RunGame(scene); err != nil {
		return fmt.Errorf("canvasutils: run: %w", err)
	}
	return nil
}
