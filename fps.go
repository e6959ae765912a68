package canvasutils

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefreshInterval is how often, in seconds, the counter redraws its text.
const fpsRefreshInterval = 0.5

// FPSCounter is a sprite that shows the current FPS and TPS. It redraws its
// own image from Update, so it must be held by a container (or Scene layer)
// that is updated every tick.
type FPSCounter struct {
	*Sprite

	elapsed float64
	redraws int
}

// NewFPSCounter creates a counter anchored at the top-left of the screen and
// adds it to the given containers.
func NewFPSCounter(containers ...Container) *FPSCounter {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	img := ebiten.NewImage(100, 32)
	f := &FPSCounter{
		Sprite:  NewSprite("fps_counter", img, NewRect(0, 0, 100, 32)),
		elapsed: fpsRefreshInterval,
	}
	for _, c := range containers {
		if c != nil {
			c.attach(f)
		}
	}
	return f
}

// Update redraws the text at most every half second of accumulated ParamDelta.
func (f *FPSCounter) Update(params Params) {
	f.elapsed += params.Delta()
	if f.elapsed < fpsRefreshInterval {
		return
	}
	f.elapsed = 0
	f.redraws++

	img := f.Image
	img.Clear()
	// Semi-transparent background for readability
	img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}
