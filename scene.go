package canvasutils

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is a ready-made ebiten.Game that owns an ordered list of layers and
// the input poller. Each tick it polls input, then updates every layer in
// order; each frame it clears the screen and draws every layer in order.
//
// Scene is optional: any game loop can call Group.Update and Group.Draw
// directly.
type Scene struct {
	// ClearColor fills the screen before layers are drawn. nil leaves the
	// screen as Ebitengine provides it.
	ClearColor color.Color

	layers     []Layer
	input      *Input
	updateFunc func() error
	width      int
	height     int
	debug      bool
}

// NewScene creates an empty scene reading input from Ebitengine.
func NewScene() *Scene {
	return &Scene{input: NewInput()}
}

// AddLayer appends l to the update/draw order.
// Panics if l is nil.
func (s *Scene) AddLayer(l Layer) {
	if l == nil {
		panic("canvasutils: cannot add nil layer")
	}
	s.layers = append(s.layers, l)
}

// RemoveLayer removes l from the scene. No-op if l is not a layer.
func (s *Scene) RemoveLayer(l Layer) {
	for i, c := range s.layers {
		if c == l {
			s.layers = append(s.layers[:i:i], s.layers[i+1:]...)
			return
		}
	}
}

// Layers returns the layer list. The returned slice MUST NOT be mutated.
func (s *Scene) Layers() []Layer {
	return s.layers
}

// Input returns the scene's input poller.
func (s *Scene) Input() *Input {
	return s.input
}

// SetUpdateFunc sets a callback run every tick after input is polled and
// before layers are updated. A non-nil error stops the game loop.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetSize sets the logical screen size reported by Layout. Zero keeps the
// outside size.
func (s *Scene) SetSize(width, height int) {
	s.width, s.height = width, height
}

// SetDebugMode enables or disables debug mode. When enabled, membership
// quirks and per-frame timing are logged at debug level; if no logger was
// installed with SetLogger, a console logger writing to stderr is created.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
	if enabled && !loggerInstalled {
		SetLogger(newDebugLogger())
	}
}

// Update implements ebiten.Game.
func (s *Scene) Update() error {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.input.Poll()
	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}

	params := Params{
		ParamDelta: tickDelta(),
		ParamInput: s.input.State(),
	}
	s.updateLayers(params)

	if s.debug {
		debugLogUpdate(frameStats{updateTime: time.Since(t0), layers: len(s.layers)})
	}
	return nil
}

// Draw implements ebiten.Game.
func (s *Scene) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if s.ClearColor != nil {
		screen.Fill(s.ClearColor)
	}
	s.drawLayers(screen)

	if s.debug {
		debugLogDraw(frameStats{drawTime: time.Since(t0), layers: len(s.layers)})
	}
}

// Layout implements ebiten.Game. It returns the size set with SetSize, or the
// outside size when none was set.
func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	if s.width > 0 && s.height > 0 {
		return s.width, s.height
	}
	return outsideWidth, outsideHeight
}

func (s *Scene) updateLayers(params Params) {
	layers := s.layers
	for _, l := range layers {
		l.Update(params)
	}
}

func (s *Scene) drawLayers(surface Surface) {
	for _, l := range s.layers {
		l.Draw(surface)
	}
}

// tickDelta returns the seconds per tick, assuming 60 TPS when Ebitengine
// syncs ticks with the display.
func tickDelta() float64 {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = 60
	}
	return 1.0 / float64(tps)
}
