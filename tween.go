package canvasutils

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to two values of a sprite's rectangle at once.
// Create one via TweenPosition, TweenCenter or TweenSize and call Update(dt)
// each frame. Values are written through the Rect setters, so the rectangle
// stays on integral coordinates while the tween itself interpolates smoothly.
//
// If the sprite was alive when the tween was created and is killed later, the
// group stops immediately.
//
// There is no global animation manager; callers drive Update themselves.
type TweenGroup struct {
	tweens [2]*gween.Tween
	apply  func(a, b float64)
	target *Sprite
	watch  bool
	Done   bool
}

func newTweenGroup(s *Sprite, from, to [2]float64, duration float32, fn ease.TweenFunc, apply func(a, b float64)) *TweenGroup {
	g := &TweenGroup{apply: apply, target: s, watch: s.Alive()}
	for i := range g.tweens {
		g.tweens[i] = gween.New(float32(from[i]), float32(to[i]), duration, fn)
	}
	return g
}

// Update advances the tweens by dt seconds and writes the values to the
// target rectangle.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.watch && !g.target.Alive() {
		g.Done = true
		return
	}

	a, doneA := g.tweens[0].Update(dt)
	b, doneB := g.tweens[1].Update(dt)
	g.apply(float64(a), float64(b))
	g.Done = doneA && doneB
}

// TweenPosition moves the sprite's top-left corner to (toX, toY) over duration
// seconds using the easing function.
func TweenPosition(s *Sprite, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	from := s.Rect.TopLeft()
	return newTweenGroup(s, [2]float64{from.X, from.Y}, [2]float64{toX, toY}, duration, fn,
		func(x, y float64) { s.Rect.SetTopLeft(Vec2{x, y}) })
}

// TweenCenter moves the sprite so its center ends at to.
func TweenCenter(s *Sprite, to Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	from := s.Rect.Center()
	return newTweenGroup(s, [2]float64{from.X, from.Y}, [2]float64{to.X, to.Y}, duration, fn,
		func(x, y float64) { s.Rect.SetCenter(Vec2{x, y}) })
}

// TweenSize resizes the sprite's rectangle to (toW, toH), keeping its
// top-left corner. Sizes are truncated toward zero on every write.
func TweenSize(s *Sprite, toW, toH float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(s, [2]float64{s.Rect.Width, s.Rect.Height}, [2]float64{toW, toH}, duration, fn,
		func(w, h float64) {
			s.Rect.Width = math.Trunc(w)
			s.Rect.Height = math.Trunc(h)
		})
}
