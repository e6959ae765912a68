package canvasutils

import "github.com/hajimehoshi/ebiten/v2"

// Surface is anything an image can be drawn onto. *ebiten.Image satisfies it;
// the core only forwards it to DrawImage.
type Surface interface {
	DrawImage(img *ebiten.Image, options *ebiten.DrawImageOptions)
}

// Params carries per-frame values to Update. Scene fills ParamDelta and
// ParamInput; game code may add its own keys. A nil Params is valid.
type Params map[string]any

const (
	ParamDelta = "dt"    // float64 seconds since the previous tick
	ParamInput = "input" // InputState snapshot taken at the start of the tick
)

// Delta returns the ParamDelta value, or 0 when absent.
func (p Params) Delta() float64 {
	dt, _ := p[ParamDelta].(float64)
	return dt
}

// Input returns the ParamInput value and whether it was present.
func (p Params) Input() (InputState, bool) {
	st, ok := p[ParamInput].(InputState)
	return st, ok
}

// Entity is anything a Group or GroupSingle can hold: a *Sprite, or a type
// that embeds one and overrides Update and/or Draw.
//
// Membership is tracked on the *Sprite returned by Base, while containers keep
// the Entity value they were given so overridden methods are the ones called.
type Entity interface {
	Update(params Params)
	Draw(surface Surface)
	Base() *Sprite
}

// Container is the capability a Sprite's back-references point to. It is
// implemented by *Group and *GroupSingle.
type Container interface {
	Has(e Entity) bool
	Remove(entities ...Entity)

	// attach adds e on behalf of NewSprite.
	attach(e Entity)
}

// Layer is one entry in a Scene's update/draw order. *Group, *GroupSingle and
// *Sprite all satisfy it.
type Layer interface {
	Update(params Params)
	Draw(surface Surface)
}

// baseOf returns e's sprite, tolerating a nil interface and a nil *Sprite.
// A nil pointer to a type embedding *Sprite still panics in Base.
func baseOf(e Entity) *Sprite {
	if e == nil {
		return nil
	}
	return e.Base()
}
