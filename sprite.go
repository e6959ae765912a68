package canvasutils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// spriteIDCounter is a plain counter (no atomic; the package is single-threaded).
var spriteIDCounter uint32

func nextSpriteID() uint32 {
	spriteIDCounter++
	return spriteIDCounter
}

// Sprite is a drawable entity: an image placed at a rectangle's top-left
// corner. A Sprite remembers every container that currently holds it so Kill
// can remove it from all of them.
//
// Game objects usually embed *Sprite and override Update (and sometimes
// Draw). Add the embedding value to groups, not the inner *Sprite, so the
// override is the one the group calls:
//
//	type player struct {
//		*canvasutils.Sprite
//		speed float64
//	}
//
//	func (p *player) Update(params canvasutils.Params) {
//		p.Rect.SetLeft(p.Rect.X + p.speed*params.Delta())
//	}
//
//	p := &player{Sprite: canvasutils.NewSprite("player", img, rect), speed: 120}
//	actors.Add(p)
type Sprite struct {
	ID   uint32
	Name string

	Image *ebiten.Image
	Rect  Rect

	// Containers currently holding this sprite. Replaced, never edited in
	// place, so a range over an older header stays valid during Kill.
	groups []Container
}

// NewSprite creates a sprite and adds it to each of the given containers.
func NewSprite(name string, image *ebiten.Image, rect Rect, containers ...Container) *Sprite {
	s := &Sprite{
		ID:    nextSpriteID(),
		Name:  name,
		Image: image,
		Rect:  rect,
	}
	for _, c := range containers {
		if c != nil {
			c.attach(s)
		}
	}
	return s
}

// Base returns s. Types embedding *Sprite inherit it, which is what makes
// them Entities.
func (s *Sprite) Base() *Sprite {
	return s
}

// Update does nothing. Embedding types override it to move or animate.
func (s *Sprite) Update(params Params) {}

// Draw renders Image at the rectangle's top-left corner. A nil image or
// surface draws nothing.
func (s *Sprite) Draw(surface Surface) {
	if s.Image == nil || surface == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(s.Rect.X, s.Rect.Y)
	surface.DrawImage(s.Image, op)
}

// Kill removes the sprite from every container holding it. Calling Kill on a
// sprite that belongs to nothing is a no-op. The sprite itself stays usable
// and may be added to containers again.
func (s *Sprite) Kill() {
	groups := s.groups
	for _, c := range groups {
		c.Remove(s)
		// A GroupSingle that has since moved on to another sprite ignores
		// the Remove above, leaving its entry behind.
		s.removeGroup(c)
	}
	if globalDebug && len(groups) > 0 {
		debugLogKill(s, len(groups))
	}
}

// Alive reports whether at least one container holds the sprite.
func (s *Sprite) Alive() bool {
	return len(s.groups) > 0
}

// Groups returns a copy of the containers currently holding the sprite.
func (s *Sprite) Groups() []Container {
	out := make([]Container, len(s.groups))
	copy(out, s.groups)
	return out
}

// RemoveFrom removes the sprite from each of the given containers.
func (s *Sprite) RemoveFrom(containers ...Container) {
	for _, c := range containers {
		if c != nil {
			c.Remove(s)
		}
	}
}

// CollideRect reports whether the rectangles of s and other overlap, using
// Rect.CollideRect. A nil other never collides.
func (s *Sprite) CollideRect(other Entity) bool {
	o := baseOf(other)
	if o == nil {
		return false
	}
	return s.Rect.CollideRect(o.Rect)
}

// --- Back-references ---

// addGroup records c as a holder. Adding the same container twice is a no-op.
func (s *Sprite) addGroup(c Container) {
	for _, g := range s.groups {
		if g == c {
			return
		}
	}
	s.groups = append(s.groups, c)
}

// removeGroup forgets c. No-op if c does not hold the sprite.
func (s *Sprite) removeGroup(c Container) {
	for i, g := range s.groups {
		if g == c {
			next := make([]Container, 0, len(s.groups)-1)
			next = append(next, s.groups[:i]...)
			s.groups = append(next, s.groups[i+1:]...)
			return
		}
	}
}
