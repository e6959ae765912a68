package canvasutils

// Collision queries test every member in insertion order. There is no spatial
// index, so each query is O(n).

// Collide returns the members, other than e itself, whose rectangles overlap
// e's rectangle.
func (g *Group) Collide(e Entity) []Entity {
	s := baseOf(e)
	if s == nil {
		return nil
	}
	var hits []Entity
	for _, m := range g.members {
		ms := m.Base()
		if ms == s {
			continue
		}
		if s.Rect.CollideRect(ms.Rect) {
			hits = append(hits, m)
		}
	}
	return hits
}

// CollideAny returns the first member, other than e itself, whose rectangle
// overlaps e's rectangle, or nil.
func (g *Group) CollideAny(e Entity) Entity {
	s := baseOf(e)
	if s == nil {
		return nil
	}
	for _, m := range g.members {
		ms := m.Base()
		if ms != s && s.Rect.CollideRect(ms.Rect) {
			return m
		}
	}
	return nil
}

// CollidePoint returns the members whose rectangles contain (x, y), edges
// included.
func (g *Group) CollidePoint(x, y float64) []Entity {
	var hits []Entity
	for _, m := range g.members {
		if m.Base().Rect.CollidePoint(x, y) {
			hits = append(hits, m)
		}
	}
	return hits
}

// SpriteCollide returns the members of g that collide with e. When kill is
// true each hit is killed, leaving every container it belonged to.
func SpriteCollide(e Entity, g *Group, kill bool) []Entity {
	if g == nil {
		return nil
	}
	hits := g.Collide(e)
	if kill {
		for _, h := range hits {
			h.Base().Kill()
		}
	}
	return hits
}
