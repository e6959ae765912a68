package canvasutils

import "testing"

func collideFixture() (*Group, *Sprite, *Sprite, *Sprite) {
	g := NewGroup("g")
	a := NewSprite("a", nil, NewRect(0, 0, 10, 10), g)
	b := NewSprite("b", nil, NewRect(5, 5, 10, 10), g)
	c := NewSprite("c", nil, NewRect(100, 100, 10, 10), g)
	return g, a, b, c
}

func TestGroupCollide(t *testing.T) {
	g, a, b, c := collideFixture()

	probe := NewSprite("probe", nil, NewRect(8, 8, 4, 4))
	if got := names(g.Collide(probe)); !equalStrings(got, []string{"a", "b"}) {
		t.Errorf("Collide(probe) = %v, want [a b]", got)
	}
	if got := names(g.Collide(a)); !equalStrings(got, []string{"b"}) {
		t.Errorf("Collide(a) = %v, want [b] (self excluded)", got)
	}
	if hits := g.Collide(c); len(hits) != 0 {
		t.Errorf("Collide(c) = %v, want none", names(hits))
	}
	if hits := g.Collide(nil); hits != nil {
		t.Error("Collide(nil) should return nil")
	}
	_ = b
}

func TestGroupCollideTouchingEdges(t *testing.T) {
	g := NewGroup("g")
	NewSprite("left", nil, NewRect(0, 0, 10, 10), g)
	probe := NewSprite("probe", nil, NewRect(10, 0, 10, 10))
	if hits := g.Collide(probe); len(hits) != 0 {
		t.Errorf("touching edges should not collide, got %v", names(hits))
	}
}

func TestGroupCollideAny(t *testing.T) {
	g, a, _, c := collideFixture()

	if got := g.CollideAny(a); got == nil || got.Base().Name != "b" {
		t.Errorf("CollideAny(a) = %v, want b", got)
	}
	if got := g.CollideAny(c); got != nil {
		t.Errorf("CollideAny(c) = %v, want nil", got.Base().Name)
	}
	if got := g.CollideAny(nil); got != nil {
		t.Error("CollideAny(nil) should be nil")
	}
}

func TestGroupCollideReturnsEntities(t *testing.T) {
	g := NewGroup("g")
	w := newWalker("w", 0, nil)
	g.Add(w)
	probe := NewSprite("probe", nil, NewRect(5, 5, 2, 2))

	hits := g.Collide(probe)
	if len(hits) != 1 {
		t.Fatalf("hits = %d, want 1", len(hits))
	}
	if _, ok := hits[0].(*walker); !ok {
		t.Errorf("hit type = %T, want *walker", hits[0])
	}
}

func TestGroupCollidePoint(t *testing.T) {
	g, _, _, _ := collideFixture()

	tests := []struct {
		name string
		x, y float64
		want []string
	}{
		{"inside a only", 1, 1, []string{"a"}},
		{"overlap", 7, 7, []string{"a", "b"}},
		{"shared corner", 10, 10, []string{"a", "b"}},
		{"c edge", 110, 105, []string{"c"}},
		{"nothing", 50, 50, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(g.CollidePoint(tt.x, tt.y))
			if !equalStrings(got, tt.want) {
				t.Errorf("CollidePoint(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestSpriteCollide(t *testing.T) {
	g, a, b, c := collideFixture()
	others := NewGroup("others", b)

	hits := SpriteCollide(a, g, false)
	if got := names(hits); !equalStrings(got, []string{"b"}) {
		t.Errorf("SpriteCollide = %v, want [b]", got)
	}
	if !g.Has(b) {
		t.Error("kill=false should keep b")
	}

	SpriteCollide(a, g, true)
	if g.Has(b) || others.Has(b) || b.Alive() {
		t.Error("kill=true should remove b from every container")
	}
	if !g.Has(a) || !g.Has(c) {
		t.Error("non-colliding members should remain")
	}
	if hits := SpriteCollide(a, nil, true); hits != nil {
		t.Error("nil group should return nil")
	}
}
