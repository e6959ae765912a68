package canvasutils

import "math"

// Vec2 is a 2D point used by every Rect anchor getter and setter.
type Vec2 struct {
	X, Y float64
}

// Size is a width/height pair returned by Rect.Scale.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
//
// Only X, Y, Width and Height are stored. Every anchor (Left, Center,
// MidBottom, ...) is derived from them on read and solved back into X and Y on
// write, holding the size fixed. All setters truncate toward zero, so after
// any setter X and Y hold integral values.
type Rect struct {
	X, Y, Width, Height float64
}

// NewRect returns a rectangle with the given top-left corner and size.
// Values are stored as given.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// --- Collision ---

// CollidePoint reports whether the point (x, y) lies inside the rectangle.
// Points on any edge are considered inside.
func (r Rect) CollidePoint(x, y float64) bool {
	return x >= r.Left() && x <= r.Right() &&
		y >= r.Top() && y <= r.Bottom()
}

// CollideRect reports whether r and other overlap. All four comparisons are
// strict, so rectangles that only share an edge do not collide. Sizes are not
// checked: a zero-width rectangle strictly inside another one collides with it.
func (r Rect) CollideRect(other Rect) bool {
	return r.Left() < other.Right() &&
		other.Left() < r.Right() &&
		r.Top() < other.Bottom() &&
		other.Top() < r.Bottom()
}

// --- Scaling ---

// Scale returns the size scaled by ratio, truncated toward zero. r is not modified.
func (r Rect) Scale(ratio float64) Size {
	return Size{
		W: math.Trunc(r.Width * ratio),
		H: math.Trunc(r.Height * ratio),
	}
}

// ScaleInPlace scales Width and Height by ratio, truncated toward zero, keeping
// the top-left corner. Returns r for chaining.
func (r *Rect) ScaleInPlace(ratio float64) *Rect {
	r.Width = math.Trunc(r.Width * ratio)
	r.Height = math.Trunc(r.Height * ratio)
	return r
}

// ScaleAroundCenter scales the size in place and re-centers the rectangle on
// its previous center. Truncation can shift the center by at most one unit per
// axis. Returns r for chaining.
func (r *Rect) ScaleAroundCenter(ratio float64) *Rect {
	c := r.Center()
	r.ScaleInPlace(ratio)
	r.SetCenter(c)
	return r
}

// Inflate returns a new rectangle grown by dx horizontally and dy vertically,
// split evenly on both sides. Negative amounts shrink. r is not modified.
func (r Rect) Inflate(dx, dy float64) Rect {
	return Rect{
		X:      r.X - dx/2,
		Y:      r.Y - dy/2,
		Width:  r.Width + dx,
		Height: r.Height + dy,
	}
}

// Coordinate returns the top-left corner.
func (r Rect) Coordinate() Vec2 {
	return Vec2{r.X, r.Y}
}

// --- Edges ---

// Left returns X.
func (r Rect) Left() float64 { return r.X }

// Right returns X + Width.
func (r Rect) Right() float64 { return r.X + r.Width }

// Top returns Y.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns Y + Height.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// CenterX returns the horizontal midpoint, rounding half a unit up.
func (r Rect) CenterX() float64 { return r.X + roundHalfUp(r.Width/2) }

// CenterY returns the vertical midpoint, rounding half a unit up.
func (r Rect) CenterY() float64 { return r.Y + roundHalfUp(r.Height/2) }

// SetLeft moves the rectangle so its left edge is x.
func (r *Rect) SetLeft(x float64) { r.X = math.Trunc(x) }

// SetRight moves the rectangle so its right edge is x.
func (r *Rect) SetRight(x float64) { r.X = math.Trunc(x - r.Width) }

// SetTop moves the rectangle so its top edge is y.
func (r *Rect) SetTop(y float64) { r.Y = math.Trunc(y) }

// SetBottom moves the rectangle so its bottom edge is y.
func (r *Rect) SetBottom(y float64) { r.Y = math.Trunc(y - r.Height) }

// SetCenterX moves the rectangle so its horizontal midpoint is x.
func (r *Rect) SetCenterX(x float64) { r.X = math.Trunc(x - r.Width/2) }

// SetCenterY moves the rectangle so its vertical midpoint is y.
func (r *Rect) SetCenterY(y float64) { r.Y = math.Trunc(y - r.Height/2) }

// --- Anchor points ---

// Anchor getters combine the edge and center getters above, so centers round
// half up. Each Set counterpart moves the rectangle so that anchor lands on p,
// keeping the size.

// Center returns (CenterX, CenterY).
func (r Rect) Center() Vec2 { return Vec2{r.CenterX(), r.CenterY()} }

// TopLeft returns (Left, Top).
func (r Rect) TopLeft() Vec2 { return Vec2{r.Left(), r.Top()} }

// TopRight returns (Right, Top).
func (r Rect) TopRight() Vec2 { return Vec2{r.Right(), r.Top()} }

// BottomLeft returns (Left, Bottom).
func (r Rect) BottomLeft() Vec2 { return Vec2{r.Left(), r.Bottom()} }

// BottomRight returns (Right, Bottom).
func (r Rect) BottomRight() Vec2 { return Vec2{r.Right(), r.Bottom()} }

// MidLeft returns (Left, CenterY).
func (r Rect) MidLeft() Vec2 { return Vec2{r.Left(), r.CenterY()} }

// MidRight returns (Right, CenterY).
func (r Rect) MidRight() Vec2 { return Vec2{r.Right(), r.CenterY()} }

// MidTop returns (CenterX, Top).
func (r Rect) MidTop() Vec2 { return Vec2{r.CenterX(), r.Top()} }

// MidBottom returns (CenterX, Bottom).
func (r Rect) MidBottom() Vec2 { return Vec2{r.CenterX(), r.Bottom()} }

// SetCenter moves the rectangle so its center is p.
func (r *Rect) SetCenter(p Vec2) {
	r.SetCenterX(p.X)
	r.SetCenterY(p.Y)
}

// SetTopLeft moves the rectangle so its top-left corner is p.
func (r *Rect) SetTopLeft(p Vec2) {
	r.SetLeft(p.X)
	r.SetTop(p.Y)
}

// SetTopRight moves the rectangle so its top-right corner is p.
func (r *Rect) SetTopRight(p Vec2) {
	r.SetRight(p.X)
	r.SetTop(p.Y)
}

// SetBottomLeft moves the rectangle so its bottom-left corner is p.
func (r *Rect) SetBottomLeft(p Vec2) {
	r.SetLeft(p.X)
	r.SetBottom(p.Y)
}

// SetBottomRight moves the rectangle so its bottom-right corner is p.
func (r *Rect) SetBottomRight(p Vec2) {
	r.SetRight(p.X)
	r.SetBottom(p.Y)
}

// SetMidLeft moves the rectangle so the middle of its left edge is p.
func (r *Rect) SetMidLeft(p Vec2) {
	r.SetLeft(p.X)
	r.SetCenterY(p.Y)
}

// SetMidRight moves the rectangle so the middle of its right edge is p.
func (r *Rect) SetMidRight(p Vec2) {
	r.SetRight(p.X)
	r.SetCenterY(p.Y)
}

// SetMidTop moves the rectangle so the middle of its top edge is p.
func (r *Rect) SetMidTop(p Vec2) {
	r.SetCenterX(p.X)
	r.SetTop(p.Y)
}

// SetMidBottom moves the rectangle so the middle of its bottom edge is p.
func (r *Rect) SetMidBottom(p Vec2) {
	r.SetCenterX(p.X)
	r.SetBottom(p.Y)
}

// roundHalfUp rounds to the nearest integer with halves going toward +Inf,
// so -2.5 becomes -2 (math.Round would give -3).
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
