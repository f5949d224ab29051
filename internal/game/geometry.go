package game

import "math"

// Vec2 is a world-space position or direction.
type Vec2 struct {
	X float64
	Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v*k.
func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Normalize returns v scaled to unit length. A zero vector stays zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Rect is an integer axis-aligned rectangle in world units.
type Rect struct {
	X, Y int
	W, H int
}

// Right returns the x coordinate one past the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y coordinate one past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Intersects reports whether r and o share any area. Touching edges do not
// count, and an empty rectangle never intersects anything.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	if r.X >= o.Right() || o.X >= r.Right() {
		return false
	}
	if r.Y >= o.Bottom() || o.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains reports whether the point lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= float64(r.X) && x < float64(r.Right()) &&
		y >= float64(r.Y) && y < float64(r.Bottom())
}

// boxAt returns the sprite-sized bounding box of an actor standing at p.
// Coordinates truncate toward zero, matching integer sprite placement.
func boxAt(p Vec2, size int) Rect {
	return Rect{X: int(p.X), Y: int(p.Y), W: size, H: size}
}

func clampf(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
