package beacon

import "math"

// Vec2 is a 2D point or offset in screen coordinates.
type Vec2 struct {
	X, Y float64
}

// Add returns a + b.
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Sub returns a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec2) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Center returns the rectangle's midpoint.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// ClosestIndex returns the index of the rectangle whose center is nearest to
// cursor, or -1 if rects is empty. The comparison is strict, so among
// equidistant rectangles the earliest in the slice wins.
func ClosestIndex(cursor Vec2, rects []Rect) int {
	best := -1
	bestDist := math.Inf(1)
	for i, r := range rects {
		if d := Distance(cursor, r.Center()); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}
