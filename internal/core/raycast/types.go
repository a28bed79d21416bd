package raycast

import "github.com/go-gl/mathgl/mgl64"

// Point represents a 2D point in space
type Point struct {
	X, Y float64
}

// Vec returns the point as a mathgl vector
func (p Point) Vec() mgl64.Vec2 {
	return mgl64.Vec2{p.X, p.Y}
}

// PointFromVec converts a mathgl vector back into a Point
func PointFromVec(v mgl64.Vec2) Point {
	return Point{X: v.X(), Y: v.Y()}
}

// Segment represents a wall between two fixed points.
// A and B must differ; scene loading rejects degenerate walls.
type Segment struct {
	A, B Point
}

// NewSegment creates a wall from A to B
func NewSegment(a, b Point) Segment {
	return Segment{A: a, B: b}
}

// Hit is the nearest intersection of one ray with a wall set.
// OK is false when the ray crossed nothing.
type Hit struct {
	Point Point
	Wall  int // Index of the wall in the set that was hit
	OK    bool
}
