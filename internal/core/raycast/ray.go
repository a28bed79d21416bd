package raycast

import "github.com/go-gl/mathgl/mgl64"

// Ray is one probe of the viewer's fan. It carries only a unit direction and its
// column index; the origin is always the owning viewer's position.
type Ray struct {
	Index     int
	Direction mgl64.Vec2
}

// NewRay creates a ray with the supplied direction normalized.
// A zero direction is kept as is and never hits anything.
func NewRay(index int, dir mgl64.Vec2) Ray {
	return Ray{Index: index, Direction: normalize(dir)}
}

// Rotate returns the ray turned by angle radians around its own origin.
func (r Ray) Rotate(angle float64) Ray {
	r.Direction = normalize(mgl64.Rotate2D(angle).Mul2x1(r.Direction))
	return r
}

// Cast intersects the ray, fired from origin, with a wall segment.
// Returns the intersection point and true when the ray crosses the open segment
// strictly ahead of origin. Touching an endpoint, or starting on the segment's
// first point, is not a hit. Exactly parallel lines never hit.
func (r Ray) Cast(origin Point, seg Segment) (Point, bool) {
	x1, y1 := seg.A.X, seg.A.Y
	x2, y2 := seg.B.X, seg.B.Y

	// The ray as a line through origin and origin+direction
	x3, y3 := origin.X, origin.Y
	x4, y4 := origin.X+r.Direction.X(), origin.Y+r.Direction.Y()

	den := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if den == 0 {
		return Point{}, false
	}

	// t is the segment parameter, u the ray parameter
	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / den
	u := -((x1-x2)*(y1-y3) - (y1-y2)*(x1-x3)) / den

	if t > 0 && t < 1 && u > 0 {
		return Point{
			X: x1 + t*(x2-x1),
			Y: y1 + t*(y2-y1),
		}, true
	}

	return Point{}, false
}
