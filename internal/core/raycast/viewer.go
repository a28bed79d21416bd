package raycast

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultFOV is the field of view in whole degrees used when none is configured
const DefaultFOV = 70

// Viewer is the ray fan: one position shared by FOV+1 rays, one per whole degree.
// Ray i maps to screen column i, left to right, and ray FOV/2 looks forward.
type Viewer struct {
	position Point
	fov      int
	rays     []Ray
}

// NewViewer creates a viewer at pos whose rays start at 0 degrees and step
// one degree up to fov inclusive. A non-positive fov falls back to DefaultFOV.
func NewViewer(pos Point, fov int) *Viewer {
	if fov <= 0 {
		fov = DefaultFOV
	}

	rays := make([]Ray, 0, fov+1)
	for degree := 0; degree <= fov; degree++ {
		rad := float64(degree) * (math.Pi / 180.0)
		rays = append(rays, NewRay(degree, mgl64.Vec2{math.Cos(rad), math.Sin(rad)}))
	}

	return &Viewer{
		position: pos,
		fov:      fov,
		rays:     rays,
	}
}

// Position returns the viewer's location, which is also the origin of every ray
func (v *Viewer) Position() Point {
	return v.position
}

// FOV returns the field of view in degrees
func (v *Viewer) FOV() int {
	return v.fov
}

// Rays returns a copy of the fan in column order
func (v *Viewer) Rays() []Ray {
	out := make([]Ray, len(v.rays))
	copy(out, v.rays)
	return out
}

// Forward returns the direction of the center ray
func (v *Viewer) Forward() mgl64.Vec2 {
	return v.rays[v.fov/2].Direction
}

// Translate moves the viewer to (x, y). Walls are not consulted.
func (v *Viewer) Translate(x, y float64) {
	v.position = Point{X: x, Y: y}
}

// Step moves the viewer along the forward direction; negative distances move back.
func (v *Viewer) Step(distance float64) {
	v.position = PointFromVec(v.position.Vec().Add(v.Forward().Normalize().Mul(distance)))
}

// Rotate turns every ray by the same signed angle in radians.
// Only directions change; the position stays where it is.
func (v *Viewer) Rotate(angle float64) {
	for i := range v.rays {
		v.rays[i] = v.rays[i].Rotate(angle)
	}
}

// Look casts every ray against walls and returns one Hit per ray, in ray order.
// Each hit is the intersection closest to the viewer; on equal distances the
// wall that comes first in walls wins.
func (v *Viewer) Look(walls []Segment) []Hit {
	hits := make([]Hit, len(v.rays))

	for i, ray := range v.rays {
		closestDist := math.Inf(1)

		for w, seg := range walls {
			point, ok := ray.Cast(v.position, seg)
			if !ok {
				continue
			}
			if dist := Distance(v.position, point); dist < closestDist {
				closestDist = dist
				hits[i] = Hit{Point: point, Wall: w, OK: true}
			}
		}
	}

	return hits
}

// View is an immutable copy of the viewer's state, taken before movement is applied
type View struct {
	Position Point
	Forward  mgl64.Vec2
	Rays     []Ray
	FOV      int
}

// Snapshot captures the current position and ray directions
func (v *Viewer) Snapshot() View {
	return View{
		Position: v.position,
		Forward:  v.Forward(),
		Rays:     v.Rays(),
		FOV:      v.fov,
	}
}
