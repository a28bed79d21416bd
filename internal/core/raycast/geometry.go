package raycast

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Distance calculates the Euclidean distance between two points
func Distance(a, b Point) float64 {
	return b.Vec().Sub(a.Vec()).Len()
}

// AngleBetween returns the unsigned angle in radians between two direction vectors.
// The cosine is clamped so rounding on parallel vectors cannot produce NaN.
func AngleBetween(a, b mgl64.Vec2) float64 {
	la, lb := a.Len(), b.Len()
	if la == 0 || lb == 0 {
		return 0
	}
	cos := a.Dot(b) / (la * lb)
	return math.Acos(mgl64.Clamp(cos, -1, 1))
}

// normalize returns v scaled to unit length, or v itself when it has no length
func normalize(v mgl64.Vec2) mgl64.Vec2 {
	if v.Len() == 0 {
		return v
	}
	return v.Normalize()
}
