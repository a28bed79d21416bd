// Package projection turns per-ray wall hits into the vertical strips of the
// pseudo-3D view. Everything here is a pure function of its inputs; screen size
// is passed in on every call because the window may be resized between frames.
package projection

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"chosenoffset.com/raycaster/internal/core/raycast"
)

// Ceiling is the brightness of a wall at distance zero. It falls off linearly to Ceiling-1 at
// one screen width.
const Ceiling = 0.90

// Column is one vertical strip of the pseudo-3D view
type Column struct {
	Index      int     // Ray index, which is also the screen column
	Distance   float64 // Perspective-corrected distance to the wall
	Height     float64
	Brightness float64 // Not clamped; slightly negative for far walls
	X          float64 // Left edge of the strip
	Top        float64
	Width      float64
}

// CorrectedDistance removes fisheye distortion from the raw distance of a hit
// seen along dir, given the viewer's forward direction.
func CorrectedDistance(raw float64, forward, dir mgl64.Vec2) float64 {
	angleA := mgl64.RadToDeg(raycast.AngleBetween(forward, dir))
	angleB := mgl64.DegToRad(90.0 - angleA)
	return raw * math.Sin(angleB)
}

// Height maps a corrected distance to a strip height on a width x height screen
func Height(distance, width, height float64) float64 {
	return height - (height/width)*mgl64.Clamp(distance, 0, width)
}

// Brightness maps a corrected distance to the strip intensity
func Brightness(distance, width float64) float64 {
	return Ceiling - mgl64.Clamp(distance, 0, width)/width
}

// Project builds one column per ray that hit a wall. hits must be aligned with
// view.Rays; rays that missed leave a gap instead of shifting later columns.
func Project(view raycast.View, hits []raycast.Hit, width, height float64) []Column {
	if view.FOV <= 0 || width <= 0 || height <= 0 {
		return nil
	}

	stripWidth := width / float64(view.FOV)
	columns := make([]Column, 0, len(hits))

	for i, hit := range hits {
		if !hit.OK || i >= len(view.Rays) {
			continue
		}

		raw := raycast.Distance(hit.Point, view.Position)
		distance := CorrectedDistance(raw, view.Forward, view.Rays[i].Direction)
		h := Height(distance, width, height)

		columns = append(columns, Column{
			Index:      i,
			Distance:   distance,
			Height:     h,
			Brightness: Brightness(distance, width),
			X:          float64(i) * stripWidth,
			Top:        (height - h) / 2,
			Width:      stripWidth,
		})
	}

	return columns
}
