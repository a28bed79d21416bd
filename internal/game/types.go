package game

import (
	"chosenoffset.com/raycaster/internal/core/projection"
	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/scene"
)

// Frame is everything Draw needs, captured in Update after casting and before
// input moves the viewer. Movement therefore shows up from the next frame on.
type Frame struct {
	Active  scene.Variant // Map whose walls were cast against
	Theme   projection.Theme
	Walls   []raycast.Segment
	View    raycast.View
	Hits    []raycast.Hit
	Project bool // Draw the pseudo-3D view instead of the top-down one
}

// HitCount returns how many rays found a wall
func (f Frame) HitCount() int {
	n := 0
	for _, hit := range f.Hits {
		if hit.OK {
			n++
		}
	}
	return n
}
