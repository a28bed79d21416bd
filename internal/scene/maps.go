// Package scene holds the wall maps the viewer looks at: loading them from JSON,
// the two built-in maps, and the timer that alternates between them.
package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"chosenoffset.com/raycaster/internal/core/raycast"
)

var (
	ErrNoWalls        = errors.New("map has no walls")
	ErrDegenerateWall = errors.New("wall endpoints are identical")
)

// PointData is a point as written in map files
type PointData struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// WallData is a single wall as written in map files
type WallData struct {
	A PointData `json:"a"`
	B PointData `json:"b"`
}

// MapData represents the loaded map configuration
type MapData struct {
	Name     string     `json:"name"`
	Boundary bool       `json:"boundary"` // Enclose the map with walls along the screen edges
	Walls    []WallData `json:"walls"`
}

// Map is a validated map ready to be turned into wall segments
type Map struct {
	Data *MapData
	Path string
}

// LoadMap loads a map from a JSON file
func LoadMap(mapPath string) (*Map, error) {
	data, err := os.ReadFile(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", mapPath, err)
	}

	var mapData MapData
	if err := json.Unmarshal(data, &mapData); err != nil {
		return nil, fmt.Errorf("failed to parse map file %s: %w", mapPath, err)
	}

	if err := validateMapData(&mapData); err != nil {
		return nil, fmt.Errorf("invalid map data in %s: %w", mapPath, err)
	}

	return &Map{Data: &mapData, Path: mapPath}, nil
}

// validateMapData checks if the map data is valid
func validateMapData(data *MapData) error {
	if len(data.Walls) == 0 && !data.Boundary {
		return ErrNoWalls
	}

	for i, wall := range data.Walls {
		if wall.A == wall.B {
			return fmt.Errorf("wall %d at (%g, %g): %w", i, wall.A.X, wall.A.Y, ErrDegenerateWall)
		}
	}

	return nil
}

// Name returns the display name of the map, falling back to its file path
func (m *Map) Name() string {
	if m.Data.Name != "" {
		return m.Data.Name
	}
	return m.Path
}

// Segments builds the wall set for a width x height screen. Boundary walls, when
// enabled, come first so they win distance ties against interior walls.
func (m *Map) Segments(width, height float64) []raycast.Segment {
	var segments []raycast.Segment
	if m.Data.Boundary {
		segments = append(segments, Boundary(width, height)...)
	}
	for _, wall := range m.Data.Walls {
		segments = append(segments, raycast.NewSegment(
			raycast.Point{X: wall.A.X, Y: wall.A.Y},
			raycast.Point{X: wall.B.X, Y: wall.B.Y},
		))
	}
	return segments
}

// Boundary returns the left, top, right and bottom edges of a width x height screen.
// The top-left corner sits at (1, 1) so the edges stay on screen.
func Boundary(width, height float64) []raycast.Segment {
	return []raycast.Segment{
		raycast.NewSegment(raycast.Point{X: 1, Y: 1}, raycast.Point{X: 1, Y: height}),
		raycast.NewSegment(raycast.Point{X: 1, Y: 1}, raycast.Point{X: width, Y: 1}),
		raycast.NewSegment(raycast.Point{X: width, Y: 1}, raycast.Point{X: width, Y: height}),
		raycast.NewSegment(raycast.Point{X: 1, Y: height}, raycast.Point{X: width, Y: height}),
	}
}
