package scene

import (
	"fmt"

	"chosenoffset.com/raycaster/internal/core/projection"
	"chosenoffset.com/raycaster/internal/core/raycast"
)

// Variant selects one of the two alternating maps
type Variant int

const (
	VariantA Variant = iota
	VariantB
)

// String returns the variant name for logging
func (v Variant) String() string {
	switch v {
	case VariantA:
		return "A"
	case VariantB:
		return "B"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Other returns the variant that is not v
func (v Variant) Other() Variant {
	if v == VariantA {
		return VariantB
	}
	return VariantA
}

// Theme returns the palette that goes with the variant
func (v Variant) Theme() projection.Theme {
	if v == VariantB {
		return projection.ThemeRed
	}
	return projection.ThemeGreen
}

// MapSet holds the wall sets of both variants, built once for a screen size
type MapSet struct {
	NameA, NameB string
	A, B         []raycast.Segment
}

// NewMapSet builds the wall sets of two maps for a width x height screen
func NewMapSet(a, b *Map, width, height float64) *MapSet {
	return &MapSet{
		NameA: a.Name(),
		NameB: b.Name(),
		A:     a.Segments(width, height),
		B:     b.Segments(width, height),
	}
}

// Walls returns the wall set of the given variant. It panics on a value that is
// neither VariantA nor VariantB.
func (s *MapSet) Walls(v Variant) []raycast.Segment {
	switch v {
	case VariantA:
		return s.A
	case VariantB:
		return s.B
	}
	panic(fmt.Sprintf("scene: unknown map variant %d", int(v)))
}

// Name returns the display name of the given variant's map
func (s *MapSet) Name(v Variant) string {
	switch v {
	case VariantA:
		return s.NameA
	case VariantB:
		return s.NameB
	}
	panic(fmt.Sprintf("scene: unknown map variant %d", int(v)))
}
