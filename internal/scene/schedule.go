package scene

import "math"

// Schedule alternates the active map over time. The base variant flips every
// Period seconds; during the last Lead seconds before each flip the active map
// flickers between both variants Rate times per second.
type Schedule struct {
	Start  Variant
	Period float64
	Lead   float64
	Rate   float64
}

// DefaultSchedule starts on map B, switches every 10 seconds and flickers at 9 Hz
// for the last second of each period.
func DefaultSchedule() Schedule {
	return Schedule{
		Start:  VariantB,
		Period: 10,
		Lead:   1,
		Rate:   9,
	}
}

// Base returns the variant whose theme is shown at elapsed seconds.
// A non-positive Period never switches.
func (s Schedule) Base(elapsed float64) Variant {
	if s.Period <= 0 || elapsed < 0 {
		return s.Start
	}
	if int64(math.Floor(elapsed/s.Period))%2 == 1 {
		return s.Start.Other()
	}
	return s.Start
}

// Flickering reports whether elapsed falls in the flicker window before a switch
func (s Schedule) Flickering(elapsed float64) bool {
	if s.Period <= 0 || s.Lead <= 0 || s.Rate <= 0 || elapsed < 0 {
		return false
	}
	into := math.Mod(elapsed, s.Period)
	return into >= s.Period-s.Lead
}

// Active returns the variant whose walls are cast against at elapsed seconds.
// While flickering, a square wave picks B on even steps and A on odd steps.
func (s Schedule) Active(elapsed float64) Variant {
	if !s.Flickering(elapsed) {
		return s.Base(elapsed)
	}

	// ((-1)^floor(rate*t) + 1) / 2 is 1 on even steps and 0 on odd ones
	if int64(math.Floor(s.Rate*elapsed))%2 == 0 {
		return VariantB
	}
	return VariantA
}
