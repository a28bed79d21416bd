package projection

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Theme selects the palette of the view. It alternates with the active map.
type Theme int

const (
	ThemeGreen Theme = iota
	ThemeRed
)

// String returns the theme name for logging
func (t Theme) String() string {
	switch t {
	case ThemeGreen:
		return "green"
	case ThemeRed:
		return "red"
	default:
		return "unknown"
	}
}

// Wall returns the color walls are outlined with in the top-down view.
// It panics on a value that is not one of the declared themes.
func (t Theme) Wall() color.NRGBA {
	switch t {
	case ThemeGreen:
		return color.NRGBA{0, 228, 48, 255}
	case ThemeRed:
		return color.NRGBA{230, 41, 55, 255}
	}
	panic(fmt.Sprintf("projection: unknown theme %d", int(t)))
}

// Shade returns the strip color for a brightness under the given theme.
// Brightness drives alpha and one color channel; blue is fixed at 0.25.
// Channels are clamped to [0, 1] here, at conversion to 8 bits, so the
// column itself keeps the unclamped value.
func Shade(theme Theme, brightness float64) color.NRGBA {
	switch theme {
	case ThemeGreen:
		return nrgba(0, brightness, 0.25, brightness)
	case ThemeRed:
		return nrgba(brightness, 0, 0.25, brightness)
	}
	panic(fmt.Sprintf("projection: unknown theme %d", int(theme)))
}

func nrgba(r, g, b, a float64) color.NRGBA {
	return color.NRGBA{
		R: channel(r),
		G: channel(g),
		B: channel(b),
		A: channel(a),
	}
}

func channel(v float64) uint8 {
	return uint8(mgl64.Clamp(v, 0, 1)*255 + 0.5)
}
