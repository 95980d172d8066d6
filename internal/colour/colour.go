// Package colour converts colour temperatures into displayable RGB swatches.
package colour

import (
	"fmt"
	"math"
)

// RGB is an 8 bit per channel colour.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex returns the colour as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// KelvinToRGB approximates the colour of a black body at the given
// temperature using Neil Bartlett's fit to the Planckian locus.
// Temperatures at or below the fit's floor produce zero channels rather
// than an error.
func KelvinToRGB(kelvin int) RGB {
	t := float64(kelvin) / 100

	var red, green, blue float64

	if t <= 66 {
		red = 255
	} else {
		red = 329.698727466 * math.Pow(t-60, -0.1332047592)
	}

	if t <= 66 {
		green = 99.4708025861*math.Log(t) - 161.1195681661
	} else {
		green = 288.1221695283 * math.Pow(t-60, -0.0755148492)
	}

	switch {
	case t >= 66:
		blue = 255
	case t <= 19:
		blue = 0
	default:
		blue = 138.5177312231*math.Log(t-10) - 305.0447927307
	}

	return RGB{R: channel(red), G: channel(green), B: channel(blue)}
}

// channel clamps to [0, 255] then floors.
func channel(v float64) uint8 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(math.Floor(v))
}
