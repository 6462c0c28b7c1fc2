package palette

import (
	"math"
	"regexp"

	"github.com/lucasb-eyer/go-colorful"
)

var hexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// HSL is a color in hue/saturation/lightness space.
// H is in degrees [0,360). S and L are percentages in [0,100].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// ParseHex parses a #RRGGBB string into HSL.
func ParseHex(s string) (HSL, error) {
	if !hexPattern.MatchString(s) {
		return HSL{}, &ColorFormatError{Input: s}
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return HSL{}, &ColorFormatError{Input: s}
	}

	h, sat, l := c.Hsl()
	return HSL{
		H: NormalizeHue(h),
		S: ClampPercent(sat * 100),
		L: ClampPercent(l * 100),
	}, nil
}

// Hex encodes the color as a lowercase #rrggbb string.
func (c HSL) Hex() string {
	col := colorful.Hsl(NormalizeHue(c.H), ClampPercent(c.S)/100, ClampPercent(c.L)/100)
	return col.Clamped().Hex()
}

// NormalizeHue wraps any angle into [0,360).
func NormalizeHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// -1e-15 + 360 rounds to 360
	if h >= 360 {
		h = 0
	}
	return h
}

// RotateHue adds degrees to a hue with wraparound.
func RotateHue(h, degrees float64) float64 {
	return NormalizeHue(h + degrees)
}

// ClampPercent limits v to [0,100].
func ClampPercent(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(100, v))
}
