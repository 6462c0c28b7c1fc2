package palette

import (
	"fmt"
	"strings"
)

// Harmony selects how companion hues are derived from the seed hue.
type Harmony string

const (
	HarmonyComplementary      Harmony = "complementary"
	HarmonyAnalogous          Harmony = "analogous"
	HarmonyTriadic            Harmony = "triadic"
	HarmonySplitComplementary Harmony = "split-complementary"
)

// Harmonies lists the supported harmony modes.
var Harmonies = []Harmony{HarmonyComplementary, HarmonyAnalogous, HarmonyTriadic, HarmonySplitComplementary}

// neutralSaturation keeps neutrals tinted toward the seed hue instead of pure gray.
const neutralSaturation = 8

// Semantic base colors. They do not depend on the seed.
const (
	SuccessColor = "#22c55e"
	WarningColor = "#f59e0b"
	ErrorColor   = "#ef4444"
	InfoColor    = "#3b82f6"
)

// ParseHarmony validates a harmony mode name.
func ParseHarmony(s string) (Harmony, error) {
	h := Harmony(strings.ToLower(strings.TrimSpace(s)))
	if _, _, ok := h.offsets(); !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownHarmony, s)
	}
	return h, nil
}

// offsets returns the hue rotation for the secondary and accent roles.
func (h Harmony) offsets() (secondary, accent float64, ok bool) {
	switch h {
	case HarmonyComplementary:
		return 180, 30, true
	case HarmonyAnalogous:
		return 30, -30, true
	case HarmonyTriadic:
		return 120, -120, true
	case HarmonySplitComplementary:
		return 150, -150, true
	default:
		return 0, 0, false
	}
}

// Palette is the full color system derived from one seed.
type Palette struct {
	Seed    string  `json:"seed"`
	Harmony Harmony `json:"harmony"`

	Primary   Scale `json:"primary"`
	Secondary Scale `json:"secondary"`
	Accent    Scale `json:"accent"`
	Neutral   Scale `json:"neutral"`

	Success string `json:"success"`
	Warning string `json:"warning"`
	Error   string `json:"error"`
	Info    string `json:"info"`
}

// Scales returns the four shade scales in role order.
func (p Palette) Scales() []NamedScale {
	return []NamedScale{
		{Name: "primary", Scale: p.Primary},
		{Name: "secondary", Scale: p.Secondary},
		{Name: "accent", Scale: p.Accent},
		{Name: "neutral", Scale: p.Neutral},
	}
}

// Semantic returns the semantic colors in role order.
func (p Palette) Semantic() []NamedColor {
	return []NamedColor{
		{Name: "success", Color: p.Success},
		{Name: "warning", Color: p.Warning},
		{Name: "error", Color: p.Error},
		{Name: "info", Color: p.Info},
	}
}

// NamedScale pairs a role name with its scale.
type NamedScale struct {
	Name  string
	Scale Scale
}

// NamedColor pairs a role name with a single color.
type NamedColor struct {
	Name  string
	Color string
}

// GenerateFullPalette derives every palette role from a #RRGGBB seed.
func GenerateFullPalette(seed string, harmony Harmony) (Palette, error) {
	base, err := ParseHex(seed)
	if err != nil {
		return Palette{}, err
	}

	secondaryOffset, accentOffset, ok := harmony.offsets()
	if !ok {
		return Palette{}, fmt.Errorf("%w: %q", ErrUnknownHarmony, string(harmony))
	}

	secondary := HSL{H: RotateHue(base.H, secondaryOffset), S: base.S}
	accent := HSL{H: RotateHue(base.H, accentOffset), S: base.S}
	neutral := HSL{H: base.H, S: neutralSaturation}

	return Palette{
		Seed:      strings.ToLower(seed),
		Harmony:   harmony,
		Primary:   shadesFromHSL(base),
		Secondary: shadesFromHSL(secondary),
		Accent:    shadesFromHSL(accent),
		Neutral:   shadesFromHSL(neutral),
		Success:   SuccessColor,
		Warning:   WarningColor,
		Error:     ErrorColor,
		Info:      InfoColor,
	}, nil
}
