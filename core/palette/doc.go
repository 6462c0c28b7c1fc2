// Package palette derives a complete color system from a single seed color.
//
// The engine is pure: every function is deterministic for its inputs, holds no
// state between calls, and is safe for concurrent use.
//
// # Shade Scales
//
// GenerateShades remaps a seed onto a fixed 11-step lightness ramp
// (50, 100, 200 ... 900, 950). Hue is held constant across the scale and
// saturation is damped at the very light and very dark ends so tints do not
// wash out and shades do not turn muddy.
//
// # Harmony
//
// GenerateFullPalette rotates the seed hue to obtain the secondary and accent
// roles:
//
//	complementary        +180 / +30
//	analogous            +30  / -30
//	triadic              +120 / -120
//	split-complementary  +150 / -150
//
// All rotations wrap modulo 360. The neutral scale keeps the seed hue at a low
// fixed saturation, and the semantic colors (success, warning, error, info)
// are fixed so their meaning does not change between themes.
//
// # Errors
//
// Seeds must match #RRGGBB. Anything else fails with an error that matches
// ErrInvalidColorFormat under errors.Is.
//
// # Usage
//
//	p, err := palette.GenerateFullPalette("#6366f1", palette.HarmonyComplementary)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(p.Primary[palette.Step500])
package palette
