package palette

import "strconv"

// Step is a shade scale label.
type Step int

const (
	Step50  Step = 50
	Step100 Step = 100
	Step200 Step = 200
	Step300 Step = 300
	Step400 Step = 400
	Step500 Step = 500
	Step600 Step = 600
	Step700 Step = 700
	Step800 Step = 800
	Step900 Step = 900
	Step950 Step = 950
)

// Steps lists every scale step from lightest to darkest.
var Steps = []Step{Step50, Step100, Step200, Step300, Step400, Step500, Step600, Step700, Step800, Step900, Step950}

// String returns the step label, e.g. "500".
func (s Step) String() string {
	return strconv.Itoa(int(s))
}

// lightnessRamp is the target lightness per step, near-white to near-black.
var lightnessRamp = map[Step]float64{
	Step50:  97,
	Step100: 93,
	Step200: 85,
	Step300: 75,
	Step400: 64,
	Step500: 54,
	Step600: 45,
	Step700: 37,
	Step800: 29,
	Step900: 21,
	Step950: 13,
}

// saturationDamping scales the base saturation at the ends of the ramp.
var saturationDamping = map[Step]float64{
	Step50:  0.75,
	Step100: 0.85,
	Step200: 0.95,
	Step300: 1,
	Step400: 1,
	Step500: 1,
	Step600: 1,
	Step700: 1,
	Step800: 0.95,
	Step900: 0.9,
	Step950: 0.85,
}

// Scale maps each step to a #rrggbb color.
type Scale map[Step]string

// Ordered returns the scale colors from step 50 to 950.
func (s Scale) Ordered() []string {
	out := make([]string, 0, len(Steps))
	for _, step := range Steps {
		out = append(out, s[step])
	}
	return out
}

// GenerateShades builds an 11-step scale from a #RRGGBB seed.
func GenerateShades(seed string) (Scale, error) {
	base, err := ParseHex(seed)
	if err != nil {
		return nil, err
	}
	return shadesFromHSL(base), nil
}

// shadesFromHSL builds a scale for a base hue and saturation. The base
// lightness is ignored; every step takes its lightness from the ramp.
func shadesFromHSL(base HSL) Scale {
	scale := make(Scale, len(Steps))
	for _, step := range Steps {
		scale[step] = shadeHSL(base, step).Hex()
	}
	return scale
}

func shadeHSL(base HSL, step Step) HSL {
	return HSL{
		H: NormalizeHue(base.H),
		S: ClampPercent(base.S * saturationDamping[step]),
		L: lightnessRamp[step],
	}
}
