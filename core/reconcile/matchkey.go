package reconcile

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"token-bridge/core/tokens"
	"token-bridge/core/utils"

	"github.com/lucasb-eyer/go-colorful"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// BuildMatchKey builds the canonical key for a name inside a collection or
// group. The name is split on "/", the collection becomes the first segment,
// each segment is trimmed, lowercased and has whitespace runs collapsed to a
// single hyphen, and the segments are joined with ".".
//
//	BuildMatchKey("Colors", "Primary/500")  // "colors.primary.500"
//	BuildMatchKey("Brand Kit", "Text  Main") // "brand-kit.text-main"
func BuildMatchKey(collection, name string) string {
	parts := strings.Split(name, "/")
	segments := make([]string, 0, len(parts)+1)
	segments = append(segments, normalizeSegment(collection))
	for _, p := range parts {
		segments = append(segments, normalizeSegment(p))
	}
	return strings.Join(segments, ".")
}

// TokenMatchKey is the key a token is indexed under: its lowercased path.
func TokenMatchKey(path string) string {
	return strings.ToLower(path)
}

func normalizeSegment(s string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "-")
}

// NormalizeForComparison renders a value into the form both sides are compared
// in: nil is "", booleans are "true"/"false", numbers are their decimal
// string, and everything else is its string form, trimmed and lowercased.
func NormalizeForComparison(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case bool:
		return strconv.FormatBool(v)
	}
	if s, ok := utils.FormatNumber(value); ok {
		return s
	}
	return strings.ToLower(strings.TrimSpace(utils.ToString(value)))
}

// variableValue resolves the raw value of v in mode, falling back to the
// default value.
func variableValue(v Variable, mode string) any {
	if mode != "" {
		if val, ok := v.ValuesByMode.Get(mode); ok {
			return val
		}
	}
	return v.DefaultValue
}

// variableComparable turns design-tool value shapes into literals: RGBA
// objects become hex strings and alias references become "{dotted.path}".
func variableComparable(v Variable, raw any) any {
	obj, ok := raw.(map[string]any)
	if !ok {
		return raw
	}

	if t, _ := obj["type"].(string); t == "VARIABLE_ALIAS" {
		if v.AliasName != "" {
			return "{" + strings.ReplaceAll(v.AliasName, "/", ".") + "}"
		}
		if id, ok := obj["id"].(string); ok {
			return "{" + id + "}"
		}
	}

	if hex, ok := rgbaHex(obj); ok {
		return hex
	}
	return raw
}

// rgbaHex renders an {r,g,b[,a]} object with channels in [0,1] as #rrggbb,
// or #rrggbbaa when alpha is below 1.
func rgbaHex(obj map[string]any) (string, bool) {
	r, okR := channel(obj["r"])
	g, okG := channel(obj["g"])
	b, okB := channel(obj["b"])
	if !okR || !okG || !okB {
		return "", false
	}

	hex := colorful.Color{R: r, G: g, B: b}.Clamped().Hex()
	if a, ok := channel(obj["a"]); ok && a < 1 {
		if a < 0 {
			a = 0
		}
		hex += fmt.Sprintf("%02x", uint8(a*255+0.5))
	}
	return hex, true
}

func channel(v any) (float64, bool) {
	s, ok := utils.FormatNumber(v)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// tokenComparable returns the literal a token is compared by. Composite
// values are compared by their display rendering.
func tokenComparable(t tokens.Token) any {
	switch t.Value.(type) {
	case map[string]any, []any:
		return tokens.FormatValue(t.Kind, t.Value)
	default:
		return t.Value
	}
}

// displayValue renders a comparable value for presentation.
func displayValue(value any) string {
	return utils.ToString(value)
}
