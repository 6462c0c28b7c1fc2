package palette

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"token-bridge/core/palette"
	"token-bridge/core/tokens"
)

// Format is an export format for a palette.
type Format string

const (
	FormatJSON   Format = "json"
	FormatCSS    Format = "css"
	FormatSCSS   Format = "scss"
	FormatTokens Format = "tokens"
)

// ErrUnknownFormat is returned for an unsupported export format.
var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat validates an export format name. Empty selects JSON.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatCSS, FormatSCSS, FormatTokens:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// ContentType returns the HTTP content type of f.
func (f Format) ContentType() string {
	switch f {
	case FormatCSS:
		return "text/css; charset=utf-8"
	case FormatSCSS:
		return "text/x-scss; charset=utf-8"
	default:
		return "application/json"
	}
}

// Export renders p in format f.
func Export(p palette.Palette, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return json.MarshalIndent(p, "", "  ")
	case FormatCSS:
		return []byte(renderVariables(p, "  --", ":root {\n", "}\n")), nil
	case FormatSCSS:
		return []byte(renderVariables(p, "$", "", "")), nil
	case FormatTokens:
		return json.MarshalIndent(ToDocument(p), "", "  ")
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// renderVariables writes one declaration per color, scales first.
func renderVariables(p palette.Palette, prefix, open, closing string) string {
	var b strings.Builder
	b.WriteString(open)
	for _, s := range p.Scales() {
		for _, step := range palette.Steps {
			fmt.Fprintf(&b, "%s%s-%s: %s;\n", prefix, s.Name, step, s.Scale[step])
		}
	}
	for _, c := range p.Semantic() {
		fmt.Fprintf(&b, "%s%s: %s;\n", prefix, c.Name, c.Color)
	}
	b.WriteString(closing)
	return b.String()
}

// ToDocument converts p into a token document rooted at "color":
//
//	color.primary.500 -> {"$type": "color", "$value": "#6366f1"}
//	color.success     -> {"$type": "color", "$value": "#22c55e"}
func ToDocument(p palette.Palette) tokens.Document {
	root := map[string]any{}
	for _, s := range p.Scales() {
		group := map[string]any{}
		for _, step := range palette.Steps {
			group[step.String()] = colorToken(s.Scale[step])
		}
		root[s.Name] = group
	}
	for _, c := range p.Semantic() {
		root[c.Name] = colorToken(c.Color)
	}

	return tokens.Document{
		"color": root,
		tokens.MetadataKey: map[string]any{
			"seed":    p.Seed,
			"harmony": string(p.Harmony),
		},
	}
}

func colorToken(hex string) map[string]any {
	return map[string]any{
		tokens.TypeKey:  string(tokens.KindColor),
		tokens.ValueKey: hex,
	}
}
