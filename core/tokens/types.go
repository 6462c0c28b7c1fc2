package tokens

// Kind is the type marker of a token.
type Kind string

const (
	KindColor      Kind = "color"
	KindDimension  Kind = "dimension"
	KindString     Kind = "string"
	KindBoolean    Kind = "boolean"
	KindTypography Kind = "typography"
	KindShadow     Kind = "shadow"
)

// Kinds lists the known token kinds.
var Kinds = []Kind{KindColor, KindDimension, KindString, KindBoolean, KindTypography, KindShadow}

// IsKnown reports whether k is one of the known kinds.
func (k Kind) IsKnown() bool {
	switch k {
	case KindColor, KindDimension, KindString, KindBoolean, KindTypography, KindShadow:
		return true
	default:
		return false
	}
}

// Reserved document markers.
const (
	// MarkerPrefix starts every reserved key ("$type", "$value", "$description" ...).
	MarkerPrefix = "$"
	// TypeKey is the kind marker of a leaf token.
	TypeKey = "$type"
	// ValueKey is the value marker of a leaf token.
	ValueKey = "$value"
	// DescriptionKey holds the optional token description.
	DescriptionKey = "$description"
	// ExtensionsKey holds optional vendor extensions.
	ExtensionsKey = "$extensions"
	// MetadataKey is skipped wherever it appears.
	MetadataKey = "metadata"
	// RootGroup is the Group of tokens that sit at the top level.
	RootGroup = "(root)"
)

// Document is a nested token tree as decoded from JSON or YAML.
type Document map[string]any

// Token is a single leaf of a Document.
type Token struct {
	// Path is the dot-delimited location of the token, e.g. "colors.primary.500".
	Path string `json:"path"`
	// Group is the ancestor path, or RootGroup for top-level tokens.
	Group string `json:"group"`
	// Name is the leaf segment.
	Name string `json:"name"`
	// Kind is the token's $type.
	Kind Kind `json:"kind"`
	// Value is the raw $value.
	Value any `json:"value"`
	// Description is the optional $description.
	Description string `json:"description,omitempty"`
	// Extensions holds the optional $extensions object.
	Extensions map[string]any `json:"extensions,omitempty"`
}

// Summary aggregates a flat token list.
type Summary struct {
	Total  int          `json:"total"`
	ByKind map[Kind]int `json:"by_kind"`
	Groups []string     `json:"groups"`
}
