package tokens

import (
	"encoding/json"
	"fmt"
	"strings"

	"token-bridge/core/utils"
)

// Composite field names, in display order.
var (
	typographyFields = []string{"fontFamily", "fontWeight", "fontSize"}
	shadowFields     = []string{"offsetX", "offsetY", "blur", "color"}
)

// FormatValue renders a token value as a display string.
// Unknown kinds fall back to a generic rendering instead of failing.
func FormatValue(kind Kind, value any) string {
	switch kind {
	case KindColor, KindString:
		return formatScalar(value)
	case KindDimension:
		return formatScalar(value)
	case KindBoolean:
		return fmt.Sprintf("%t", utils.ToBool(value))
	case KindTypography:
		return formatComposite(value, typographyFields)
	case KindShadow:
		return formatComposite(value, shadowFields)
	default:
		return formatGeneric(value)
	}
}

// formatScalar stringifies a literal. DTCG dimension objects ({value, unit})
// and arrays (font stacks) are flattened to readable strings.
func formatScalar(value any) string {
	switch v := value.(type) {
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, formatScalar(item))
		}
		return strings.Join(parts, ", ")
	}

	if obj, ok := asObject(value); ok {
		if inner, ok := obj["value"]; ok {
			return utils.ToString(inner) + utils.ToString(obj["unit"])
		}
		return formatGeneric(value)
	}

	return utils.ToString(value)
}

// formatComposite joins the present fields of a composite value with spaces.
func formatComposite(value any, fields []string) string {
	obj, ok := asObject(value)
	if !ok {
		return formatGeneric(value)
	}

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		v, ok := obj[f]
		if !ok {
			continue
		}
		if s := formatScalar(v); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

func formatGeneric(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(b)
}
