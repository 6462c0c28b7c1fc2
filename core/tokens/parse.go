package tokens

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ErrInvalidDocument is returned when a token document cannot be decoded.
var ErrInvalidDocument = errors.New("invalid token document")

// Parse decodes a JSON or YAML token document.
// Empty input yields an empty document.
func Parse(data []byte) (Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Document{}, nil
	}

	doc := Document{}
	if trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
		return doc, nil
	}

	var raw any
	if err := yaml.Unmarshal(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if raw == nil {
		return doc, nil
	}
	root, ok := stringKeys(raw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top level is %T, not a mapping", ErrInvalidDocument, raw)
	}
	return Document(root), nil
}

// stringKeys rewrites the maps yaml.v3 produces for non-string keys
// (500: under a shade group) into map[string]any, at every depth.
func stringKeys(v any) any {
	switch node := v.(type) {
	case map[string]any:
		for k, child := range node {
			node[k] = stringKeys(child)
		}
		return node
	case map[any]any:
		out := make(map[string]any, len(node))
		for k, child := range node {
			out[fmt.Sprint(k)] = stringKeys(child)
		}
		return out
	case []any:
		for i, child := range node {
			node[i] = stringKeys(child)
		}
		return node
	default:
		return v
	}
}

// ParseReader reads r fully and decodes it with Parse.
func ParseReader(r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read token document: %w", err)
	}
	return Parse(data)
}
