package tokens

import (
	"sort"
	"strings"
)

// Flatten returns every leaf token of doc in depth-first pre-order.
// A nil document yields an empty, non-nil slice.
func Flatten(doc Document) []Token {
	out := make([]Token, 0)
	if doc == nil {
		return out
	}

	// ancestors is shared across the walk and truncated on return, so path
	// strings are only built once per leaf.
	ancestors := make([]string, 0, 8)
	walk(map[string]any(doc), ancestors, &out)
	return out
}

func walk(node map[string]any, ancestors []string, out *[]Token) {
	for _, key := range sortedKeys(node) {
		if isReserved(key) {
			continue
		}

		child, ok := asObject(node[key])
		if !ok {
			continue
		}

		if isLeaf(child) {
			*out = append(*out, newToken(ancestors, key, child))
			continue
		}

		walk(child, append(ancestors, key), out)
	}
}

func newToken(ancestors []string, name string, node map[string]any) Token {
	group := RootGroup
	path := name
	if len(ancestors) > 0 {
		group = strings.Join(ancestors, ".")
		path = group + "." + name
	}

	kind, _ := node[TypeKey].(string)
	tok := Token{
		Path:  path,
		Group: group,
		Name:  name,
		Kind:  Kind(kind),
		Value: node[ValueKey],
	}
	if desc, ok := node[DescriptionKey].(string); ok {
		tok.Description = desc
	}
	if ext, ok := asObject(node[ExtensionsKey]); ok {
		tok.Extensions = ext
	}
	return tok
}

func isReserved(key string) bool {
	return strings.HasPrefix(key, MarkerPrefix) || key == MetadataKey
}

func isLeaf(node map[string]any) bool {
	_, hasType := node[TypeKey]
	_, hasValue := node[ValueKey]
	return hasType && hasValue
}

// asObject accepts the object shapes produced by encoding/json and yaml.v3.
func asObject(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Document:
		return map[string]any(m), true
	default:
		return nil, false
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Regroup buckets tokens by Group, preserving their relative order.
func Regroup(toks []Token) map[string][]Token {
	groups := make(map[string][]Token)
	for _, t := range toks {
		groups[t.Group] = append(groups[t.Group], t)
	}
	return groups
}
