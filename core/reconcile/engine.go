package reconcile

import (
	"sort"
	"strings"

	"token-bridge/core/tokens"
)

// Compare classifies every variable in snapshot and every token in toks.
// mode selects the variable mode to compare; when empty, the first mode found
// in variable scan order is used. A nil snapshot is treated as empty.
func Compare(snapshot *Snapshot, toks []tokens.Token, mode string) Result {
	var variables []Variable
	if snapshot != nil {
		variables = snapshot.Variables
	}

	effectiveMode := ResolveMode(variables, mode)

	// Build indices: last insert wins the lookup slot.
	varIndex := make(map[string]int, len(variables))
	varKeys := make([]string, len(variables))
	duplicates := make(map[string]struct{})
	for i, v := range variables {
		key := BuildMatchKey(v.CollectionName, v.Name)
		varKeys[i] = key
		if _, exists := varIndex[key]; exists {
			duplicates[key] = struct{}{}
		}
		varIndex[key] = i
	}

	// Token-only items are filed under the variable collection sharing their
	// first key segment, so one namespace is reported once.
	collectionBySegment := make(map[string]string)
	for _, v := range variables {
		seg := normalizeSegment(v.CollectionName)
		if _, ok := collectionBySegment[seg]; !ok {
			collectionBySegment[seg] = v.CollectionName
		}
	}

	tokIndex := make(map[string]int, len(toks))
	tokKeys := make([]string, len(toks))
	for i, t := range toks {
		key := TokenMatchKey(t.Path)
		tokKeys[i] = key
		if _, exists := tokIndex[key]; exists {
			duplicates[key] = struct{}{}
		}
		tokIndex[key] = i
	}

	items := make([]Item, 0, len(variables)+len(toks))
	matched := make([]bool, len(toks))

	// Variables, in scan order
	for i := range variables {
		key := varKeys[i]
		v := variables[i]
		item := variableItem(v, key, effectiveMode)

		if varIndex[key] == i {
			if ti, ok := tokIndex[key]; ok {
				t := toks[ti]
				matched[ti] = true
				item.Token = &t
				item.Kind = t.Kind

				tokenValue := tokenComparable(t)
				item.DisplayValues.Token = displayValue(tokenValue)
				if NormalizeForComparison(variableComparable(v, variableValue(v, effectiveMode))) == NormalizeForComparison(tokenValue) {
					item.Status = StatusSynced
				} else {
					item.Status = StatusNeedsSync
				}
			}
		}

		items = append(items, item)
	}

	// Remaining tokens
	for i := range toks {
		if matched[i] {
			continue
		}
		items = append(items, tokenItem(toks[i], tokKeys[i], collectionBySegment))
	}

	sort.SliceStable(items, func(a, b int) bool {
		if items[a].Collection != items[b].Collection {
			return items[a].Collection < items[b].Collection
		}
		if items[a].MatchKey != items[b].MatchKey {
			return items[a].MatchKey < items[b].MatchKey
		}
		return items[a].ID < items[b].ID
	})

	result := Result{
		Items:       items,
		Collections: make([]string, 0),
		Modes:       collectModes(variables),
		Mode:        effectiveMode,
	}

	collections := make(map[string]struct{})
	for _, item := range items {
		result.Summary.add(item.Status)
		if _, ok := collections[item.Collection]; !ok {
			collections[item.Collection] = struct{}{}
			result.Collections = append(result.Collections, item.Collection)
		}
	}
	sort.Strings(result.Collections)

	if len(duplicates) > 0 {
		result.Duplicates = make([]string, 0, len(duplicates))
		for key := range duplicates {
			result.Duplicates = append(result.Duplicates, key)
		}
		sort.Strings(result.Duplicates)
	}

	return result
}

// CompareStrict is Compare, but fails with a DuplicateKeyError when any match
// key is claimed twice on the same side. The full result is still returned.
func CompareStrict(snapshot *Snapshot, toks []tokens.Token, mode string) (Result, error) {
	result := Compare(snapshot, toks, mode)
	if len(result.Duplicates) > 0 {
		return result, &DuplicateKeyError{Keys: result.Duplicates}
	}
	return result, nil
}

// ResolveMode returns selected when set, otherwise the first mode name found
// while scanning variables in order. It returns "" when no variable has modes.
func ResolveMode(variables []Variable, selected string) string {
	if selected != "" {
		return selected
	}
	for _, v := range variables {
		for _, mv := range v.ValuesByMode {
			return mv.Mode
		}
	}
	return ""
}

// variableItem builds an item for v. Status defaults to variable-only and is
// upgraded by the caller when a token matches.
func variableItem(v Variable, key, mode string) Item {
	vc := v
	item := Item{
		ID:         v.ID,
		Variable:   &vc,
		MatchKey:   key,
		Collection: v.CollectionName,
		Status:     StatusVariableOnly,
		Kind:       v.Kind.TokenKind(),
		DisplayValues: DisplayValues{
			Variable: displayValue(variableComparable(v, variableValue(v, mode))),
		},
	}

	if len(v.ValuesByMode) > 0 {
		item.DisplayValues.Modes = make(map[string]string, len(v.ValuesByMode))
		for _, mv := range v.ValuesByMode {
			item.DisplayValues.Modes[mv.Mode] = displayValue(variableComparable(v, mv.Value))
		}
	}
	return item
}

func tokenItem(t tokens.Token, key string, collectionBySegment map[string]string) Item {
	tc := t
	return Item{
		ID:         "token:" + t.Path,
		Token:      &tc,
		MatchKey:   key,
		Collection: tokenCollection(t.Path, key, collectionBySegment),
		Status:     StatusTokenOnly,
		Kind:       t.Kind,
		DisplayValues: DisplayValues{
			Token: displayValue(tokenComparable(t)),
		},
	}
}

// tokenCollection is the variable collection whose normalized name equals the
// first segment of key. Without one it is the first path segment as written.
func tokenCollection(path, key string, collectionBySegment map[string]string) string {
	if name, ok := collectionBySegment[firstSegment(key)]; ok {
		return name
	}
	return firstSegment(path)
}

func firstSegment(path string) string {
	if i := strings.IndexByte(path, '.'); i >= 0 {
		return path[:i]
	}
	return path
}

func collectModes(variables []Variable) []string {
	seen := make(map[string]struct{})
	modes := make([]string, 0)
	for _, v := range variables {
		for _, mv := range v.ValuesByMode {
			if _, ok := seen[mv.Mode]; ok {
				continue
			}
			seen[mv.Mode] = struct{}{}
			modes = append(modes, mv.Mode)
		}
	}
	sort.Strings(modes)
	return modes
}
