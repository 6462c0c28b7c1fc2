package tokens

import "sort"

// Summarize counts tokens per kind and collects the distinct groups.
func Summarize(toks []Token) Summary {
	summary := Summary{
		Total:  len(toks),
		ByKind: make(map[Kind]int),
		Groups: make([]string, 0),
	}

	seen := make(map[string]struct{})
	for _, t := range toks {
		summary.ByKind[t.Kind]++
		if _, ok := seen[t.Group]; !ok {
			seen[t.Group] = struct{}{}
			summary.Groups = append(summary.Groups, t.Group)
		}
	}
	sort.Strings(summary.Groups)

	return summary
}
