package list

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FilterWrappers returns the wrappers whose titles match the supplied query.
// An empty query returns a copy of the input unchanged.
func FilterWrappers(items []Wrapper, query string) []Wrapper {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		dup := make([]Wrapper, len(items))
		copy(dup, items)
		return dup
	}
	titles := make([]string, len(items))
	for i, w := range items {
		titles[i] = w.Item.Title()
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, titles)
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]Wrapper, 0, len(matches))
		for idx, w := range items {
			if _, ok := matches[idx]; ok {
				filtered = append(filtered, w)
			}
		}
		if len(filtered) > 0 {
			return filtered
		}
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]Wrapper, 0, len(items))
	for _, w := range items {
		if strings.Contains(strings.ToLower(w.Item.Title()), lower) ||
			strings.Contains(strings.ToLower(w.Item.Key()), lower) {
			filtered = append(filtered, w)
		}
	}
	return filtered
}
