// Package suggest ranks candidate names by similarity to a mistyped input,
// for "did you mean" hints in error messages.
package suggest

import (
	"sort"
	"strings"
)

// threshold is the minimum similarity score for a candidate to be offered.
const threshold = 0.5

// FindSimilar returns up to limit candidates similar to input, most similar
// first. Ties are broken alphabetically so output is deterministic.
func FindSimilar(input string, candidates []string, limit int) []string {
	if input == "" || limit <= 0 {
		return nil
	}

	type scored struct {
		name  string
		score float64
	}
	ranked := make([]scored, 0, len(candidates))
	for _, name := range candidates {
		if s := similarity(input, name); s > threshold {
			ranked = append(ranked, scored{name: name, score: s})
		}
	}
	if len(ranked) == 0 {
		return nil
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].name < ranked[j].name
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	out := make([]string, len(ranked))
	for i, s := range ranked {
		out[i] = s.name
	}
	return out
}

// similarity scores how close a is to b on a 0..1 scale: 1 for an exact
// match, a high fixed score when a is a prefix of b, otherwise normalized
// edit distance.
func similarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	if a == b {
		return 1.0
	}
	if strings.HasPrefix(b, a) {
		return 0.9
	}
	return 1.0 - float64(editDistance(a, b))/float64(max(len(a), len(b)))
}

// editDistance computes the Levenshtein distance between a and b using two
// rolling rows.
func editDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
