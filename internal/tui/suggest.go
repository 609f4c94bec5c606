package tui

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/lambdapad/lambdapad/internal/workspace"
)

// similarity is 1 for identical names, approaching 0 as they diverge.
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	if n == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(n)
}

// rankEntries orders entries by how well their names match query, best
// first. Substring matches outrank pure edit-distance neighbors so that a
// partially typed name lands on its target.
func rankEntries(entries []workspace.Entry, query string) []workspace.Entry {
	q := strings.ToLower(query)
	type scored struct {
		entry workspace.Entry
		score float64
	}
	ranked := make([]scored, 0, len(entries))
	for _, e := range entries {
		name := strings.ToLower(e.Name)
		score := similarity(name, q)
		if strings.Contains(name, q) {
			score += 1
		}
		ranked = append(ranked, scored{entry: e, score: score})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	out := make([]workspace.Entry, len(ranked))
	for i, s := range ranked {
		out[i] = s.entry
	}
	return out
}
