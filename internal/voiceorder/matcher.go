package voiceorder

import (
	"sort"
	"strings"
	"unicode"

	"annapoorna/internal/menu"
)

const (
	// MatchThreshold is the minimum score BestMatch accepts by default.
	MatchThreshold = 0.7
	// DefaultSuggestions is how many alternatives the confirm dialog shows.
	DefaultSuggestions = 3
)

// normalizeName prepares a name for comparison: lowercase, drop every
// rune that is not a letter, digit, or space, collapse whitespace, trim.
func normalizeName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// similarity is normalized Levenshtein similarity in [0,1].
func similarity(a, b string) float64 {
	la := len([]rune(a))
	lb := len([]rune(b))
	m := max(la, lb)
	if m == 0 {
		return 1
	}
	return 1 - float64(levenshtein(a, b))/float64(m)
}

// score applies the match ladder to two already-normalized names:
// exact equality 1.0, substring either way 0.9, edit distance otherwise.
func score(spoken, item string) float64 {
	if spoken == item {
		return 1.0
	}
	if strings.Contains(item, spoken) || strings.Contains(spoken, item) {
		return 0.9
	}
	return similarity(spoken, item)
}

// BestMatch returns the catalog item with the highest score against the
// spoken name, or nil when the best score is below threshold. Equal
// scores keep the item seen first in catalog order.
func BestMatch(name string, catalog []menu.Item, threshold float64) *menu.Item {
	spoken := normalizeName(name)
	if spoken == "" || len(catalog) == 0 {
		return nil
	}

	var best *menu.Item
	bestScore := 0.0

	for i := range catalog {
		if s := score(spoken, normalizeName(catalog[i].Name)); s > bestScore {
			bestScore = s
			best = &catalog[i]
		}
	}

	if best == nil || bestScore < threshold {
		return nil
	}
	return best
}

// TopMatches ranks every catalog item scoring above zero and returns at
// most n of them, best first. The sort is stable, so ties keep catalog
// order.
func TopMatches(name string, catalog []menu.Item, n int) []MatchCandidate {
	spoken := normalizeName(name)
	if spoken == "" || len(catalog) == 0 || n <= 0 {
		return nil
	}

	candidates := make([]MatchCandidate, 0, len(catalog))
	for _, item := range catalog {
		if s := score(spoken, normalizeName(item.Name)); s > 0 {
			candidates = append(candidates, MatchCandidate{Item: item, Score: s})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates
}
