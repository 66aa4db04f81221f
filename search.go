package anubis

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// titleSimilarity scores how closely two titles match, 1 being identical,
// 0 sharing nothing. Case-insensitive. The distance counts runes, so the
// denominator must too or multibyte titles score inflated.
func titleSimilarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == b {
		return 1
	}
	longest := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > longest {
		longest = n
	}
	if longest == 0 {
		return 1
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}

// SearchTitles ranks games against the query by title similarity,
// returning the best matches first. Substring hits rank above pure
// edit-distance matches; results below the similarity floor are dropped.
func SearchTitles(query string, games []Game, limit int) []Game {
	const floor = 0.3

	query = strings.TrimSpace(query)
	if query == "" || len(games) == 0 {
		return nil
	}

	type scored struct {
		game  Game
		score float64
	}
	var matches []scored
	q := strings.ToLower(query)
	for _, g := range games {
		score := titleSimilarity(query, g.Title)
		if strings.Contains(strings.ToLower(g.Title), q) {
			score = maxFloat(score, 0.9)
		}
		if score >= floor {
			matches = append(matches, scored{game: g, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]Game, len(matches))
	for i, m := range matches {
		out[i] = m.game
	}
	return out
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
