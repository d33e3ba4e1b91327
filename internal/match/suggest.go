package match

import (
	"sort"
	"strings"
)

// MinSimilarity is the lowest Similarity score Suggest reports.
const MinSimilarity = 0.6

// Suggest returns up to limit candidates that look like name, best match
// first. Ties keep candidate order.
func Suggest(name string, candidates []string, limit int) []string {
	type scored struct {
		name  string
		score float64
	}

	var hits []scored
	for _, c := range candidates {
		if s := Similarity(name, c); s >= MinSimilarity {
			hits = append(hits, scored{c, s})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})

	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}

	res := make([]string, len(hits))
	for i, h := range hits {
		res[i] = h.name
	}

	return res
}

// normalize case-folds s and strips the separators _, - and . so that
// "pixelflush-tsp" and "PixelFlush_tsp" compare equal.
func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', '.', ' ':
			return -1
		}

		return r
	}, strings.ToLower(s))
}
