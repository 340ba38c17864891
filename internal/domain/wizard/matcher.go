package wizard

import (
	"sort"
	"strings"
	"unicode"

	"contractor_estimates/internal/domain/entities"
)

// FilterExcluded drops catalog entries whose id is listed in excluded.
func FilterExcluded(catalog []entities.Category, excluded []string) []entities.Category {
	if len(excluded) == 0 {
		return catalog
	}
	skip := make(map[string]struct{}, len(excluded))
	for _, id := range excluded {
		skip[strings.TrimSpace(id)] = struct{}{}
	}
	out := make([]entities.Category, 0, len(catalog))
	for _, c := range catalog {
		if _, ok := skip[c.ID]; !ok {
			out = append(out, c)
		}
	}
	return out
}

// MatchCategories ranks catalog entries against a free-text description.
// Keyword hits weigh 2, name word hits 1. Ties keep catalog order; zero scores are dropped.
func MatchCategories(description string, catalog []entities.Category, excluded []string) []entities.Category {
	text := strings.ToLower(description)
	words := make(map[string]struct{})
	for _, w := range tokenize(text) {
		words[w] = struct{}{}
	}

	type scored struct {
		cat   entities.Category
		score int
	}
	var hits []scored
	for _, c := range FilterExcluded(catalog, excluded) {
		score := 0
		for _, kw := range c.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			if strings.ContainsAny(kw, " -") {
				if strings.Contains(text, kw) {
					score += 2
				}
				continue
			}
			if _, ok := words[kw]; ok {
				score += 2
			}
		}
		for _, w := range tokenize(strings.ToLower(c.Name)) {
			if _, ok := words[w]; ok {
				score++
			}
		}
		if score > 0 {
			hits = append(hits, scored{cat: c, score: score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })
	out := make([]entities.Category, len(hits))
	for i, h := range hits {
		out[i] = h.cat
	}
	return out
}

func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
