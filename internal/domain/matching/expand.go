package matching

import (
	"talentmatch/internal/domain/facts"
)

// DefaultExpansionConfidence is the minimum confidence a learned relation
// needs before it widens a query.
const DefaultExpansionConfidence = 0.3

// ExpandTerms widens a term set using the snapshot's learned relations:
// every outgoing relation whose base matches a term (case- and
// diacritic-insensitively) and whose confidence exceeds minConfidence adds
// its target to the result. Expansion is single-hop — added terms are not
// expanded again — to bound the result and avoid topic drift.
//
// The result always contains every input term, so a non-empty input never
// expands to nothing.
func ExpandTerms(fb *facts.FactBase, terms []string, minConfidence float64) []string {
	if minConfidence <= 0 {
		minConfidence = DefaultExpansionConfidence
	}

	out := make([]string, 0, len(terms)*2)
	seen := make(map[string]struct{}, len(terms)*2)
	add := func(s string) {
		s = facts.Normalize(s)
		if s == "" {
			return
		}
		key := facts.Fold(s)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}

	for _, term := range terms {
		add(term)
	}

	for _, term := range terms {
		for _, rel := range fb.RelationsFrom(term) {
			if rel.Confidence > minConfidence {
				add(rel.TargetSkill)
			}
		}
	}

	return out
}
