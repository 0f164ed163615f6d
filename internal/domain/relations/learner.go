package relations

import (
	"sort"

	"talentmatch/internal/domain/facts"
)

// LearnFromGroups derives candidate relations from co-occurrence evidence.
// Each group is one observation unit: the skill names one person holds, or
// the skills one offer requires together. For an ordered pair (A, B),
// frequency is the number of groups containing both and confidence is that
// count normalized by the number of groups containing A.
func LearnFromGroups(groups [][]string) []Relation {
	baseCount := make(map[string]int)
	pairCount := make(map[string]map[string]int)
	display := make(map[string]string)

	for _, group := range groups {
		seen := make(map[string]string, len(group))
		for _, raw := range group {
			name := facts.Normalize(raw)
			if name == "" {
				continue
			}
			key := facts.Fold(name)
			if _, ok := seen[key]; !ok {
				seen[key] = name
			}
			if _, ok := display[key]; !ok {
				display[key] = name
			}
		}

		for base := range seen {
			baseCount[base]++
			for target := range seen {
				if target == base {
					continue
				}
				if pairCount[base] == nil {
					pairCount[base] = make(map[string]int)
				}
				pairCount[base][target]++
			}
		}
	}

	out := make([]Relation, 0)
	for base, targets := range pairCount {
		total := baseCount[base]
		if total <= 0 {
			continue
		}
		for target, freq := range targets {
			conf := float64(freq) / float64(total)
			if conf > 1 {
				conf = 1
			}
			out = append(out, Relation{
				BaseSkill:   display[base],
				TargetSkill: display[target],
				Confidence:  conf,
				Frequency:   freq,
				Source:      SourceCooccurrence,
				Active:      true,
				Provenance:  ProvenanceObserved,
			})
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}

// Combine collapses several observation sets into one, keeping the
// highest-confidence entry per (base, target) key. Earlier sets win ties.
func Combine(sets ...[]Relation) []Relation {
	byKey := make(map[string]Relation)
	for _, set := range sets {
		for _, r := range set {
			r = r.normalized()
			cur, ok := byKey[r.Key()]
			if !ok || r.Confidence > cur.Confidence {
				byKey[r.Key()] = r
			}
		}
	}

	out := make([]Relation, 0, len(byKey))
	for _, r := range byKey {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}
