package relations

import "sort"

// Merge reconciles the persisted relation set with a freshly observed one.
// Per (base, target) key the higher confidence wins; on an exact tie the
// persisted entry is kept, since it is already trusted. Keys present in only
// one input pass through unchanged. Merge never deactivates anything:
// deactivation is an explicit separate operation.
//
// Merge is idempotent and never lowers the stored confidence for a key below
// the larger of the two inputs.
func Merge(persisted, observed []Relation) []Relation {
	if len(persisted) == 0 && len(observed) == 0 {
		return Seed()
	}

	byKey := make(map[string]Relation, len(persisted)+len(observed))

	for _, r := range persisted {
		r = r.normalized()
		// Provenance records which side originally won the key; an entry that
		// entered the store from an observation keeps saying so on every later
		// pass through the merge.
		if r.Provenance == "" {
			r.Provenance = ProvenancePersisted
		}
		byKey[r.Key()] = r
	}

	for _, r := range observed {
		r = r.normalized()
		r.Provenance = ProvenanceObserved
		cur, ok := byKey[r.Key()]
		if !ok {
			byKey[r.Key()] = r
			continue
		}
		if r.Confidence > cur.Confidence {
			byKey[r.Key()] = r
		}
	}

	out := make([]Relation, 0, len(byKey))
	for _, r := range byKey {
		r.Active = true
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}
