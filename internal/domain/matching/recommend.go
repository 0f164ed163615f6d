package matching

import (
	"sort"

	"talentmatch/internal/domain/facts"

	"github.com/google/uuid"
)

const (
	// RecommendConfidenceFloor filters out weak relations before they can
	// suggest a skill.
	RecommendConfidenceFloor = 0.3
	// MaxSkillSuggestions caps the recommendation list.
	MaxSkillSuggestions = 10
)

// SkillSuggestion is a skill the person does not hold yet, reached from one
// of their existing skills through a learned relation.
type SkillSuggestion struct {
	SkillName   string
	Confidence  float64
	SourceSkill string
}

// RecommendSkills suggests skills adjacent to what the person already has:
// follow outgoing relations strictly above the confidence floor (the same
// comparison query expansion uses), drop targets
// the person holds, deduplicate by target keeping the highest confidence
// found across all source skills, sort by confidence descending (name
// ascending on ties) and cap the list. Pure function of the snapshot.
func RecommendSkills(fb *facts.FactBase, personID uuid.UUID) []SkillSuggestion {
	if fb == nil {
		return nil
	}

	held := make(map[string]struct{})
	for _, ps := range fb.PersonSkills[personID] {
		held[facts.Fold(ps.SkillName)] = struct{}{}
	}

	best := make(map[string]SkillSuggestion)
	for _, ps := range fb.PersonSkills[personID] {
		for _, rel := range fb.RelationsFrom(ps.SkillName) {
			if rel.Confidence <= RecommendConfidenceFloor {
				continue
			}
			targetKey := facts.Fold(rel.TargetSkill)
			if _, ok := held[targetKey]; ok {
				continue
			}
			cur, ok := best[targetKey]
			if !ok || rel.Confidence > cur.Confidence {
				best[targetKey] = SkillSuggestion{
					SkillName:   rel.TargetSkill,
					Confidence:  rel.Confidence,
					SourceSkill: ps.SkillName,
				}
			}
		}
	}

	out := make([]SkillSuggestion, 0, len(best))
	for _, s := range best {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Confidence != out[j].Confidence {
			return out[i].Confidence > out[j].Confidence
		}
		return out[i].SkillName < out[j].SkillName
	})

	if len(out) > MaxSkillSuggestions {
		out = out[:MaxSkillSuggestions]
	}
	return out
}
