package relations

import (
	"talentmatch/internal/domain/facts"
)

const (
	SourceManual       = "manual"
	SourceCooccurrence = "co_occurrence"
	SourceExternal     = "external"

	ProvenancePersisted = "persisted"
	ProvenanceObserved  = "observed"
)

// Relation is a directed, confidence-scored association between two skill
// names: "people or offers with the base skill often also have/require the
// target skill". Direction matters: (A,B) and (B,A) are distinct entries.
type Relation struct {
	BaseSkill   string
	TargetSkill string
	Confidence  float64
	Frequency   int
	Source      string
	Active      bool
	Provenance  string
}

// Key identifies a relation by its ordered, normalized (base, target) pair.
// Skill records whose names normalize identically share one vocabulary entry.
func (r Relation) Key() string {
	return facts.Fold(r.BaseSkill) + "->" + facts.Fold(r.TargetSkill)
}

func (r Relation) normalized() Relation {
	r.BaseSkill = facts.Normalize(r.BaseSkill)
	r.TargetSkill = facts.Normalize(r.TargetSkill)
	if r.Confidence < 0 {
		r.Confidence = 0
	}
	if r.Confidence > 1 {
		r.Confidence = 1
	}
	if r.Frequency < 1 {
		r.Frequency = 1
	}
	return r
}

// Seed is the deterministic fallback set used when neither the persisted
// store nor the learner produced anything, so expansion and recommendation
// never run on an empty relation graph on first start.
func Seed() []Relation {
	return []Relation{
		{BaseSkill: "Python", TargetSkill: "Django", Confidence: 0.85, Frequency: 1, Source: SourceManual, Active: true, Provenance: ProvenancePersisted},
		{BaseSkill: "Python", TargetSkill: "Flask", Confidence: 0.78, Frequency: 1, Source: SourceManual, Active: true, Provenance: ProvenancePersisted},
		{BaseSkill: "Java", TargetSkill: "Spring Boot", Confidence: 0.82, Frequency: 1, Source: SourceManual, Active: true, Provenance: ProvenancePersisted},
		{BaseSkill: "Javascript", TargetSkill: "React", Confidence: 0.90, Frequency: 1, Source: SourceManual, Active: true, Provenance: ProvenancePersisted},
		{BaseSkill: "Sql", TargetSkill: "Postgresql", Confidence: 0.88, Frequency: 1, Source: SourceManual, Active: true, Provenance: ProvenancePersisted},
	}
}
