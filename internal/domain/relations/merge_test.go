package relations

import (
	"reflect"
	"testing"
)

func findByKey(rels []Relation, base, target string) (Relation, bool) {
	want := Relation{BaseSkill: base, TargetSkill: target}.Key()
	for _, r := range rels {
		if r.Key() == want {
			return r, true
		}
	}
	return Relation{}, false
}

func TestMergeSeedsWhenBothEmpty(t *testing.T) {
	merged := Merge(nil, nil)
	if len(merged) != len(Seed()) {
		t.Fatalf("expected seed set of %d, got %d", len(Seed()), len(merged))
	}
	rel, ok := findByKey(merged, "Python", "Django")
	if !ok || rel.Confidence != 0.85 || rel.Source != SourceManual {
		t.Fatalf("seed Python->Django wrong: %+v", rel)
	}
}

func TestMergeHigherConfidenceWins(t *testing.T) {
	persisted := []Relation{
		{BaseSkill: "Python", TargetSkill: "Django", Confidence: 0.85, Frequency: 10, Source: SourceManual},
	}
	observed := []Relation{
		{BaseSkill: "Python", TargetSkill: "Django", Confidence: 0.70, Frequency: 7, Source: SourceCooccurrence},
		{BaseSkill: "Python", TargetSkill: "Flask", Confidence: 0.70, Frequency: 7, Source: SourceCooccurrence},
	}

	merged := Merge(persisted, observed)

	django, ok := findByKey(merged, "Python", "Django")
	if !ok {
		t.Fatalf("Python->Django missing")
	}
	if django.Confidence != 0.85 || django.Provenance != ProvenancePersisted {
		t.Fatalf("persisted higher confidence lost: %+v", django)
	}

	flask, ok := findByKey(merged, "Python", "Flask")
	if !ok {
		t.Fatalf("new observed relation missing")
	}
	if flask.Confidence != 0.70 || flask.Provenance != ProvenanceObserved {
		t.Fatalf("observed-only relation wrong: %+v", flask)
	}
}

func TestMergeObservedReplacesOnHigherConfidence(t *testing.T) {
	persisted := []Relation{
		{BaseSkill: "Sql", TargetSkill: "Postgresql", Confidence: 0.60, Frequency: 4, Source: SourceManual},
	}
	observed := []Relation{
		{BaseSkill: "Sql", TargetSkill: "Postgresql", Confidence: 0.88, Frequency: 20, Source: SourceCooccurrence},
	}

	merged := Merge(persisted, observed)
	rel, ok := findByKey(merged, "Sql", "Postgresql")
	if !ok {
		t.Fatalf("relation missing")
	}
	if rel.Confidence != 0.88 || rel.Frequency != 20 || rel.Provenance != ProvenanceObserved {
		t.Fatalf("observed higher confidence did not win: %+v", rel)
	}
}

func TestMergeTieKeepsPersisted(t *testing.T) {
	persisted := []Relation{
		{BaseSkill: "Java", TargetSkill: "Spring Boot", Confidence: 0.82, Frequency: 5, Source: SourceManual},
	}
	observed := []Relation{
		{BaseSkill: "Java", TargetSkill: "Spring Boot", Confidence: 0.82, Frequency: 9, Source: SourceCooccurrence},
	}

	merged := Merge(persisted, observed)
	rel, _ := findByKey(merged, "Java", "Spring Boot")
	if rel.Provenance != ProvenancePersisted || rel.Source != SourceManual {
		t.Fatalf("tie must keep persisted entry: %+v", rel)
	}
}

func TestMergeIdempotent(t *testing.T) {
	persisted := []Relation{
		{BaseSkill: "Python", TargetSkill: "Django", Confidence: 0.85, Frequency: 10, Source: SourceManual},
		{BaseSkill: "Javascript", TargetSkill: "React", Confidence: 0.90, Frequency: 15, Source: SourceManual},
	}
	observed := []Relation{
		{BaseSkill: "Python", TargetSkill: "Flask", Confidence: 0.70, Frequency: 7, Source: SourceCooccurrence},
	}

	once := Merge(persisted, observed)
	twice := Merge(once, observed)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("merge not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}

	// An entry that entered from the observed side must keep saying so when
	// the merged set is fed back in as the persisted input.
	flask, ok := findByKey(twice, "Python", "Flask")
	if !ok {
		t.Fatalf("Python->Flask missing after second merge")
	}
	if flask.Provenance != ProvenanceObserved {
		t.Fatalf("re-merge flipped provenance to %q", flask.Provenance)
	}
}

func TestMergeNeverLowersConfidence(t *testing.T) {
	persisted := []Relation{
		{BaseSkill: "Python", TargetSkill: "Django", Confidence: 0.85, Frequency: 10, Source: SourceManual},
	}
	observed := []Relation{
		{BaseSkill: "python", TargetSkill: "DJANGO", Confidence: 0.10, Frequency: 1, Source: SourceCooccurrence},
	}

	merged := Merge(persisted, observed)
	rel, _ := findByKey(merged, "Python", "Django")
	if rel.Confidence < 0.85 {
		t.Fatalf("merge lowered confidence to %v", rel.Confidence)
	}
}

func TestMergeAllActiveAndSorted(t *testing.T) {
	merged := Merge(Seed(), nil)
	for i, r := range merged {
		if !r.Active {
			t.Fatalf("merged relation inactive: %+v", r)
		}
		if i > 0 && merged[i-1].Key() > r.Key() {
			t.Fatalf("merged output not sorted at %d", i)
		}
	}
}
