package relations

import "testing"

func TestLearnFromGroupsConfidence(t *testing.T) {
	// Python appears in 4 groups, 3 of them alongside Django.
	groups := [][]string{
		{"python", "django"},
		{"python", "django", "sql"},
		{"python", "django"},
		{"python", "sql"},
		{"java"},
	}

	learned := LearnFromGroups(groups)

	rel, ok := findByKey(learned, "Python", "Django")
	if !ok {
		t.Fatalf("Python->Django not learned")
	}
	if rel.Frequency != 3 {
		t.Fatalf("expected frequency 3, got %d", rel.Frequency)
	}
	if rel.Confidence != 0.75 {
		t.Fatalf("expected confidence 0.75, got %v", rel.Confidence)
	}
	if rel.Source != SourceCooccurrence || rel.Provenance != ProvenanceObserved {
		t.Fatalf("wrong source/provenance: %+v", rel)
	}

	// Direction matters: Django co-occurs with Python in all 3 of its groups.
	rev, ok := findByKey(learned, "Django", "Python")
	if !ok {
		t.Fatalf("Django->Python not learned")
	}
	if rev.Confidence != 1.0 {
		t.Fatalf("expected confidence 1.0 for Django->Python, got %v", rev.Confidence)
	}

	if _, ok := findByKey(learned, "Java", "Python"); ok {
		t.Fatalf("single-skill group must produce no relations")
	}
}

func TestLearnFromGroupsDeduplicatesWithinGroup(t *testing.T) {
	groups := [][]string{
		{"python", "PYTHON", "django"},
	}
	learned := LearnFromGroups(groups)
	rel, ok := findByKey(learned, "Python", "Django")
	if !ok || rel.Frequency != 1 {
		t.Fatalf("duplicate skill in one group double-counted: %+v", rel)
	}
	if _, ok := findByKey(learned, "Python", "Python"); ok {
		t.Fatalf("self-relation learned")
	}
}

func TestCombineKeepsHighestConfidence(t *testing.T) {
	local := []Relation{
		{BaseSkill: "Python", TargetSkill: "Django", Confidence: 0.60, Frequency: 3, Source: SourceCooccurrence},
	}
	external := []Relation{
		{BaseSkill: "Python", TargetSkill: "Django", Confidence: 0.85, Frequency: 40, Source: SourceExternal},
		{BaseSkill: "Sql", TargetSkill: "Postgresql", Confidence: 0.88, Frequency: 12, Source: SourceExternal},
	}

	combined := Combine(local, external)
	if len(combined) != 2 {
		t.Fatalf("expected 2 combined relations, got %d", len(combined))
	}
	rel, _ := findByKey(combined, "Python", "Django")
	if rel.Confidence != 0.85 || rel.Source != SourceExternal {
		t.Fatalf("higher confidence set did not win: %+v", rel)
	}
}
