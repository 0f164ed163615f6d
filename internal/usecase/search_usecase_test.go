package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"talentmatch/internal/config"
	"talentmatch/internal/domain/facts"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type searchFixture struct {
	fb       *facts.FactBase
	pythonID uuid.UUID
	sqlID    uuid.UUID
	bothID   uuid.UUID
}

func newSearchFixture() searchFixture {
	pythonID := uuid.New()
	sqlID := uuid.New()
	bothID := uuid.New()
	onlyPython := uuid.New()

	b := facts.NewBuilder()
	b.AddSkill(facts.SkillFact{ID: pythonID, Name: "python"})
	b.AddSkill(facts.SkillFact{ID: sqlID, Name: "sql"})

	b.AddPerson(facts.PersonFact{ID: bothID, FirstName: "ana", City: "méxico", Region: "cdmx"})
	b.AddPersonSkill(facts.PersonSkillFact{PersonID: bothID, SkillID: pythonID, SkillName: "python", Level: facts.LevelAdvanced})
	b.AddPersonSkill(facts.PersonSkillFact{PersonID: bothID, SkillID: sqlID, SkillName: "sql", Level: facts.LevelIntermediate})

	b.AddPerson(facts.PersonFact{ID: onlyPython, FirstName: "luis", City: "madrid", Region: "madrid"})
	b.AddPersonSkill(facts.PersonSkillFact{PersonID: onlyPython, SkillID: pythonID, SkillName: "python", Level: facts.LevelExpert})

	b.AddRelation(facts.RelationFact{BaseSkill: "python", TargetSkill: "django", Confidence: 0.85, Frequency: 10, Source: "manual"})

	return searchFixture{fb: b.Build(), pythonID: pythonID, sqlID: sqlID, bothID: bothID}
}

func newTestSearchUsecase(fb *facts.FactBase) *SearchUsecase {
	store := facts.NewStore()
	cfg := config.EngineConfig{LockWait: 100 * time.Millisecond}
	factBases := NewFactBaseUsecase(store, &mockProjector{fb: fb}, &nopCache{}, &mockNotifier{}, zap.NewNop(), cfg)
	return NewSearchUsecase(factBases, &nopCache{}, zap.NewNop(), cfg)
}

func TestSearchBySkillsConjunctiveFilter(t *testing.T) {
	fx := newSearchFixture()
	uc := newTestSearchUsecase(fx.fb)

	got, err := uc.SearchBySkills(context.Background(),
		[]string{fx.pythonID.String(), fx.sqlID.String()}, "intermediate")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 || got[0].ID != fx.bothID {
		t.Fatalf("expected only the person holding both skills, got %+v", got)
	}
}

func TestSearchBySkillsInvalidInput(t *testing.T) {
	fx := newSearchFixture()
	uc := newTestSearchUsecase(fx.fb)

	if _, err := uc.SearchBySkills(context.Background(), nil, ""); !errors.Is(err, ErrInvalidQuery) {
		t.Fatalf("empty skill list: expected ErrInvalidQuery, got %v", err)
	}
	if _, err := uc.SearchBySkills(context.Background(), []string{"not-a-uuid"}, ""); !errors.Is(err, ErrInvalidQuery) {
		t.Fatalf("bad uuid: expected ErrInvalidQuery, got %v", err)
	}
	if _, err := uc.SearchBySkills(context.Background(), []string{fx.pythonID.String()}, "ninja"); !errors.Is(err, ErrInvalidQuery) {
		t.Fatalf("bad level: expected ErrInvalidQuery, got %v", err)
	}
}

func TestSearchBySkillsUnknownSkill(t *testing.T) {
	fx := newSearchFixture()
	uc := newTestSearchUsecase(fx.fb)

	if _, err := uc.SearchBySkills(context.Background(), []string{uuid.NewString()}, ""); !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
}

func TestSearchByLocationFilters(t *testing.T) {
	fx := newSearchFixture()
	uc := newTestSearchUsecase(fx.fb)

	got, err := uc.SearchByLocation(context.Background(), "mexico", "")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 || got[0].ID != fx.bothID {
		t.Fatalf("unexpected location result %+v", got)
	}

	if _, err := uc.SearchByLocation(context.Background(), "", "  "); !errors.Is(err, ErrInvalidQuery) {
		t.Fatalf("both filters empty: expected ErrInvalidQuery, got %v", err)
	}
}

func TestExpandQuery(t *testing.T) {
	fx := newSearchFixture()
	uc := newTestSearchUsecase(fx.fb)

	got, err := uc.ExpandQuery(context.Background(), "python, sql")
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if len(got.Terms) != 2 {
		t.Fatalf("expected 2 input terms, got %v", got.Terms)
	}

	var hasDjango bool
	for _, term := range got.Expanded {
		if term == "Django" {
			hasDjango = true
		}
	}
	if !hasDjango {
		t.Fatalf("expected Django in expansion, got %v", got.Expanded)
	}

	if _, err := uc.ExpandQuery(context.Background(), "  ,  "); !errors.Is(err, ErrInvalidQuery) {
		t.Fatalf("empty query: expected ErrInvalidQuery, got %v", err)
	}
}
