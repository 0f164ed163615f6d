package matching

import (
	"testing"
	"time"

	"talentmatch/internal/domain/facts"

	"github.com/google/uuid"
)

var (
	pythonID = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000001")
	djangoID = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000002")
	sqlID    = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000003")
)

func TestScoreOfferHalfMatch(t *testing.T) {
	personSkills := []facts.PersonSkillFact{
		{SkillID: pythonID, SkillName: "Python", Level: facts.LevelAdvanced},
		{SkillID: sqlID, SkillName: "Sql", Level: facts.LevelIntermediate},
	}
	reqs := []facts.RequirementFact{
		{SkillID: pythonID, SkillName: "Python", Level: facts.LevelIntermediate},
		{SkillID: djangoID, SkillName: "Django", Level: facts.LevelIntermediate},
	}

	sc, applicable := ScoreOffer(personSkills, reqs)
	if !applicable {
		t.Fatalf("expected applicable score")
	}
	if sc.Percent != 50.0 {
		t.Fatalf("expected 50.0, got %v", sc.Percent)
	}
	if len(sc.MatchedSkills) != 1 || sc.MatchedSkills[0] != "Python" {
		t.Fatalf("matched = %v", sc.MatchedSkills)
	}
	if len(sc.MissingSkills) != 1 || sc.MissingSkills[0] != "Django" {
		t.Fatalf("missing = %v", sc.MissingSkills)
	}
}

func TestScoreOfferLevelTooLowCountsAsMissing(t *testing.T) {
	personSkills := []facts.PersonSkillFact{
		{SkillID: pythonID, SkillName: "Python", Level: facts.LevelBeginner},
	}
	reqs := []facts.RequirementFact{
		{SkillID: pythonID, SkillName: "Python", Level: facts.LevelAdvanced},
	}

	sc, applicable := ScoreOffer(personSkills, reqs)
	if !applicable {
		t.Fatalf("expected applicable score")
	}
	if sc.Percent != 0.0 || len(sc.MissingSkills) != 1 {
		t.Fatalf("holding a skill below the required level must not match: %+v", sc)
	}
}

func TestScoreOfferExactLevelMatches(t *testing.T) {
	personSkills := []facts.PersonSkillFact{
		{SkillID: pythonID, SkillName: "Python", Level: facts.LevelIntermediate},
	}
	reqs := []facts.RequirementFact{
		{SkillID: pythonID, SkillName: "Python", Level: facts.LevelIntermediate},
	}

	sc, _ := ScoreOffer(personSkills, reqs)
	if sc.Percent != 100.0 {
		t.Fatalf("level equal to requirement must match, got %v", sc.Percent)
	}
}

func TestScoreOfferNoRequirementsNotApplicable(t *testing.T) {
	_, applicable := ScoreOffer(nil, nil)
	if applicable {
		t.Fatalf("offer without requirements must be not applicable, not zero")
	}
}

func TestScoreOfferRoundsToOneDecimal(t *testing.T) {
	personSkills := []facts.PersonSkillFact{
		{SkillID: pythonID, SkillName: "Python", Level: facts.LevelExpert},
	}
	reqs := []facts.RequirementFact{
		{SkillID: pythonID, SkillName: "Python", Level: facts.LevelBeginner},
		{SkillID: djangoID, SkillName: "Django", Level: facts.LevelBeginner},
		{SkillID: sqlID, SkillName: "Sql", Level: facts.LevelBeginner},
	}

	sc, _ := ScoreOffer(personSkills, reqs)
	if sc.Percent != 33.3 {
		t.Fatalf("expected 33.3, got %v", sc.Percent)
	}
}

func rankFixture(t *testing.T) (*facts.FactBase, uuid.UUID, [3]uuid.UUID) {
	t.Helper()

	personID := uuid.New()
	companyID := uuid.New()
	offerIDs := [3]uuid.UUID{
		uuid.MustParse("00000000-0000-0000-0000-00000000000a"),
		uuid.MustParse("00000000-0000-0000-0000-00000000000b"),
		uuid.MustParse("00000000-0000-0000-0000-00000000000c"),
	}
	older := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	b := facts.NewBuilder()
	b.AddPerson(facts.PersonFact{ID: personID, FirstName: "ana", LastName: "garcia"})
	b.AddSkill(facts.SkillFact{ID: pythonID, Name: "python"})
	b.AddSkill(facts.SkillFact{ID: djangoID, Name: "django"})
	b.AddPersonSkill(facts.PersonSkillFact{PersonID: personID, SkillID: pythonID, SkillName: "python", Level: facts.LevelAdvanced})

	// Full match, older publish.
	b.AddOffer(facts.OfferFact{ID: offerIDs[0], CompanyID: companyID, Title: "a", Active: true, PublishedAt: older})
	b.AddRequirement(facts.RequirementFact{OfferID: offerIDs[0], SkillID: pythonID, SkillName: "python", Level: facts.LevelIntermediate})

	// Full match, newer publish: must rank above offer 0.
	b.AddOffer(facts.OfferFact{ID: offerIDs[1], CompanyID: companyID, Title: "b", Active: true, PublishedAt: newer})
	b.AddRequirement(facts.RequirementFact{OfferID: offerIDs[1], SkillID: pythonID, SkillName: "python", Level: facts.LevelIntermediate})

	// Half match: ranks last.
	b.AddOffer(facts.OfferFact{ID: offerIDs[2], CompanyID: companyID, Title: "c", Active: true, PublishedAt: newer})
	b.AddRequirement(facts.RequirementFact{OfferID: offerIDs[2], SkillID: pythonID, SkillName: "python", Level: facts.LevelIntermediate})
	b.AddRequirement(facts.RequirementFact{OfferID: offerIDs[2], SkillID: djangoID, SkillName: "django", Level: facts.LevelIntermediate})

	return b.Build(), personID, offerIDs
}

func TestRankOffersTotalOrder(t *testing.T) {
	fb, personID, offerIDs := rankFixture(t)

	ranked := RankOffers(fb, personID)
	if len(ranked) != 3 {
		t.Fatalf("expected 3 ranked offers, got %d", len(ranked))
	}
	if ranked[0].Offer.ID != offerIDs[1] {
		t.Fatalf("newer full match must rank first, got %v", ranked[0].Offer.ID)
	}
	if ranked[1].Offer.ID != offerIDs[0] {
		t.Fatalf("older full match must rank second, got %v", ranked[1].Offer.ID)
	}
	if ranked[2].Offer.ID != offerIDs[2] || ranked[2].Percent != 50.0 {
		t.Fatalf("half match must rank last with 50.0, got %v %v", ranked[2].Offer.ID, ranked[2].Percent)
	}
}

func TestRankOffersTiesBreakOnOfferID(t *testing.T) {
	personID := uuid.New()
	companyID := uuid.New()
	published := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	lowID := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	highID := uuid.MustParse("ffffffff-0000-0000-0000-000000000001")

	b := facts.NewBuilder()
	b.AddPerson(facts.PersonFact{ID: personID})
	b.AddPersonSkill(facts.PersonSkillFact{PersonID: personID, SkillID: pythonID, SkillName: "python", Level: facts.LevelExpert})
	for _, id := range []uuid.UUID{highID, lowID} {
		b.AddOffer(facts.OfferFact{ID: id, CompanyID: companyID, Title: "x", Active: true, PublishedAt: published})
		b.AddRequirement(facts.RequirementFact{OfferID: id, SkillID: pythonID, SkillName: "python", Level: facts.LevelBeginner})
	}
	fb := b.Build()

	ranked := RankOffers(fb, personID)
	if len(ranked) != 2 || ranked[0].Offer.ID != lowID {
		t.Fatalf("tie must break on ascending offer id: %+v", ranked)
	}
}

func TestRankOffersExcludesZeroAndNotApplicable(t *testing.T) {
	personID := uuid.New()
	companyID := uuid.New()

	b := facts.NewBuilder()
	b.AddPerson(facts.PersonFact{ID: personID})

	// No requirements: not applicable, never ranked.
	bare := uuid.New()
	b.AddOffer(facts.OfferFact{ID: bare, CompanyID: companyID, Title: "bare", Active: true, PublishedAt: time.Now()})

	// Requirement the person lacks entirely: zero score, never ranked.
	zero := uuid.New()
	b.AddOffer(facts.OfferFact{ID: zero, CompanyID: companyID, Title: "zero", Active: true, PublishedAt: time.Now()})
	b.AddRequirement(facts.RequirementFact{OfferID: zero, SkillID: djangoID, SkillName: "django", Level: facts.LevelBeginner})
	fb := b.Build()

	if ranked := RankOffers(fb, personID); len(ranked) != 0 {
		t.Fatalf("expected empty ranking, got %+v", ranked)
	}
}

func TestSearchBySkillsConjunctive(t *testing.T) {
	both := uuid.New()
	onlyPython := uuid.New()
	lowLevel := uuid.New()

	b := facts.NewBuilder()
	b.AddPerson(facts.PersonFact{ID: both, FirstName: "a"})
	b.AddPerson(facts.PersonFact{ID: onlyPython, FirstName: "b"})
	b.AddPerson(facts.PersonFact{ID: lowLevel, FirstName: "c"})
	b.AddPersonSkill(facts.PersonSkillFact{PersonID: both, SkillID: pythonID, SkillName: "python", Level: facts.LevelAdvanced})
	b.AddPersonSkill(facts.PersonSkillFact{PersonID: both, SkillID: sqlID, SkillName: "sql", Level: facts.LevelIntermediate})
	b.AddPersonSkill(facts.PersonSkillFact{PersonID: onlyPython, SkillID: pythonID, SkillName: "python", Level: facts.LevelExpert})
	b.AddPersonSkill(facts.PersonSkillFact{PersonID: lowLevel, SkillID: pythonID, SkillName: "python", Level: facts.LevelBeginner})
	b.AddPersonSkill(facts.PersonSkillFact{PersonID: lowLevel, SkillID: sqlID, SkillName: "sql", Level: facts.LevelBeginner})
	fb := b.Build()

	got := SearchBySkills(fb, []uuid.UUID{pythonID, sqlID}, facts.LevelIntermediate)
	if len(got) != 1 || got[0].ID != both {
		t.Fatalf("conjunctive search wrong: %+v", got)
	}
}

func TestSearchByLocationNormalizes(t *testing.T) {
	inCity := uuid.New()
	elsewhere := uuid.New()

	b := facts.NewBuilder()
	b.AddPerson(facts.PersonFact{ID: inCity, City: "méxico", Region: "cdmx"})
	b.AddPerson(facts.PersonFact{ID: elsewhere, City: "madrid", Region: "madrid"})
	fb := b.Build()

	got := SearchByLocation(fb, "MEXICO", "")
	if len(got) != 1 || got[0].ID != inCity {
		t.Fatalf("diacritic-insensitive city match failed: %+v", got)
	}

	all := SearchByLocation(fb, "", "")
	if len(all) != 2 {
		t.Fatalf("empty filters must match everyone, got %d", len(all))
	}
}
