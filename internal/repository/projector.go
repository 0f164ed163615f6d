package repository

import (
	"context"
	"fmt"

	"talentmatch/internal/database"
	"talentmatch/internal/domain/facts"
)

// Projector produces a fresh fact base from a consistent read of the entity
// tables.
type Projector interface {
	Project(ctx context.Context) (*facts.FactBase, error)
}

// PostgresProjector reads all entity collections inside one transaction and
// builds the snapshot off to the side. Any read failure fails the whole
// projection — a partial fact base is never produced.
type PostgresProjector struct {
	db database.DB
}

func NewPostgresProjector(db database.DB) *PostgresProjector {
	return &PostgresProjector{db: db}
}

func (p *PostgresProjector) Project(ctx context.Context) (*facts.FactBase, error) {
	tx, err := p.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin projection read: %w", err)
	}
	defer tx.Rollback(ctx)

	persons, err := NewPostgresPersonRepository(tx).FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("project persons: %w", err)
	}
	skills, err := NewPostgresSkillRepository(tx).FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("project skills: %w", err)
	}
	personSkills, err := NewPostgresPersonSkillRepository(tx).FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("project person skills: %w", err)
	}
	companies, err := NewPostgresCompanyRepository(tx).FindAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("project companies: %w", err)
	}
	offerRepo := NewPostgresOfferRepository(tx)
	offers, err := offerRepo.FindAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("project offers: %w", err)
	}
	requirements, err := offerRepo.FindActiveRequirements(ctx)
	if err != nil {
		return nil, fmt.Errorf("project offer requirements: %w", err)
	}
	applications, err := NewPostgresApplicationRepository(tx).FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("project applications: %w", err)
	}

	rels, err := relationsWithin(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("project learned relations: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit projection read: %w", err)
	}

	b := facts.NewBuilder()
	for _, person := range persons {
		b.AddPerson(facts.PersonFact{
			ID:        person.ID,
			FirstName: person.FirstName,
			LastName:  person.LastName,
			Email:     person.Email,
			City:      person.City,
			Region:    person.Region,
		})
	}
	for _, skill := range skills {
		b.AddSkill(facts.SkillFact{
			ID:          skill.ID,
			Name:        skill.Name,
			Category:    skill.Category,
			Specialty:   skill.Specialty,
			Description: skill.Description,
		})
	}
	for _, ps := range personSkills {
		b.AddPersonSkill(facts.PersonSkillFact{
			PersonID:  ps.PersonID,
			SkillID:   ps.SkillID,
			SkillName: ps.SkillName,
			Level:     levelOrDefault(ps.LevelTag),
			Years:     ps.Years,
		})
	}
	for _, company := range companies {
		b.AddCompany(facts.CompanyFact{
			ID:       company.ID,
			Name:     company.Name,
			Industry: company.Industry,
			City:     company.City,
			Region:   company.Region,
		})
	}
	for _, offer := range offers {
		b.AddOffer(facts.OfferFact{
			ID:          offer.ID,
			CompanyID:   offer.CompanyID,
			OwnerID:     offer.OwnerID,
			Title:       offer.Title,
			Active:      offer.Active,
			PublishedAt: offer.PublishedAt,
		})
	}
	for _, req := range requirements {
		b.AddRequirement(facts.RequirementFact{
			OfferID:   req.OfferID,
			SkillID:   req.SkillID,
			SkillName: req.SkillName,
			Level:     levelOrDefault(req.LevelTag),
		})
	}
	for _, app := range applications {
		b.AddApplication(facts.ApplicationFact{
			PersonID: app.PersonID,
			OfferID:  app.OfferID,
			Status:   app.Status,
		})
	}
	for _, rel := range rels {
		b.AddRelation(facts.RelationFact{
			BaseSkill:   rel.BaseSkill,
			TargetSkill: rel.TargetSkill,
			Confidence:  rel.Confidence,
			Frequency:   rel.Frequency,
			Source:      rel.Source,
		})
	}

	return b.Build(), nil
}

type relationRow struct {
	BaseSkill   string
	TargetSkill string
	Confidence  float64
	Frequency   int
	Source      string
}

func relationsWithin(ctx context.Context, q database.Querier) ([]relationRow, error) {
	rows, err := q.Query(ctx,
		`SELECT base_skill, target_skill, confidence, frequency, COALESCE(source, '')
		 FROM learned_relations
		 WHERE active = true
		 ORDER BY base_skill ASC, target_skill ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]relationRow, 0)
	for rows.Next() {
		var rel relationRow
		if err := rows.Scan(&rel.BaseSkill, &rel.TargetSkill, &rel.Confidence, &rel.Frequency, &rel.Source); err != nil {
			return nil, err
		}
		out = append(out, rel)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// levelOrDefault maps a stored level tag to its ordinal. Absent and
// unrecognized tags both default to beginner: a malformed row must never be
// credited with more proficiency than a missing one.
func levelOrDefault(tag string) facts.Level {
	lvl, err := facts.ParseLevel(tag)
	if err != nil {
		return facts.LevelBeginner
	}
	return lvl
}
