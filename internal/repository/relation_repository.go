package repository

import (
	"context"
	"errors"

	"talentmatch/internal/database"
	"talentmatch/internal/domain/relations"
)

var ErrRelationNotFound = errors.New("learned relation not found")

// RelationRepository is the single write path to the persisted relation set.
// All writes go through UpsertMerged under the engine's serialization lock;
// nothing else mutates the table.
type RelationRepository interface {
	FindActive(ctx context.Context) ([]relations.Relation, error)
	UpsertMerged(ctx context.Context, merged []relations.Relation) error
	Deactivate(ctx context.Context, baseSkill, targetSkill string) error
}

type PostgresRelationRepository struct {
	db database.DB
}

func NewPostgresRelationRepository(db database.DB) *PostgresRelationRepository {
	return &PostgresRelationRepository{db: db}
}

func (r *PostgresRelationRepository) FindActive(ctx context.Context) ([]relations.Relation, error) {
	rows, err := r.db.Query(ctx,
		`SELECT base_skill, target_skill, confidence, frequency, COALESCE(source, ''), COALESCE(provenance, ''), active
		 FROM learned_relations
		 WHERE active = true
		 ORDER BY base_skill ASC, target_skill ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]relations.Relation, 0)
	for rows.Next() {
		var rel relations.Relation
		if err := rows.Scan(&rel.BaseSkill, &rel.TargetSkill, &rel.Confidence, &rel.Frequency, &rel.Source, &rel.Provenance, &rel.Active); err != nil {
			return nil, err
		}
		if rel.Provenance == "" {
			rel.Provenance = relations.ProvenancePersisted
		}
		out = append(out, rel)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpsertMerged writes the merged set back in one transaction. Re-observation
// updates the existing (base, target) row; rows absent from the merged set
// are left untouched — deactivation is never an implicit effect of a merge.
func (r *PostgresRelationRepository) UpsertMerged(ctx context.Context, merged []relations.Relation) error {
	if len(merged) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, rel := range merged {
		_, err := tx.Exec(ctx,
			`INSERT INTO learned_relations (base_skill, target_skill, confidence, frequency, source, provenance, active, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, true, now())
			 ON CONFLICT (base_skill, target_skill) DO UPDATE
			 SET confidence = EXCLUDED.confidence,
			     frequency  = EXCLUDED.frequency,
			     source     = EXCLUDED.source,
			     provenance = EXCLUDED.provenance,
			     active     = true,
			     updated_at = now()`,
			rel.BaseSkill, rel.TargetSkill, rel.Confidence, rel.Frequency, rel.Source, rel.Provenance,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// Deactivate soft-deletes one relation. Relations are never hard-deleted.
func (r *PostgresRelationRepository) Deactivate(ctx context.Context, baseSkill, targetSkill string) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE learned_relations
		 SET active = false, updated_at = now()
		 WHERE base_skill = $1 AND target_skill = $2 AND active = true`,
		baseSkill, targetSkill,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRelationNotFound
	}
	return nil
}
