package repository

import (
	"context"

	"talentmatch/internal/database"

	"github.com/google/uuid"
)

type PersonSkill struct {
	PersonID  uuid.UUID
	SkillID   uuid.UUID
	SkillName string
	LevelTag  string
	Years     int
}

type PersonSkillRepository interface {
	FindAll(ctx context.Context) ([]PersonSkill, error)
}

type PostgresPersonSkillRepository struct {
	q database.Querier
}

func NewPostgresPersonSkillRepository(q database.Querier) *PostgresPersonSkillRepository {
	return &PostgresPersonSkillRepository{q: q}
}

func (r *PostgresPersonSkillRepository) FindAll(ctx context.Context) ([]PersonSkill, error) {
	rows, err := r.q.Query(ctx,
		`SELECT ps.person_id, ps.skill_id, s.name, COALESCE(ps.experience_level, ''), COALESCE(ps.years_experience, 0)
		 FROM person_skills ps
		 JOIN skills s ON s.id = ps.skill_id
		 ORDER BY ps.person_id ASC, s.name ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]PersonSkill, 0)
	for rows.Next() {
		var ps PersonSkill
		if err := rows.Scan(&ps.PersonID, &ps.SkillID, &ps.SkillName, &ps.LevelTag, &ps.Years); err != nil {
			return nil, err
		}
		out = append(out, ps)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
