package repository

import (
	"context"

	"talentmatch/internal/database"

	"github.com/google/uuid"
)

type Skill struct {
	ID          uuid.UUID
	Name        string
	Category    string
	Specialty   string
	Description string
}

type SkillRepository interface {
	FindAll(ctx context.Context) ([]Skill, error)
}

type PostgresSkillRepository struct {
	q database.Querier
}

func NewPostgresSkillRepository(q database.Querier) *PostgresSkillRepository {
	return &PostgresSkillRepository{q: q}
}

func (r *PostgresSkillRepository) FindAll(ctx context.Context) ([]Skill, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, name, COALESCE(category, ''), COALESCE(specialty, ''), COALESCE(description, '')
		 FROM skills
		 ORDER BY name ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Skill, 0)
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Specialty, &s.Description); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
