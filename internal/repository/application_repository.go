package repository

import (
	"context"

	"talentmatch/internal/database"

	"github.com/google/uuid"
)

type Application struct {
	PersonID uuid.UUID
	OfferID  uuid.UUID
	Status   string
}

type ApplicationRepository interface {
	FindAll(ctx context.Context) ([]Application, error)
}

type PostgresApplicationRepository struct {
	q database.Querier
}

func NewPostgresApplicationRepository(q database.Querier) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{q: q}
}

func (r *PostgresApplicationRepository) FindAll(ctx context.Context) ([]Application, error) {
	rows, err := r.q.Query(ctx,
		`SELECT person_id, offer_id, COALESCE(status, '')
		 FROM applications
		 ORDER BY person_id ASC, offer_id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Application, 0)
	for rows.Next() {
		var a Application
		if err := rows.Scan(&a.PersonID, &a.OfferID, &a.Status); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
