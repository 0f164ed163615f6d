package repository

import (
	"context"

	"talentmatch/internal/database"

	"github.com/google/uuid"
)

type Person struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
	City      string
	Region    string
}

type PersonRepository interface {
	FindAll(ctx context.Context) ([]Person, error)
}

type PostgresPersonRepository struct {
	q database.Querier
}

func NewPostgresPersonRepository(q database.Querier) *PostgresPersonRepository {
	return &PostgresPersonRepository{q: q}
}

func (r *PostgresPersonRepository) FindAll(ctx context.Context) ([]Person, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, COALESCE(first_name, ''), COALESCE(last_name, ''), COALESCE(email, ''), COALESCE(city, ''), COALESCE(region, '')
		 FROM persons
		 ORDER BY id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Person, 0)
	for rows.Next() {
		var p Person
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.City, &p.Region); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
