package repository

import (
	"context"

	"talentmatch/internal/database"

	"github.com/google/uuid"
)

type Company struct {
	ID       uuid.UUID
	Name     string
	Industry string
	City     string
	Region   string
}

type CompanyRepository interface {
	FindAllActive(ctx context.Context) ([]Company, error)
}

type PostgresCompanyRepository struct {
	q database.Querier
}

func NewPostgresCompanyRepository(q database.Querier) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{q: q}
}

func (r *PostgresCompanyRepository) FindAllActive(ctx context.Context) ([]Company, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, name, COALESCE(industry, ''), COALESCE(city, ''), COALESCE(region, '')
		 FROM companies
		 WHERE active = true
		 ORDER BY name ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Company, 0)
	for rows.Next() {
		var c Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Industry, &c.City, &c.Region); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
