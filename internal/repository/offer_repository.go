package repository

import (
	"context"
	"database/sql"
	"time"

	"talentmatch/internal/database"

	"github.com/google/uuid"
)

type Offer struct {
	ID          uuid.UUID
	CompanyID   uuid.UUID // uuid.Nil when the offer is person-posted
	OwnerID     uuid.UUID // uuid.Nil when company-posted
	Title       string
	Description string
	Active      bool
	PublishedAt time.Time
}

type OfferSkillRequirement struct {
	OfferID   uuid.UUID
	SkillID   uuid.UUID
	SkillName string
	LevelTag  string
}

type OfferRepository interface {
	FindAllActive(ctx context.Context) ([]Offer, error)
	FindActiveRequirements(ctx context.Context) ([]OfferSkillRequirement, error)
}

type PostgresOfferRepository struct {
	q database.Querier
}

func NewPostgresOfferRepository(q database.Querier) *PostgresOfferRepository {
	return &PostgresOfferRepository{q: q}
}

func (r *PostgresOfferRepository) FindAllActive(ctx context.Context) ([]Offer, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, company_id, owner_person_id, title, COALESCE(description, ''), active, published_at
		 FROM offers
		 WHERE active = true
		 ORDER BY published_at DESC, id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Offer, 0)
	for rows.Next() {
		var o Offer
		var companyID, ownerID sql.NullString
		if err := rows.Scan(&o.ID, &companyID, &ownerID, &o.Title, &o.Description, &o.Active, &o.PublishedAt); err != nil {
			return nil, err
		}
		if companyID.Valid {
			if id, err := uuid.Parse(companyID.String); err == nil {
				o.CompanyID = id
			}
		}
		if ownerID.Valid {
			if id, err := uuid.Parse(ownerID.String); err == nil {
				o.OwnerID = id
			}
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresOfferRepository) FindActiveRequirements(ctx context.Context) ([]OfferSkillRequirement, error) {
	rows, err := r.q.Query(ctx,
		`SELECT os.offer_id, os.skill_id, s.name, COALESCE(os.required_level, '')
		 FROM offer_skills os
		 JOIN skills s ON s.id = os.skill_id
		 JOIN offers o ON o.id = os.offer_id
		 WHERE o.active = true
		 ORDER BY os.offer_id ASC, s.name ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]OfferSkillRequirement, 0)
	for rows.Next() {
		var req OfferSkillRequirement
		if err := rows.Scan(&req.OfferID, &req.SkillID, &req.SkillName, &req.LevelTag); err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
