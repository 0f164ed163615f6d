package facts

import (
	"time"

	"github.com/google/uuid"
)

type PersonFact struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
	City      string
	Region    string
}

type SkillFact struct {
	ID          uuid.UUID
	Name        string
	Category    string
	Specialty   string
	Description string
}

type PersonSkillFact struct {
	PersonID  uuid.UUID
	SkillID   uuid.UUID
	SkillName string
	Level     Level
	Years     int
}

type CompanyFact struct {
	ID       uuid.UUID
	Name     string
	Industry string
	City     string
	Region   string
}

type OfferFact struct {
	ID          uuid.UUID
	CompanyID   uuid.UUID // uuid.Nil when person-owned
	OwnerID     uuid.UUID // uuid.Nil when company-owned
	Title       string
	Active      bool
	PublishedAt time.Time
}

type RequirementFact struct {
	OfferID   uuid.UUID
	SkillID   uuid.UUID
	SkillName string
	Level     Level
}

type ApplicationFact struct {
	PersonID uuid.UUID
	OfferID  uuid.UUID
	Status   string
}

type RelationFact struct {
	BaseSkill   string
	TargetSkill string
	Confidence  float64
	Frequency   int
	Source      string
}

// FactBase is a point-in-time projection of the entity tables. It is built
// off to the side and published whole; once published it is never mutated,
// so readers need no locking.
type FactBase struct {
	GeneratedAt time.Time

	Persons      map[uuid.UUID]PersonFact
	Skills       map[uuid.UUID]SkillFact
	PersonSkills map[uuid.UUID][]PersonSkillFact
	Companies    map[uuid.UUID]CompanyFact
	Offers       map[uuid.UUID]OfferFact
	Requirements map[uuid.UUID][]RequirementFact
	Applications []ApplicationFact
	Relations    []RelationFact

	relationsByBase map[string][]RelationFact
}

// RelationsFrom returns the outgoing learned relations whose base skill
// matches name, compared case- and diacritic-insensitively.
func (fb *FactBase) RelationsFrom(name string) []RelationFact {
	if fb == nil {
		return nil
	}
	return fb.relationsByBase[Fold(name)]
}

func (fb *FactBase) HasPerson(id uuid.UUID) bool {
	if fb == nil {
		return false
	}
	_, ok := fb.Persons[id]
	return ok
}

func (fb *FactBase) HasOffer(id uuid.UUID) bool {
	if fb == nil {
		return false
	}
	_, ok := fb.Offers[id]
	return ok
}

func (fb *FactBase) HasSkill(id uuid.UUID) bool {
	if fb == nil {
		return false
	}
	_, ok := fb.Skills[id]
	return ok
}
