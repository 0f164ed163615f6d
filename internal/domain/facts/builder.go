package facts

import (
	"time"

	"github.com/google/uuid"
)

// Builder accumulates raw entity rows and normalizes their text fields as
// they are added. Build assembles the immutable snapshot; the builder must
// not be reused afterwards.
type Builder struct {
	fb *FactBase
}

func NewBuilder() *Builder {
	return &Builder{
		fb: &FactBase{
			Persons:      make(map[uuid.UUID]PersonFact),
			Skills:       make(map[uuid.UUID]SkillFact),
			PersonSkills: make(map[uuid.UUID][]PersonSkillFact),
			Companies:    make(map[uuid.UUID]CompanyFact),
			Offers:       make(map[uuid.UUID]OfferFact),
			Requirements: make(map[uuid.UUID][]RequirementFact),
		},
	}
}

func (b *Builder) AddPerson(p PersonFact) {
	if p.ID == uuid.Nil {
		return
	}
	p.FirstName = Normalize(p.FirstName)
	p.LastName = Normalize(p.LastName)
	p.City = Normalize(p.City)
	p.Region = Normalize(p.Region)
	b.fb.Persons[p.ID] = p
}

func (b *Builder) AddSkill(s SkillFact) {
	if s.ID == uuid.Nil {
		return
	}
	s.Name = Normalize(s.Name)
	s.Category = Normalize(s.Category)
	s.Specialty = Normalize(s.Specialty)
	b.fb.Skills[s.ID] = s
}

func (b *Builder) AddPersonSkill(ps PersonSkillFact) {
	if ps.PersonID == uuid.Nil || ps.SkillID == uuid.Nil {
		return
	}
	if !ps.Level.Valid() {
		return
	}
	if ps.Years < 0 {
		ps.Years = 0
	}
	ps.SkillName = Normalize(ps.SkillName)
	b.fb.PersonSkills[ps.PersonID] = append(b.fb.PersonSkills[ps.PersonID], ps)
}

func (b *Builder) AddCompany(c CompanyFact) {
	if c.ID == uuid.Nil {
		return
	}
	c.Name = Normalize(c.Name)
	c.Industry = Normalize(c.Industry)
	c.City = Normalize(c.City)
	c.Region = Normalize(c.Region)
	b.fb.Companies[c.ID] = c
}

// AddOffer keeps active offers only; inactive offers are invisible to the
// engine, so an inactive id surfaces as NotFound rather than scoring zero.
func (b *Builder) AddOffer(o OfferFact) {
	if o.ID == uuid.Nil || !o.Active {
		return
	}
	if o.CompanyID == uuid.Nil && o.OwnerID == uuid.Nil {
		return
	}
	o.Title = Normalize(o.Title)
	b.fb.Offers[o.ID] = o
}

func (b *Builder) AddRequirement(r RequirementFact) {
	if r.OfferID == uuid.Nil || r.SkillID == uuid.Nil {
		return
	}
	if !r.Level.Valid() {
		return
	}
	r.SkillName = Normalize(r.SkillName)
	b.fb.Requirements[r.OfferID] = append(b.fb.Requirements[r.OfferID], r)
}

func (b *Builder) AddApplication(a ApplicationFact) {
	if a.PersonID == uuid.Nil || a.OfferID == uuid.Nil {
		return
	}
	b.fb.Applications = append(b.fb.Applications, a)
}

func (b *Builder) AddRelation(r RelationFact) {
	r.BaseSkill = Normalize(r.BaseSkill)
	r.TargetSkill = Normalize(r.TargetSkill)
	if r.BaseSkill == "" || r.TargetSkill == "" {
		return
	}
	b.fb.Relations = append(b.fb.Relations, r)
}

func (b *Builder) Build() *FactBase {
	fb := b.fb
	b.fb = nil

	// Requirements pointing at offers that were dropped (inactive or
	// ownerless) must not survive into the snapshot.
	for offerID := range fb.Requirements {
		if _, ok := fb.Offers[offerID]; !ok {
			delete(fb.Requirements, offerID)
		}
	}

	fb.relationsByBase = make(map[string][]RelationFact, len(fb.Relations))
	for _, rel := range fb.Relations {
		key := Fold(rel.BaseSkill)
		fb.relationsByBase[key] = append(fb.relationsByBase[key], rel)
	}

	fb.GeneratedAt = time.Now().UTC()
	return fb
}
