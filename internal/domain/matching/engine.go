package matching

import (
	"math"
	"sort"

	"talentmatch/internal/domain/facts"

	"github.com/google/uuid"
)

// Score is a person's compatibility with one offer: the share of required
// skills held at or above the required level, as a percentage with one
// decimal. Offers with no requirements have no defined score and are
// reported as not applicable rather than zero.
type Score struct {
	Percent       float64
	MatchedSkills []string
	MissingSkills []string
}

type RankedOffer struct {
	Offer         facts.OfferFact
	Percent       float64
	MatchedSkills []string
	MissingSkills []string
}

// ScoreOffer computes the compatibility score for one offer. The second
// return value is false when the offer has zero requirements.
func ScoreOffer(personSkills []facts.PersonSkillFact, reqs []facts.RequirementFact) (Score, bool) {
	if len(reqs) == 0 {
		return Score{}, false
	}

	bySkillID := make(map[uuid.UUID]facts.PersonSkillFact, len(personSkills))
	for _, ps := range personSkills {
		if ps.SkillID == uuid.Nil {
			continue
		}
		bySkillID[ps.SkillID] = ps
	}

	matched := make([]string, 0, len(reqs))
	missing := make([]string, 0)
	for _, r := range reqs {
		ps, ok := bySkillID[r.SkillID]
		if ok && ps.Level >= r.Level {
			matched = append(matched, r.SkillName)
			continue
		}
		missing = append(missing, r.SkillName)
	}

	pct := float64(len(matched)) / float64(len(reqs)) * 100
	return Score{
		Percent:       round1(pct),
		MatchedSkills: matched,
		MissingSkills: missing,
	}, true
}

// RankOffers scores every active offer for the person and returns those with
// a positive score, ordered by score descending, publish date descending,
// offer id ascending. The order is total: equal inputs always rank the same.
func RankOffers(fb *facts.FactBase, personID uuid.UUID) []RankedOffer {
	if fb == nil {
		return nil
	}
	personSkills := fb.PersonSkills[personID]

	out := make([]RankedOffer, 0)
	for id, offer := range fb.Offers {
		sc, applicable := ScoreOffer(personSkills, fb.Requirements[id])
		if !applicable || sc.Percent <= 0 {
			continue
		}
		out = append(out, RankedOffer{
			Offer:         offer,
			Percent:       sc.Percent,
			MatchedSkills: sc.MatchedSkills,
			MissingSkills: sc.MissingSkills,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Percent != out[j].Percent {
			return out[i].Percent > out[j].Percent
		}
		pi, pj := out[i].Offer.PublishedAt, out[j].Offer.PublishedAt
		if !pi.Equal(pj) {
			return pi.After(pj)
		}
		return out[i].Offer.ID.String() < out[j].Offer.ID.String()
	})
	return out
}

// SearchBySkills returns the people holding ALL listed skills at or above
// minLevel. The filter is conjunctive on purpose: it answers "who has this
// skillset", not the looser compatibility question RankOffers answers.
func SearchBySkills(fb *facts.FactBase, skillIDs []uuid.UUID, minLevel facts.Level) []facts.PersonFact {
	if fb == nil || len(skillIDs) == 0 {
		return nil
	}

	out := make([]facts.PersonFact, 0)
	for personID, person := range fb.Persons {
		levels := make(map[uuid.UUID]facts.Level)
		for _, ps := range fb.PersonSkills[personID] {
			levels[ps.SkillID] = ps.Level
		}

		qualifies := true
		for _, skillID := range skillIDs {
			lvl, ok := levels[skillID]
			if !ok || lvl < minLevel {
				qualifies = false
				break
			}
		}
		if qualifies {
			out = append(out, person)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })
	return out
}

// SearchByLocation filters people by normalized city and/or region. An empty
// argument matches everything for that field.
func SearchByLocation(fb *facts.FactBase, city, region string) []facts.PersonFact {
	if fb == nil {
		return nil
	}
	cityKey := facts.Fold(city)
	regionKey := facts.Fold(region)

	out := make([]facts.PersonFact, 0)
	for _, person := range fb.Persons {
		if cityKey != "" && facts.Fold(person.City) != cityKey {
			continue
		}
		if regionKey != "" && facts.Fold(person.Region) != regionKey {
			continue
		}
		out = append(out, person)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
