package usecase

import (
	"context"
	"fmt"
	"time"

	"talentmatch/internal/config"
	"talentmatch/internal/domain/matching"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OfferScore is the compatibility verdict for one (person, offer) pair. An
// offer without requirements yields Applicable=false and no percentage.
type OfferScore struct {
	PersonID      uuid.UUID `json:"person_id"`
	OfferID       uuid.UUID `json:"offer_id"`
	Applicable    bool      `json:"applicable"`
	Percent       float64   `json:"percent"`
	MatchedSkills []string  `json:"matched_skills"`
	MissingSkills []string  `json:"missing_skills"`
}

type RankedOfferResult struct {
	OfferID       uuid.UUID `json:"offer_id"`
	Title         string    `json:"title"`
	CompanyID     uuid.UUID `json:"company_id,omitempty"`
	PublishedAt   time.Time `json:"published_at"`
	Percent       float64   `json:"percent"`
	MatchedSkills []string  `json:"matched_skills"`
	MissingSkills []string  `json:"missing_skills"`
}

type SkillSuggestionResult struct {
	SkillName   string  `json:"skill_name"`
	Confidence  float64 `json:"confidence"`
	SourceSkill string  `json:"source_skill"`
}

// RecommendationUsecase answers person-facing recommendation queries from the
// published snapshot, with response-level caching in front.
type RecommendationUsecase struct {
	factBases *FactBaseUsecase
	cache     Cache
	logger    *zap.Logger
	cacheTTL  time.Duration
}

func NewRecommendationUsecase(
	factBases *FactBaseUsecase,
	cache Cache,
	logger *zap.Logger,
	cfg config.EngineConfig,
) *RecommendationUsecase {
	return &RecommendationUsecase{
		factBases: factBases,
		cache:     cache,
		logger:    logger,
		cacheTTL:  cfg.CacheTTL,
	}
}

// ScorePersonOffer computes the person's score for one offer. Distinguishes
// unknown entities from a legitimate zero: a missing person or offer is an
// error, not a 0.0.
func (uc *RecommendationUsecase) ScorePersonOffer(ctx context.Context, personID, offerID uuid.UUID) (OfferScore, error) {
	fb, err := uc.factBases.Snapshot(ctx)
	if err != nil {
		return OfferScore{}, err
	}
	if !fb.HasPerson(personID) {
		return OfferScore{}, ErrPersonNotFound
	}
	if !fb.HasOffer(offerID) {
		return OfferScore{}, ErrOfferNotFound
	}

	key := fmt.Sprintf("engine:score:%s:%s", personID, offerID)
	var cached OfferScore
	if hit, err := uc.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	sc, applicable := matching.ScoreOffer(fb.PersonSkills[personID], fb.Requirements[offerID])
	result := OfferScore{
		PersonID:      personID,
		OfferID:       offerID,
		Applicable:    applicable,
		Percent:       sc.Percent,
		MatchedSkills: sc.MatchedSkills,
		MissingSkills: sc.MissingSkills,
	}

	if err := uc.cache.SetJSON(ctx, key, result, uc.cacheTTL); err != nil && uc.logger != nil {
		uc.logger.Debug("score cache write failed", zap.Error(err))
	}
	return result, nil
}

// RankOffersForPerson returns the person's compatible offers in the engine's
// total order: score descending, publish date descending, offer id ascending.
func (uc *RecommendationUsecase) RankOffersForPerson(ctx context.Context, personID uuid.UUID) ([]RankedOfferResult, error) {
	fb, err := uc.factBases.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if !fb.HasPerson(personID) {
		return nil, ErrPersonNotFound
	}

	key := fmt.Sprintf("engine:rank:%s", personID)
	var cached []RankedOfferResult
	if hit, err := uc.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	ranked := matching.RankOffers(fb, personID)
	results := make([]RankedOfferResult, 0, len(ranked))
	for _, r := range ranked {
		results = append(results, RankedOfferResult{
			OfferID:       r.Offer.ID,
			Title:         r.Offer.Title,
			CompanyID:     r.Offer.CompanyID,
			PublishedAt:   r.Offer.PublishedAt,
			Percent:       r.Percent,
			MatchedSkills: r.MatchedSkills,
			MissingSkills: r.MissingSkills,
		})
	}

	if err := uc.cache.SetJSON(ctx, key, results, uc.cacheTTL); err != nil && uc.logger != nil {
		uc.logger.Debug("rank cache write failed", zap.Error(err))
	}
	return results, nil
}

// RecommendSkills suggests skills adjacent to the person's current set via
// learned relations. An empty result is a valid answer for a person with no
// skills or no qualifying relations.
func (uc *RecommendationUsecase) RecommendSkills(ctx context.Context, personID uuid.UUID) ([]SkillSuggestionResult, error) {
	fb, err := uc.factBases.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if !fb.HasPerson(personID) {
		return nil, ErrPersonNotFound
	}

	key := fmt.Sprintf("engine:suggest:%s", personID)
	var cached []SkillSuggestionResult
	if hit, err := uc.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	suggestions := matching.RecommendSkills(fb, personID)
	results := make([]SkillSuggestionResult, 0, len(suggestions))
	for _, s := range suggestions {
		results = append(results, SkillSuggestionResult{
			SkillName:   s.SkillName,
			Confidence:  s.Confidence,
			SourceSkill: s.SourceSkill,
		})
	}

	if err := uc.cache.SetJSON(ctx, key, results, uc.cacheTTL); err != nil && uc.logger != nil {
		uc.logger.Debug("suggestion cache write failed", zap.Error(err))
	}
	return results, nil
}
