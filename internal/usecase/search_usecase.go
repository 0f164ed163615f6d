package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"talentmatch/internal/config"
	"talentmatch/internal/domain/facts"
	"talentmatch/internal/domain/matching"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PersonResult struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	City      string    `json:"city"`
	Region    string    `json:"region"`
}

type ExpandedQuery struct {
	Terms    []string `json:"terms"`
	Expanded []string `json:"expanded"`
}

// SearchUsecase answers talent search queries against the published snapshot.
type SearchUsecase struct {
	factBases *FactBaseUsecase
	cache     Cache
	logger    *zap.Logger
	cacheTTL  time.Duration
}

func NewSearchUsecase(
	factBases *FactBaseUsecase,
	cache Cache,
	logger *zap.Logger,
	cfg config.EngineConfig,
) *SearchUsecase {
	return &SearchUsecase{
		factBases: factBases,
		cache:     cache,
		logger:    logger,
		cacheTTL:  cfg.CacheTTL,
	}
}

// SearchBySkills finds the people holding every listed skill at or above
// minLevel. The filter is conjunctive. Skill ids must exist in the snapshot;
// an unknown id is an error rather than an empty result.
func (uc *SearchUsecase) SearchBySkills(ctx context.Context, rawSkillIDs []string, minLevelTag string) ([]PersonResult, error) {
	if len(rawSkillIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one skill id is required", ErrInvalidQuery)
	}

	skillIDs := make([]uuid.UUID, 0, len(rawSkillIDs))
	for _, raw := range rawSkillIDs {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid skill id %q", ErrInvalidQuery, raw)
		}
		skillIDs = append(skillIDs, id)
	}
	if len(skillIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one skill id is required", ErrInvalidQuery)
	}

	minLevel := facts.LevelBeginner
	if tag := strings.TrimSpace(minLevelTag); tag != "" {
		lvl, err := facts.ParseLevel(tag)
		if err != nil {
			return nil, fmt.Errorf("%w: unknown level %q", ErrInvalidQuery, tag)
		}
		minLevel = lvl
	}

	fb, err := uc.factBases.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	for _, id := range skillIDs {
		if !fb.HasSkill(id) {
			return nil, ErrSkillNotFound
		}
	}

	key := skillSearchKey(skillIDs, minLevel)
	var cached []PersonResult
	if hit, err := uc.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	results := toPersonResults(matching.SearchBySkills(fb, skillIDs, minLevel))
	if err := uc.cache.SetJSON(ctx, key, results, uc.cacheTTL); err != nil && uc.logger != nil {
		uc.logger.Debug("search cache write failed", zap.Error(err))
	}
	return results, nil
}

// SearchByLocation filters people by city and/or region, compared after
// normalization. At least one of the two must be given.
func (uc *SearchUsecase) SearchByLocation(ctx context.Context, city, region string) ([]PersonResult, error) {
	city = strings.TrimSpace(city)
	region = strings.TrimSpace(region)
	if city == "" && region == "" {
		return nil, fmt.Errorf("%w: city or region is required", ErrInvalidQuery)
	}

	fb, err := uc.factBases.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return toPersonResults(matching.SearchByLocation(fb, city, region)), nil
}

// ExpandQuery widens a comma-separated term list through learned relations,
// single hop.
func (uc *SearchUsecase) ExpandQuery(ctx context.Context, query string) (ExpandedQuery, error) {
	terms := splitTerms(query)
	if len(terms) == 0 {
		return ExpandedQuery{}, fmt.Errorf("%w: query is required", ErrInvalidQuery)
	}

	fb, err := uc.factBases.Snapshot(ctx)
	if err != nil {
		return ExpandedQuery{}, err
	}

	key := "engine:expand:" + facts.Fold(strings.Join(terms, ","))
	var cached ExpandedQuery
	if hit, err := uc.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	result := ExpandedQuery{
		Terms:    terms,
		Expanded: matching.ExpandTerms(fb, terms, matching.DefaultExpansionConfidence),
	}
	if err := uc.cache.SetJSON(ctx, key, result, uc.cacheTTL); err != nil && uc.logger != nil {
		uc.logger.Debug("expand cache write failed", zap.Error(err))
	}
	return result, nil
}

func splitTerms(query string) []string {
	parts := strings.Split(query, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func skillSearchKey(skillIDs []uuid.UUID, minLevel facts.Level) string {
	strs := make([]string, 0, len(skillIDs))
	for _, id := range skillIDs {
		strs = append(strs, id.String())
	}
	// Sorted so equivalent queries share a cache entry regardless of id order.
	sort.Strings(strs)
	return fmt.Sprintf("engine:search:%s:%s", strings.Join(strs, ","), minLevel.Tag())
}

func toPersonResults(persons []facts.PersonFact) []PersonResult {
	out := make([]PersonResult, 0, len(persons))
	for _, p := range persons {
		out = append(out, PersonResult{
			ID:        p.ID,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			City:      p.City,
			Region:    p.Region,
		})
	}
	return out
}
