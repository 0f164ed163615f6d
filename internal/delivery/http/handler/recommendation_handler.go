package handler

import (
	"fmt"

	"talentmatch/internal/pkg/response"
	"talentmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type RecommendationHandler struct {
	recommendations *usecase.RecommendationUsecase
}

func NewRecommendationHandler(recommendations *usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{recommendations: recommendations}
}

// RankOffers handles GET /persons/:person_id/offers.
func (h *RecommendationHandler) RankOffers(c fiber.Ctx) error {
	personID, err := pathUUID(c, "person_id")
	if err != nil {
		return err
	}

	ranked, err := h.recommendations.RankOffersForPerson(c.Context(), personID)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "recommended offers", ranked)
}

// Score handles GET /persons/:person_id/offers/:offer_id/score.
func (h *RecommendationHandler) Score(c fiber.Ctx) error {
	personID, err := pathUUID(c, "person_id")
	if err != nil {
		return err
	}
	offerID, err := pathUUID(c, "offer_id")
	if err != nil {
		return err
	}

	score, err := h.recommendations.ScorePersonOffer(c.Context(), personID, offerID)
	if err != nil {
		return err
	}
	if !score.Applicable {
		return response.Success(c, fiber.StatusOK, "offer has no skill requirements, score not applicable", score)
	}
	return response.Success(c, fiber.StatusOK, "compatibility score", score)
}

// RecommendSkills handles GET /persons/:person_id/skills/recommendations.
func (h *RecommendationHandler) RecommendSkills(c fiber.Ctx) error {
	personID, err := pathUUID(c, "person_id")
	if err != nil {
		return err
	}

	suggestions, err := h.recommendations.RecommendSkills(c.Context(), personID)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "recommended skills", suggestions)
}

func pathUUID(c fiber.Ctx, name string) (uuid.UUID, error) {
	raw := c.Params(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid %s %q", usecase.ErrInvalidQuery, name, raw)
	}
	return id, nil
}
