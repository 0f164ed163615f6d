package handler

import (
	"fmt"

	"talentmatch/internal/pkg/response"
	"talentmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// EngineHandler exposes the snapshot and learning lifecycle. All mutating
// routes sit behind auth.
type EngineHandler struct {
	factBases *usecase.FactBaseUsecase
	relations *usecase.RelationsUsecase
}

func NewEngineHandler(factBases *usecase.FactBaseUsecase, relations *usecase.RelationsUsecase) *EngineHandler {
	return &EngineHandler{factBases: factBases, relations: relations}
}

// Regenerate handles POST /engine/regenerate.
func (h *EngineHandler) Regenerate(c fiber.Ctx) error {
	if _, err := h.factBases.Regenerate(c.Context()); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "fact base regenerated", h.factBases.Status(c.Context()))
}

// Status handles GET /engine/status.
func (h *EngineHandler) Status(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, "engine status", h.factBases.Status(c.Context()))
}

// Learn handles POST /engine/learn: one full learn-and-merge pass.
func (h *EngineHandler) Learn(c fiber.Ctx) error {
	result, err := h.relations.LearnAndMerge(c.Context())
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "relations learned and merged", result)
}

// TriggerExternalLearning handles POST /engine/learn/external.
func (h *EngineHandler) TriggerExternalLearning(c fiber.Ctx) error {
	if err := h.relations.TriggerExternalLearning(c.Context()); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusAccepted, "external learning triggered", nil)
}

// ListRelations handles GET /engine/relations.
func (h *EngineHandler) ListRelations(c fiber.Ctx) error {
	rels, err := h.relations.ListActive(c.Context())
	if err != nil {
		return err
	}

	type relationDTO struct {
		BaseSkill   string  `json:"base_skill"`
		TargetSkill string  `json:"target_skill"`
		Confidence  float64 `json:"confidence"`
		Frequency   int     `json:"frequency"`
		Source      string  `json:"source"`
	}
	out := make([]relationDTO, 0, len(rels))
	for _, r := range rels {
		out = append(out, relationDTO{
			BaseSkill:   r.BaseSkill,
			TargetSkill: r.TargetSkill,
			Confidence:  r.Confidence,
			Frequency:   r.Frequency,
			Source:      r.Source,
		})
	}
	return response.Success(c, fiber.StatusOK, "active relations", out)
}

// DeactivateRelation handles DELETE /engine/relations?base=X&target=Y.
func (h *EngineHandler) DeactivateRelation(c fiber.Ctx) error {
	base := c.Query("base")
	target := c.Query("target")
	if base == "" || target == "" {
		return fmt.Errorf("%w: base and target are required", usecase.ErrInvalidQuery)
	}

	if err := h.relations.Deactivate(c.Context(), base, target); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "relation deactivated", nil)
}
