package handler

import (
	"strings"

	"talentmatch/internal/pkg/response"
	"talentmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SearchHandler struct {
	search *usecase.SearchUsecase
}

func NewSearchHandler(search *usecase.SearchUsecase) *SearchHandler {
	return &SearchHandler{search: search}
}

// BySkills handles GET /search/persons?skill_ids=a,b&min_level=intermediate.
func (h *SearchHandler) BySkills(c fiber.Ctx) error {
	rawIDs := splitCSV(c.Query("skill_ids"))
	minLevel := c.Query("min_level")

	persons, err := h.search.SearchBySkills(c.Context(), rawIDs, minLevel)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "persons matching skill set", persons)
}

// ByLocation handles GET /search/persons/location?city=X&region=Y.
func (h *SearchHandler) ByLocation(c fiber.Ctx) error {
	persons, err := h.search.SearchByLocation(c.Context(), c.Query("city"), c.Query("region"))
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "persons matching location", persons)
}

// Expand handles GET /search/expand?q=python,sql.
func (h *SearchHandler) Expand(c fiber.Ctx) error {
	expanded, err := h.search.ExpandQuery(c.Context(), c.Query("q"))
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "expanded query", expanded)
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
