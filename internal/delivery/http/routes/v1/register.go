package v1

import (
	"talentmatch/internal/delivery/http/handler"
	"talentmatch/internal/delivery/http/middleware"
	"talentmatch/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Engine          *handler.EngineHandler
	Recommendations *handler.RecommendationHandler
	Search          *handler.SearchHandler
}

// Register wires the v1 API. Reads are open; everything that mutates the
// relation store or the snapshot requires a token.
func Register(api fiber.Router, h Handlers, tokens *jwt.Service) {
	engine := api.Group("/engine")
	engine.Get("/status", h.Engine.Status)
	engine.Get("/relations", h.Engine.ListRelations)

	protected := api.Group("", middleware.RequireAuth(tokens))
	protected.Post("/engine/regenerate", h.Engine.Regenerate)
	protected.Post("/engine/learn", h.Engine.Learn)
	protected.Post("/engine/learn/external", h.Engine.TriggerExternalLearning)
	protected.Delete("/engine/relations", h.Engine.DeactivateRelation)

	persons := api.Group("/persons")
	persons.Get("/:person_id/offers", h.Recommendations.RankOffers)
	persons.Get("/:person_id/offers/:offer_id/score", h.Recommendations.Score)
	persons.Get("/:person_id/skills/recommendations", h.Recommendations.RecommendSkills)

	search := api.Group("/search")
	search.Get("/persons", h.Search.BySkills)
	search.Get("/persons/location", h.Search.ByLocation)
	search.Get("/expand", h.Search.Expand)
}
