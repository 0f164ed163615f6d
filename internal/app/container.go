package app

import (
	"context"
	"fmt"

	"talentmatch/internal/config"
	"talentmatch/internal/database"
	"talentmatch/internal/database/postgres"
	"talentmatch/internal/delivery/http/handler"
	v1 "talentmatch/internal/delivery/http/routes/v1"
	"talentmatch/internal/domain/facts"
	"talentmatch/internal/infrastructure/cache"
	"talentmatch/internal/infrastructure/learner"
	"talentmatch/internal/pkg/jwt"
	"talentmatch/internal/repository"
	"talentmatch/internal/usecase"
	"talentmatch/internal/ws"

	"go.uber.org/zap"
)

// Container owns every long-lived dependency and the wiring between them.
type Container struct {
	Config config.Config
	Logger *zap.Logger

	DB    database.DB
	Redis *cache.Redis
	Hub   *ws.Hub

	Tokens *jwt.Service

	FactBases       *usecase.FactBaseUsecase
	Relations       *usecase.RelationsUsecase
	Recommendations *usecase.RecommendationUsecase
	Search          *usecase.SearchUsecase

	Handlers v1.Handlers
	Health   *handler.HealthHandler
}

func NewContainer(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Container, error) {
	db, err := postgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	redis := cache.NewRedis(cfg.Redis, logger)
	hub := ws.NewHub(logger)
	tokens := jwt.NewService(
		cfg.Auth.AccessSecret,
		cfg.Auth.RefreshSecret,
		cfg.Auth.AccessExpiresIn,
		cfg.Auth.RefreshExpiresIn,
	)

	store := facts.NewStore()
	projector := repository.NewPostgresProjector(db)
	relationRepo := repository.NewPostgresRelationRepository(db)
	externalLearner := learner.New(cfg.Learner, logger)

	factBases := usecase.NewFactBaseUsecase(store, projector, redis, hub, logger, cfg.Engine)

	var external usecase.ExternalLearner
	if externalLearner != nil {
		external = externalLearner
	}
	relations := usecase.NewRelationsUsecase(store, factBases, relationRepo, external, hub, logger, cfg.Engine)
	recommendations := usecase.NewRecommendationUsecase(factBases, redis, logger, cfg.Engine)
	search := usecase.NewSearchUsecase(factBases, redis, logger, cfg.Engine)

	return &Container{
		Config: cfg,
		Logger: logger,

		DB:    db,
		Redis: redis,
		Hub:   hub,

		Tokens: tokens,

		FactBases:       factBases,
		Relations:       relations,
		Recommendations: recommendations,
		Search:          search,

		Handlers: v1.Handlers{
			Engine:          handler.NewEngineHandler(factBases, relations),
			Recommendations: handler.NewRecommendationHandler(recommendations),
			Search:          handler.NewSearchHandler(search),
		},
		Health: handler.NewHealthHandler(db, redis),
	}, nil
}

func (c *Container) Close() {
	if c == nil {
		return
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil && c.Logger != nil {
			c.Logger.Warn("redis close failed", zap.Error(err))
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil && c.Logger != nil {
			c.Logger.Warn("database close failed", zap.Error(err))
		}
	}
}
