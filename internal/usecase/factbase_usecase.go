package usecase

import (
	"context"
	"errors"
	"time"

	"talentmatch/internal/config"
	"talentmatch/internal/domain/facts"
	"talentmatch/internal/repository"

	"go.uber.org/zap"
)

// Notifier pushes engine lifecycle events to connected clients. Implemented
// by the websocket hub; a nil Notifier drops events.
type Notifier interface {
	Publish(event string, payload any)
}

// FactBaseStatus describes the published snapshot, if any.
type FactBaseStatus struct {
	Generated    bool      `json:"generated"`
	GeneratedAt  time.Time `json:"generated_at,omitempty"`
	Persons      int       `json:"persons"`
	Skills       int       `json:"skills"`
	Companies    int       `json:"companies"`
	Offers       int       `json:"offers"`
	Applications int       `json:"applications"`
	Relations    int       `json:"relations"`
}

// FactBaseUsecase owns the snapshot lifecycle: project, publish, materialize,
// invalidate caches, notify. Regenerations are serialized through the store's
// lock; queries never wait on it.
type FactBaseUsecase struct {
	store     *facts.Store
	projector repository.Projector
	cache     Cache
	notifier  Notifier
	logger    *zap.Logger

	factsPath string
	lockWait  time.Duration
}

func NewFactBaseUsecase(
	store *facts.Store,
	projector repository.Projector,
	cache Cache,
	notifier Notifier,
	logger *zap.Logger,
	cfg config.EngineConfig,
) *FactBaseUsecase {
	return &FactBaseUsecase{
		store:     store,
		projector: projector,
		cache:     cache,
		notifier:  notifier,
		logger:    logger,
		factsPath: cfg.FactsPath,
		lockWait:  cfg.LockWait,
	}
}

// Regenerate projects a fresh snapshot from the entity store and publishes it
// atomically. While the projection runs, queries keep answering from the
// previous snapshot. Returns ErrEngineBusy when another regeneration or merge
// holds the lock past the configured wait.
func (uc *FactBaseUsecase) Regenerate(ctx context.Context) (*facts.FactBase, error) {
	if uc == nil || uc.store == nil || uc.projector == nil {
		return nil, errors.New("fact base usecase not initialized")
	}

	release, err := uc.store.Acquire(ctx, uc.lockWait)
	if err != nil {
		if errors.Is(err, facts.ErrRegenerationBusy) {
			return nil, ErrEngineBusy
		}
		return nil, err
	}
	defer release()

	return uc.regenerateLocked(ctx)
}

// regenerateLocked does the work with the lock already held. Shared with the
// relations usecase, which re-projects after a merge under its own hold of
// the same lock.
func (uc *FactBaseUsecase) regenerateLocked(ctx context.Context) (*facts.FactBase, error) {
	started := time.Now()

	fb, err := uc.projector.Project(ctx)
	if err != nil {
		return nil, err
	}

	uc.store.Publish(fb)

	// Materialization and cache invalidation are best-effort: the snapshot is
	// already live, a failure here must not report the regeneration failed.
	if uc.factsPath != "" {
		if err := fb.WriteFile(uc.factsPath); err != nil && uc.logger != nil {
			uc.logger.Warn("fact file write failed",
				zap.String("path", uc.factsPath), zap.Error(err))
		}
	}
	if uc.cache != nil {
		if err := uc.cache.InvalidateEngineKeys(ctx); err != nil && uc.logger != nil {
			uc.logger.Warn("engine cache invalidation failed", zap.Error(err))
		}
	}

	if uc.logger != nil {
		uc.logger.Info("fact base regenerated",
			zap.Int("persons", len(fb.Persons)),
			zap.Int("offers", len(fb.Offers)),
			zap.Int("relations", len(fb.Relations)),
			zap.Duration("took", time.Since(started)))
	}
	if uc.notifier != nil {
		uc.notifier.Publish("factbase_regenerated", FactBaseStatus{
			Generated:    true,
			GeneratedAt:  fb.GeneratedAt,
			Persons:      len(fb.Persons),
			Skills:       len(fb.Skills),
			Companies:    len(fb.Companies),
			Offers:       len(fb.Offers),
			Applications: len(fb.Applications),
			Relations:    len(fb.Relations),
		})
	}

	return fb, nil
}

// Snapshot returns the published fact base, projecting one first when none
// exists yet. The first caller after startup pays the projection cost.
func (uc *FactBaseUsecase) Snapshot(ctx context.Context) (*facts.FactBase, error) {
	if fb := uc.store.Current(); fb != nil {
		return fb, nil
	}
	fb, err := uc.Regenerate(ctx)
	if err != nil {
		// A concurrent regeneration is already producing the first snapshot;
		// it may have landed while we waited.
		if errors.Is(err, ErrEngineBusy) {
			if cur := uc.store.Current(); cur != nil {
				return cur, nil
			}
		}
		return nil, err
	}
	return fb, nil
}

func (uc *FactBaseUsecase) Status(ctx context.Context) FactBaseStatus {
	fb := uc.store.Current()
	if fb == nil {
		return FactBaseStatus{Generated: false}
	}
	return FactBaseStatus{
		Generated:    true,
		GeneratedAt:  fb.GeneratedAt,
		Persons:      len(fb.Persons),
		Skills:       len(fb.Skills),
		Companies:    len(fb.Companies),
		Offers:       len(fb.Offers),
		Applications: len(fb.Applications),
		Relations:    len(fb.Relations),
	}
}
