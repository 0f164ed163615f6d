package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"talentmatch/internal/config"
	"talentmatch/internal/domain/facts"
	"talentmatch/internal/domain/relations"
	"talentmatch/internal/repository"

	"go.uber.org/zap"
)

// ExternalLearner is the optional out-of-process relation miner. A nil value
// means learning runs on local co-occurrence evidence only.
type ExternalLearner interface {
	FetchRelations(ctx context.Context) ([]relations.Relation, error)
	TriggerLearning(ctx context.Context) error
}

// MergeResult summarizes one learn-and-merge pass.
type MergeResult struct {
	PersistedCount int  `json:"persisted_count"`
	ObservedCount  int  `json:"observed_count"`
	MergedCount    int  `json:"merged_count"`
	ExternalUsed   bool `json:"external_used"`
}

// RelationsUsecase runs the learning pipeline: gather co-occurrence evidence
// from the current snapshot, combine it with the external learner's output
// when one is configured, merge against the persisted set and write the
// result back. Merges share the regeneration lock so a merge and a
// regeneration never interleave.
type RelationsUsecase struct {
	store     *facts.Store
	factBases *FactBaseUsecase
	repo      repository.RelationRepository
	external  ExternalLearner
	notifier  Notifier
	logger    *zap.Logger
	lockWait  time.Duration
}

func NewRelationsUsecase(
	store *facts.Store,
	factBases *FactBaseUsecase,
	repo repository.RelationRepository,
	external ExternalLearner,
	notifier Notifier,
	logger *zap.Logger,
	cfg config.EngineConfig,
) *RelationsUsecase {
	return &RelationsUsecase{
		store:     store,
		factBases: factBases,
		repo:      repo,
		external:  external,
		notifier:  notifier,
		logger:    logger,
		lockWait:  cfg.LockWait,
	}
}

// LearnAndMerge executes one full learning pass. An unreachable external
// learner degrades to local evidence with a warning; an unreadable or
// unwritable relation store fails the pass, since merging against a partial
// persisted set could lower stored confidences.
func (uc *RelationsUsecase) LearnAndMerge(ctx context.Context) (MergeResult, error) {
	if uc == nil || uc.store == nil || uc.repo == nil {
		return MergeResult{}, errors.New("relations usecase not initialized")
	}

	release, err := uc.store.Acquire(ctx, uc.lockWait)
	if err != nil {
		if errors.Is(err, facts.ErrRegenerationBusy) {
			return MergeResult{}, ErrEngineBusy
		}
		return MergeResult{}, err
	}
	defer release()

	persisted, err := uc.repo.FindActive(ctx)
	if err != nil {
		return MergeResult{}, fmt.Errorf("%w: read persisted relations: %v", ErrUpstreamUnavailable, err)
	}

	fb := uc.store.Current()
	if fb == nil {
		fb, err = uc.factBases.regenerateLocked(ctx)
		if err != nil {
			return MergeResult{}, err
		}
	}

	observed := relations.LearnFromGroups(evidenceGroups(fb))

	externalUsed := false
	if uc.external != nil {
		ext, err := uc.external.FetchRelations(ctx)
		if err != nil {
			if uc.logger != nil {
				uc.logger.Warn("external learner unavailable, merging local evidence only", zap.Error(err))
			}
		} else {
			observed = relations.Combine(observed, ext)
			externalUsed = true
		}
	}

	merged := relations.Merge(persisted, observed)

	if err := uc.repo.UpsertMerged(ctx, merged); err != nil {
		return MergeResult{}, fmt.Errorf("%w: write merged relations: %v", ErrUpstreamUnavailable, err)
	}

	// Re-project under the same lock hold so the published snapshot reflects
	// the merged relation set immediately.
	if _, err := uc.factBases.regenerateLocked(ctx); err != nil {
		return MergeResult{}, err
	}

	result := MergeResult{
		PersistedCount: len(persisted),
		ObservedCount:  len(observed),
		MergedCount:    len(merged),
		ExternalUsed:   externalUsed,
	}
	if uc.logger != nil {
		uc.logger.Info("relations merged",
			zap.Int("persisted", result.PersistedCount),
			zap.Int("observed", result.ObservedCount),
			zap.Int("merged", result.MergedCount),
			zap.Bool("external", result.ExternalUsed))
	}
	if uc.notifier != nil {
		uc.notifier.Publish("relations_merged", result)
	}
	return result, nil
}

// Deactivate soft-deletes one learned relation, then republishes the
// snapshot so queries stop expanding through it. The write shares the merge
// lock: a deactivation landing between a merge's read and its write-back
// would otherwise be re-upserted as active.
func (uc *RelationsUsecase) Deactivate(ctx context.Context, baseSkill, targetSkill string) error {
	baseSkill = facts.Normalize(baseSkill)
	targetSkill = facts.Normalize(targetSkill)
	if baseSkill == "" || targetSkill == "" {
		return ErrInvalidQuery
	}

	release, err := uc.store.Acquire(ctx, uc.lockWait)
	if err != nil {
		if errors.Is(err, facts.ErrRegenerationBusy) {
			return ErrEngineBusy
		}
		return err
	}
	defer release()

	if err := uc.repo.Deactivate(ctx, baseSkill, targetSkill); err != nil {
		if errors.Is(err, repository.ErrRelationNotFound) {
			return ErrRelationNotFound
		}
		return err
	}

	_, err = uc.factBases.regenerateLocked(ctx)
	return err
}

// ListActive exposes the persisted relation set for inspection.
func (uc *RelationsUsecase) ListActive(ctx context.Context) ([]relations.Relation, error) {
	rels, err := uc.repo.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: read persisted relations: %v", ErrUpstreamUnavailable, err)
	}
	return rels, nil
}

// TriggerExternalLearning asks the external process to start a learning pass.
func (uc *RelationsUsecase) TriggerExternalLearning(ctx context.Context) error {
	if uc.external == nil {
		return fmt.Errorf("%w: no external learner configured", ErrUpstreamUnavailable)
	}
	if err := uc.external.TriggerLearning(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	return nil
}

// evidenceGroups collects one skill-name group per person and per offer. A
// person holding two skills and an offer requiring them together are both
// counted as co-occurrence evidence.
func evidenceGroups(fb *facts.FactBase) [][]string {
	groups := make([][]string, 0, len(fb.PersonSkills)+len(fb.Requirements))
	for _, personSkills := range fb.PersonSkills {
		if len(personSkills) < 2 {
			continue
		}
		names := make([]string, 0, len(personSkills))
		for _, ps := range personSkills {
			names = append(names, ps.SkillName)
		}
		groups = append(groups, names)
	}
	for _, reqs := range fb.Requirements {
		if len(reqs) < 2 {
			continue
		}
		names := make([]string, 0, len(reqs))
		for _, r := range reqs {
			names = append(names, r.SkillName)
		}
		groups = append(groups, names)
	}
	return groups
}
