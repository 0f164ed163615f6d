package learner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"talentmatch/internal/config"
	"talentmatch/internal/domain/relations"

	"go.uber.org/zap"
)

// Client talks to the external relation-learning process. Every call carries
// a bounded timeout; a failure here is always recoverable — the caller falls
// back to the persisted relation set.
type Client interface {
	FetchRelations(ctx context.Context) ([]relations.Relation, error)
	TriggerLearning(ctx context.Context) error
}

type httpClient struct {
	baseURL      string
	client       *http.Client
	fetchTimeout time.Duration
	learnTimeout time.Duration
	logger       *zap.Logger
}

type relationPayload struct {
	BaseSkill   string  `json:"base_skill"`
	TargetSkill string  `json:"target_skill"`
	Confidence  float64 `json:"confidence"`
	Frequency   int     `json:"frequency"`
}

type fetchRelationsResponse struct {
	Relations []relationPayload `json:"relations"`
}

// New returns nil when no learner URL is configured; the engine then learns
// from local co-occurrence only.
func New(cfg config.LearnerConfig, logger *zap.Logger) Client {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		return nil
	}

	fetchTimeout := cfg.FetchTimeout
	if fetchTimeout <= 0 {
		fetchTimeout = 10 * time.Second
	}
	learnTimeout := cfg.LearnTimeout
	if learnTimeout <= 0 {
		learnTimeout = 30 * time.Second
	}

	return &httpClient{
		baseURL:      strings.TrimRight(baseURL, "/"),
		client:       &http.Client{Timeout: learnTimeout},
		fetchTimeout: fetchTimeout,
		learnTimeout: learnTimeout,
		logger:       logger,
	}
}

func (c *httpClient) FetchRelations(ctx context.Context) ([]relations.Relation, error) {
	if c == nil || c.client == nil {
		return nil, errors.New("nil learner client")
	}

	ctx, cancel := context.WithTimeout(ctx, c.fetchTimeout)
	defer cancel()

	endpoint := c.baseURL + "/relations"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		bodyStr := strings.TrimSpace(string(rb))
		err := fmt.Errorf("learner fetch failed: status=%d body=%s", resp.StatusCode, bodyStr)
		if c.logger != nil {
			c.logger.Warn("learner fetch failed",
				zap.String("endpoint", endpoint),
				zap.Int("status", resp.StatusCode),
				zap.String("body", bodyStr))
		}
		return nil, err
	}

	var out fetchRelationsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}

	rels := make([]relations.Relation, 0, len(out.Relations))
	for _, p := range out.Relations {
		rels = append(rels, relations.Relation{
			BaseSkill:   p.BaseSkill,
			TargetSkill: p.TargetSkill,
			Confidence:  p.Confidence,
			Frequency:   p.Frequency,
			Source:      relations.SourceExternal,
			Active:      true,
			Provenance:  relations.ProvenanceObserved,
		})
	}
	return rels, nil
}

// TriggerLearning asks the external process to run a learning pass. The
// result is picked up by the next FetchRelations.
func (c *httpClient) TriggerLearning(ctx context.Context) error {
	if c == nil || c.client == nil {
		return errors.New("nil learner client")
	}

	ctx, cancel := context.WithTimeout(ctx, c.learnTimeout)
	defer cancel()

	endpoint := c.baseURL + "/learn"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("learner trigger failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(rb)))
	}
	return nil
}

var _ Client = (*httpClient)(nil)
