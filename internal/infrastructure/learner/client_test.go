package learner

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"talentmatch/internal/config"
	"talentmatch/internal/domain/relations"

	"go.uber.org/zap"
)

func TestNewDisabledWithoutURL(t *testing.T) {
	if c := New(config.LearnerConfig{}, zap.NewNop()); c != nil {
		t.Fatalf("expected nil client without base url")
	}
}

func TestFetchRelations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/relations" || r.Method != http.MethodGet {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"relations":[{"base_skill":"Python","target_skill":"Django","confidence":0.85,"frequency":12}]}`))
	}))
	defer srv.Close()

	c := New(config.LearnerConfig{BaseURL: srv.URL}, zap.NewNop())
	rels, err := c.FetchRelations(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(rels) != 1 {
		t.Fatalf("expected 1 relation, got %d", len(rels))
	}
	r := rels[0]
	if r.BaseSkill != "Python" || r.TargetSkill != "Django" || r.Confidence != 0.85 || r.Frequency != 12 {
		t.Fatalf("unexpected relation %+v", r)
	}
	if r.Source != relations.SourceExternal || !r.Active {
		t.Fatalf("fetched relation must be active external: %+v", r)
	}
}

func TestFetchRelationsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(config.LearnerConfig{BaseURL: srv.URL}, zap.NewNop())
	if _, err := c.FetchRelations(context.Background()); err == nil {
		t.Fatalf("expected error on 500")
	}
}

func TestTriggerLearning(t *testing.T) {
	var called bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/learn" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		called = true
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	c := New(config.LearnerConfig{BaseURL: srv.URL}, zap.NewNop())
	if err := c.TriggerLearning(context.Background()); err != nil {
		t.Fatalf("trigger: %v", err)
	}
	if !called {
		t.Fatalf("learn endpoint not called")
	}
}
