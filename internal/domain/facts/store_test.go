package facts

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestStorePublishAndCurrent(t *testing.T) {
	s := NewStore()
	if s.Current() != nil {
		t.Fatalf("expected nil before first publish")
	}

	fb := NewBuilder().Build()
	s.Publish(fb)
	if s.Current() != fb {
		t.Fatalf("published snapshot not visible")
	}

	fb2 := NewBuilder().Build()
	s.Publish(fb2)
	if s.Current() != fb2 {
		t.Fatalf("second publish not visible")
	}
}

func TestStoreAcquireBusy(t *testing.T) {
	s := NewStore()

	release, err := s.Acquire(context.Background(), 50*time.Millisecond)
	if err != nil {
		t.Fatalf("first acquire: %v", err)
	}

	if _, err := s.Acquire(context.Background(), 20*time.Millisecond); !errors.Is(err, ErrRegenerationBusy) {
		t.Fatalf("expected ErrRegenerationBusy, got %v", err)
	}

	release()
	release2, err := s.Acquire(context.Background(), 50*time.Millisecond)
	if err != nil {
		t.Fatalf("acquire after release: %v", err)
	}
	release2()
}

func TestStoreAcquireContextCanceled(t *testing.T) {
	s := NewStore()
	release, err := s.Acquire(context.Background(), time.Second)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	defer release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Acquire(ctx, time.Second); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
