package cache

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesCachedValueAfterFirstLoad(t *testing.T) {
	t.Parallel()

	store := NewStore[string](time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (string, error) {
		calls.Add(1)
		return "cached", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", time.Minute, loader); err != nil {
		t.Fatalf("first GetOrLoad error: %v", err)
	}
	got, err := store.GetOrLoad(context.Background(), "k", time.Minute, loader)
	if err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}
	if got != "cached" {
		t.Fatalf("unexpected value: got=%q want=%q", got, "cached")
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_DoesNotCacheLoaderError(t *testing.T) {
	t.Parallel()

	store := NewStore[int](time.Minute)
	var calls atomic.Int32
	loadErr := errors.New("upstream down")

	failing := func(context.Context) (int, error) {
		calls.Add(1)
		return 0, loadErr
	}

	if _, err := store.GetOrLoad(context.Background(), "k", time.Minute, failing); !errors.Is(err, loadErr) {
		t.Fatalf("expected loader error, got %v", err)
	}
	if _, ok := store.Get(context.Background(), "k"); ok {
		t.Fatalf("expected no cached entry after loader error")
	}

	got, err := store.GetOrLoad(context.Background(), "k", time.Minute, func(context.Context) (int, error) {
		calls.Add(1)
		return 7, nil
	})
	if err != nil {
		t.Fatalf("GetOrLoad after failure: %v", err)
	}
	if got != 7 {
		t.Fatalf("unexpected value: got=%d want=7", got)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("loader called %d times, want 2", got)
	}
}

func TestStore_EntryExpiresAfterItsTTL(t *testing.T) {
	t.Parallel()

	store := NewStore[string](time.Hour)
	ctx := context.Background()

	store.Set(ctx, "short", "a", 20*time.Millisecond)
	store.Set(ctx, "long", "b", time.Hour)

	if _, ok := store.Get(ctx, "short"); !ok {
		t.Fatalf("expected short entry before expiry")
	}

	time.Sleep(60 * time.Millisecond)

	if _, ok := store.Get(ctx, "short"); ok {
		t.Fatalf("expected short entry to be expired")
	}
	if v, ok := store.Get(ctx, "long"); !ok || v != "b" {
		t.Fatalf("expected long entry to survive, got=%q ok=%v", v, ok)
	}
}

func TestStore_EmptyKeyIsNeverCached(t *testing.T) {
	t.Parallel()

	store := NewStore[string](time.Minute)
	ctx := context.Background()

	store.Set(ctx, "", "x", time.Minute)
	if _, ok := store.Get(ctx, ""); ok {
		t.Fatalf("expected empty key to be ignored")
	}

	store.Set(ctx, "k", "v", 0)
	if v, ok := store.Get(ctx, "k"); !ok || v != "v" {
		t.Fatalf("expected default ttl entry, got=%q ok=%v", v, ok)
	}
}
