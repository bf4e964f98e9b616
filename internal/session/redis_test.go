package session

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
)

func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()

	mr := miniredis.RunT(t)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError, // Reduce noise in tests
	}))

	store := NewRedisStore(mr.Addr(), logger)
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	return store
}

func TestRedisStore(t *testing.T) {
	store := newTestRedisStore(t)
	ctx := context.Background()

	if err := store.Ping(ctx); err != nil {
		t.Fatalf("ping failed: %v", err)
	}

	rec := testRecord(t)
	if err := store.Save(ctx, rec.ID, rec); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	loaded, err := store.Load(ctx, rec.ID)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected record, got nil")
	}
	if loaded.Character.Name != "Aria" {
		t.Errorf("unexpected character name: %q", loaded.Character.Name)
	}
	if len(loaded.State.Inventory) != 1 || loaded.State.Inventory[0] != "rope" {
		t.Errorf("unexpected inventory: %v", loaded.State.Inventory)
	}

	if err := store.Delete(ctx, rec.ID); err != nil {
		t.Fatalf("failed to delete: %v", err)
	}
	gone, err := store.Load(ctx, rec.ID)
	if err != nil {
		t.Fatalf("failed to load after delete: %v", err)
	}
	if gone != nil {
		t.Error("expected nil after delete")
	}
}

func TestRedisStoreLoadMissing(t *testing.T) {
	store := newTestRedisStore(t)

	rec, err := store.Load(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec != nil {
		t.Error("expected nil for missing session")
	}
}

func TestRedisStoreSetsTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	store := NewRedisStore(mr.Addr(), logger)
	defer func() {
		_ = store.Close()
	}()

	rec := testRecord(t)
	if err := store.Save(context.Background(), rec.ID, rec); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	ttl := mr.TTL(keyPrefix + rec.ID.String())
	if ttl != SessionTTL {
		t.Errorf("expected TTL %v, got %v", SessionTTL, ttl)
	}
}
