package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"chicken-road-backend/internal/config"
	"chicken-road-backend/internal/models"
	"chicken-road-backend/internal/store"
)

func setupTestRedis(t *testing.T) *store.RedisStore {
	t.Helper()

	cfg := &config.Config{
		RedisURL:  "localhost:6379",
		RedisPass: "",
		RedisDB:   0,
	}

	s, err := store.NewRedisStore(cfg)
	if err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return s
}

func TestRedisStoreLifecycle(t *testing.T) {
	s := setupTestRedis(t)
	ctx := context.Background()
	userID := "test-" + uuid.New().String()

	t.Cleanup(func() { s.Delete(ctx, userID) })

	user, err := s.OpenOrCreate(ctx, userID)
	if err != nil {
		t.Fatalf("OpenOrCreate failed: %v", err)
	}
	if user.Balance != models.DefaultBalance {
		t.Errorf("default balance = %f, want %f", user.Balance, models.DefaultBalance)
	}

	found, err := s.Find(ctx, userID)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if found.UserID != userID {
		t.Errorf("Find returned user %s", found.UserID)
	}

	adjusted, err := s.AdjustBalance(ctx, userID, 50)
	if err != nil {
		t.Fatalf("AdjustBalance failed: %v", err)
	}
	if adjusted.Balance != models.DefaultBalance+50 {
		t.Errorf("balance after cashout = %f, want %f", adjusted.Balance, models.DefaultBalance+50)
	}

	existed, err := s.Delete(ctx, userID)
	if err != nil || !existed {
		t.Fatalf("Delete = (%v, %v), want (true, nil)", existed, err)
	}
	if _, err := s.Find(ctx, userID); !errors.Is(err, store.ErrUserNotFound) {
		t.Errorf("Find after delete = %v, want ErrUserNotFound", err)
	}
}

func TestRedisStoreAdjustUnknownUser(t *testing.T) {
	s := setupTestRedis(t)

	if _, err := s.AdjustBalance(context.Background(), "ghost-"+uuid.New().String(), 10); !errors.Is(err, store.ErrUserNotFound) {
		t.Errorf("AdjustBalance on unknown user = %v, want ErrUserNotFound", err)
	}
}
