package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"chicken-road-backend/internal/config"
	"chicken-road-backend/internal/models"
)

// RedisStore is the durable SessionStore. Records are JSON-marshalled users
// under user:<id> keys.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(cfg *config.Config) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisURL,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

func (s *RedisStore) OpenOrCreate(ctx context.Context, userID string) (*models.User, error) {
	if userID == "" {
		userID = uuid.New().String()
	}

	key := fmt.Sprintf(KeyUser, userID)

	user := models.NewUser(userID)
	data, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal user: %w", err)
	}

	// SetNX settles the create-or-fetch race: exactly one caller creates,
	// everyone else reads the record that won.
	created, err := s.client.SetNX(ctx, key, data, TTLUser).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	if created {
		return user, nil
	}

	return s.Find(ctx, userID)
}

func (s *RedisStore) Find(ctx context.Context, userID string) (*models.User, error) {
	key := fmt.Sprintf(KeyUser, userID)

	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var user models.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return &user, nil
}

func (s *RedisStore) Delete(ctx context.Context, userID string) (bool, error) {
	key := fmt.Sprintf(KeyUser, userID)

	removed, err := s.client.Del(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to delete user: %w", err)
	}

	return removed > 0, nil
}

// adjustBalanceScript applies the delta server-side so two concurrent
// adjustments on the same user can never interleave.
var adjustBalanceScript = redis.NewScript(`
	local key = KEYS[1]
	local delta = tonumber(ARGV[1])

	local data = redis.call("GET", key)
	if not data then
		return redis.error_reply("user not found")
	end

	local user = cjson.decode(data)
	user.balance = user.balance + delta
	user.updated_at = ARGV[2]

	local updated = cjson.encode(user)
	redis.call("SET", key, updated)

	return updated
`)

func (s *RedisStore) AdjustBalance(ctx context.Context, userID string, delta float64) (*models.User, error) {
	key := fmt.Sprintf(KeyUser, userID)
	now := time.Now().Format(time.RFC3339Nano)

	data, err := adjustBalanceScript.Run(ctx, s.client, []string{key}, delta, now).Text()
	if err != nil {
		if strings.Contains(err.Error(), "user not found") {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to adjust balance: %w", err)
	}

	var user models.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return &user, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
