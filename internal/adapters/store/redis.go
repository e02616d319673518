// internal/adapters/store/redis.go
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/vegatek/stocktake/internal/core/domain"
	"github.com/vegatek/stocktake/internal/core/ports"
)

// RedisStore persists the count list in Redis. Meant for kiosk or shared
// terminal deployments where several devices resume the same count.
type RedisStore struct {
	client *redis.Client
	key    string
	strict bool
	logger *slog.Logger
}

// Statically assert that *RedisStore implements the CountStore port.
var _ ports.CountStore = (*RedisStore)(nil)

// NewRedisStore creates a Redis-backed count store.
func NewRedisStore(client *redis.Client, key string, strict bool, logger *slog.Logger) *RedisStore {
	if key == "" {
		key = DefaultKey
	}
	return &RedisStore{
		client: client,
		key:    key,
		strict: strict,
		logger: logger.With(slog.String("component", "redis_store")),
	}
}

// Load restores the persisted list. A missing key or corrupt value degrades
// to an empty list unless the store is strict.
func (s *RedisStore) Load(ctx context.Context) ([]domain.CountItem, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []domain.CountItem{}, nil
	}
	if err != nil {
		if s.strict {
			return nil, fmt.Errorf("%w: redis get failed: %v", domain.ErrPersistence, err)
		}
		s.logger.WarnContext(ctx, "redis read failed, starting with empty count list",
			slog.String("error", err.Error()))
		return []domain.CountItem{}, nil
	}

	var items []domain.CountItem
	if err := json.Unmarshal(raw, &items); err != nil {
		if s.strict {
			return nil, fmt.Errorf("%w: stored count list is corrupt: %v", domain.ErrPersistence, err)
		}
		s.logger.WarnContext(ctx, "stored count list is corrupt, starting with empty count list",
			slog.String("error", err.Error()))
		return []domain.CountItem{}, nil
	}
	if items == nil {
		items = []domain.CountItem{}
	}
	return items, nil
}

// Save serializes the full list and overwrites the stored value. The entry
// never expires; only a successful submission clears it.
func (s *RedisStore) Save(ctx context.Context, items []domain.CountItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		if s.strict {
			return fmt.Errorf("%w: failed to encode count list: %v", domain.ErrPersistence, err)
		}
		s.logger.WarnContext(ctx, "failed to encode count list, not persisted",
			slog.String("error", err.Error()))
		return nil
	}

	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		if s.strict {
			return fmt.Errorf("%w: redis set failed: %v", domain.ErrPersistence, err)
		}
		s.logger.WarnContext(ctx, "redis write failed, count list not persisted",
			slog.String("error", err.Error()))
		return nil
	}
	return nil
}

// Ping checks that Redis is reachable.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: redis ping failed: %v", domain.ErrPersistence, err)
	}
	return nil
}
