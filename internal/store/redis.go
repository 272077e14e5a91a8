package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/trmnl-weather/internal/domain"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "trmnl-weather:snapshot:"

// RedisStore keeps snapshots as JSON values that expire after ttl, so a
// stalled refresher stops serving stale panels.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisStore connects to Redis and verifies the connection with a PING.
func NewRedisStore(ctx context.Context, addr, password string, db int, ttl time.Duration, logger *slog.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", addr, err)
	}

	logger.Info("connected to redis", "addr", addr, "db", db)
	return &RedisStore{client: client, ttl: ttl, logger: logger}, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) Save(ctx context.Context, snap domain.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("serialize snapshot: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+snap.Key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", snap.Key, err)
	}
	s.logger.Debug("snapshot saved", "key", snap.Key, "ttl", s.ttl)
	return nil
}

func (s *RedisStore) Latest(ctx context.Context, key string) (domain.Snapshot, error) {
	data, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Snapshot{}, ErrNotFound
	}
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("redis get %s: %w", key, err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return domain.Snapshot{}, fmt.Errorf("deserialize snapshot: %w", err)
	}
	return snap, nil
}
