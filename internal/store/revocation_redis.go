// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

const revokedKeyPrefix = "task-keeper:revoked:"

// RedisRevocationStore keeps revoked token ids as expiring Redis keys.
type RedisRevocationStore struct {
	client *redis.Client
	now    func() time.Time
}

// NewRedisRevocationStore connects to Redis and verifies the connection.
func NewRedisRevocationStore(ctx context.Context, cfg config.Redis, log *logger.Logger) (*RedisRevocationStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisRevocationStore").Str("address", cfg.Address).Msg("error connecting redis")
		_ = client.Close()
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Info().Str("func", "NewRedisRevocationStore").Str("address", cfg.Address).Msg("connected to redis successfully")

	return &RedisRevocationStore{client: client, now: time.Now}, nil
}

// Revoke stores tokenID until the given time. Tokens that already expired
// need no entry.
func (s *RedisRevocationStore) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := until.Sub(s.now())
	if ttl <= 0 {
		return nil
	}

	if err := s.client.Set(ctx, revokedKeyPrefix+tokenID, 1, ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*RedisRevocationStore.Revoke").Msg("error revoking session")
		return fmt.Errorf("error revoking session: %w", err)
	}

	return nil
}

func (s *RedisRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*RedisRevocationStore.IsRevoked").Msg("error checking revocation")
		return false, fmt.Errorf("error checking session revocation: %w", err)
	}

	return n > 0, nil
}

// Ping reports whether Redis is reachable.
func (s *RedisRevocationStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisRevocationStore) Close() error {
	return s.client.Close()
}
