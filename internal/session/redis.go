package session

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/desertthunder/festify/internal/models"
	"github.com/desertthunder/festify/internal/shared"
)

// keyPrefix namespaces session hashes in the shared redis instance.
const keyPrefix = "festify:session:"

// RedisStore implements [Store] on a redis hash per session identifier.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a RedisStore with the given client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func key(sessionID string) string {
	return keyPrefix + sessionID
}

// Load retrieves and decodes the session hash.
//
// HGETALL returns an empty map for a missing key, which maps to
// [shared.ErrNoSession].
func (s *RedisStore) Load(ctx context.Context, sessionID string) (*models.SessionData, error) {
	fields, err := s.client.HGetAll(ctx, key(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if len(fields) == 0 {
		return nil, shared.ErrNoSession
	}
	return decode(fields), nil
}

// Reset deletes the stale customization fields then writes the new minimal
// record. Deletion and write are two operations; if the write fails after the
// delete succeeded the record is left degraded, which the caller logs.
func (s *RedisStore) Reset(ctx context.Context, sessionID string, data *models.SessionData) error {
	k := key(sessionID)

	if err := s.client.HDel(ctx, k, staleFields...).Err(); err != nil {
		return fmt.Errorf("failed to clear stale session fields: %w", err)
	}

	if err := s.client.HSet(ctx, k, minimalRecord(data)).Err(); err != nil {
		return fmt.Errorf("failed to write session record: %w", err)
	}

	return nil
}

// Merge shallow-merges fields into the session hash.
func (s *RedisStore) Merge(ctx context.Context, sessionID string, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	if err := s.client.HSet(ctx, key(sessionID), fields).Err(); err != nil {
		return fmt.Errorf("failed to merge session fields: %w", err)
	}
	return nil
}
