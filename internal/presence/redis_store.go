package presence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed presence store. Store paths map
// directly onto Redis keys ("usuarios_conectados/<key>").
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Get(ctx context.Context, path string) (*Record, error) {
	val, err := r.client.Get(ctx, path).Result()
	if err == redis.Nil {
		return nil, nil // not found
	}
	if err != nil {
		return nil, err
	}

	var rec Record
	if err := json.Unmarshal([]byte(val), &rec); err != nil {
		return nil, fmt.Errorf("presence: failed to unmarshal %s: %w", path, err)
	}

	return &rec, nil
}

func (r *RedisStore) Remove(ctx context.Context, path string) error {
	// DEL of a missing key is already a no-op, which is exactly the
	// contract Remove promises.
	return r.client.Del(ctx, path).Err()
}

func (r *RedisStore) ListAll(ctx context.Context, collection string) ([]Entry, error) {

	prefix := collection + "/"

	var entries []Entry

	iter := r.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()

		val, err := r.client.Get(ctx, key).Result()
		if err == redis.Nil {
			continue // expired between SCAN and GET
		}
		if err != nil {
			return nil, err
		}

		var rec Record
		if err := json.Unmarshal([]byte(val), &rec); err != nil {
			return nil, fmt.Errorf("presence: failed to unmarshal %s: %w", key, err)
		}

		entries = append(entries, Entry{
			Key:    strings.TrimPrefix(key, prefix),
			Record: rec,
		})
	}

	if err := iter.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
