package mirror

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "storefront:"

// RedisStore keeps each slot as a JSON blob under a prefixed Redis key.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore creates a RedisStore on top of an existing client.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Read(ctx context.Context, key string) ([]byte, error) {
	data, err := s.rdb.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *RedisStore) Write(ctx context.Context, key string, value []byte) error {
	return s.rdb.Set(ctx, redisKeyPrefix+key, value, 0).Err()
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, redisKeyPrefix+key).Err()
}
