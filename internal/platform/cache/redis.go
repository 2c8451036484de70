package cache

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-redis/redis/v8"
)

const redisScanBatch = 200

// RedisStore is a Backend shared between API replicas.
type RedisStore struct {
	client    redis.UniversalClient
	keyPrefix string
	ttl       time.Duration
}

func NewRedisStore(client redis.UniversalClient, keyPrefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, keyPrefix: keyPrefix, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := s.client.Get(ctx, s.keyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, crerr.Wrapf(err, "redis get %q", key)
	}
	return raw, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.keyPrefix+key, value, s.ttl).Err(); err != nil {
		return crerr.Wrapf(err, "redis set %q", key)
	}
	return nil
}

func (s *RedisStore) DeletePrefix(ctx context.Context, prefix string) error {
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, s.keyPrefix+prefix+"*", redisScanBatch).Result()
		if err != nil {
			return crerr.Wrapf(err, "redis scan prefix %q", prefix)
		}
		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				return crerr.Wrapf(err, "redis delete prefix %q", prefix)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}
