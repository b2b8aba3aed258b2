package otp

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// codeStore is the key/value surface the local provider needs.
type codeStore interface {
	// SetNX stores value under key unless it exists and reports whether it was stored.
	SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// Get returns ("", false, nil) for a missing key.
	Get(ctx context.Context, key string) (string, bool, error)
	// Incr increments key, setting ttl when the key is created.
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
	Del(ctx context.Context, keys ...string) error
}

type redisCodeStore struct {
	client *redis.Client
}

func newRedisCodeStore(client *redis.Client) codeStore {
	return &redisCodeStore{client: client}
}

func (s *redisCodeStore) SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, key, value, ttl).Result()

	return ok, errors.WithStack(err)
}

func (s *redisCodeStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return errors.WithStack(s.client.Set(ctx, key, value, ttl).Err())
}

func (s *redisCodeStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.WithStack(err)
	}

	return value, true, nil
}

func (s *redisCodeStore) Incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	n, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, errors.WithStack(err)
	}
	if n == 1 {
		if err := s.client.Expire(ctx, key, ttl).Err(); err != nil {
			return 0, errors.WithStack(err)
		}
	}

	return n, nil
}

func (s *redisCodeStore) Del(ctx context.Context, keys ...string) error {
	return errors.WithStack(s.client.Del(ctx, keys...).Err())
}
