package auth

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Revoker remembers logged-out tokens until they expire.
type Revoker interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// RedisRevoker stores revoked token ids as expiring Redis keys.
type RedisRevoker struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisRevoker(rdb *redis.Client, prefix string) *RedisRevoker {
	return &RedisRevoker{rdb: rdb, prefix: prefix}
}

func (r *RedisRevoker) key(tokenID string) string { return r.prefix + ":revoked:" + tokenID }

func (r *RedisRevoker) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	return r.rdb.Set(ctx, r.key(tokenID), 1, ttl).Err()
}

func (r *RedisRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := r.rdb.Get(ctx, r.key(tokenID)).Err()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, redis.Nil):
		return false, nil
	default:
		return false, err
	}
}

// NopRevoker is used when Redis is unavailable: logout succeeds but the
// token stays valid until it expires.
type NopRevoker struct{}

func (NopRevoker) Revoke(context.Context, string, time.Time) error { return nil }

func (NopRevoker) IsRevoked(context.Context, string) (bool, error) { return false, nil }
