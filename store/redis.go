package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/sicko7947/claimflow"
)

// RedisStore implements claimflow.ClaimStore on a single Redis key:
//
//	<prefix>claim => JSON-encoded claim
type RedisStore struct {
	client redis.Cmdable
	prefix string
}

var _ claimflow.ClaimStore = (*RedisStore)(nil)

// NewRedisStore creates a RedisStore.
// prefix is optional but recommended (e.g. "claimflow:").
func NewRedisStore(client redis.Cmdable, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "claimflow:"
	}
	return &RedisStore{
		client: client,
		prefix: prefix,
	}
}

func (s *RedisStore) keyClaim() string {
	return s.prefix + ClaimKey
}

func (s *RedisStore) LoadClaim(ctx context.Context) (*claimflow.Claim, error) {
	value, err := s.client.Get(ctx, s.keyClaim()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, notFound("redis")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load claim: %w", err)
	}

	return DecodeClaim(value)
}

func (s *RedisStore) SaveClaim(ctx context.Context, claim *claimflow.Claim) error {
	value, err := EncodeClaim(claim)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, s.keyClaim(), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to save claim: %w", err)
	}
	return nil
}
