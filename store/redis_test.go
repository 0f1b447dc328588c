package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sicko7947/claimflow"
)

// fakeRedis overrides the two commands RedisStore issues. Any other call
// panics on the nil embedded interface.
type fakeRedis struct {
	redis.Cmdable
	data   map[string]string
	getErr error
	setErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: make(map[string]string)}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx, "get", key)
	switch value, ok := f.data[key]; {
	case f.getErr != nil:
		cmd.SetErr(f.getErr)
	case !ok:
		cmd.SetErr(redis.Nil)
	default:
		cmd.SetVal(value)
	}
	return cmd
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx, "set", key, value)
	if f.setErr != nil {
		cmd.SetErr(f.setErr)
		return cmd
	}
	f.data[key] = string(value.([]byte))
	cmd.SetVal("OK")
	return cmd
}

func TestRedisStore_DefaultPrefix(t *testing.T) {
	store := NewRedisStore(newFakeRedis(), "")
	assert.Equal(t, "claimflow:claim", store.keyClaim())
}

func TestRedisStore_SaveLoad(t *testing.T) {
	client := newFakeRedis()
	store := NewRedisStore(client, "test:")
	ctx := context.Background()

	_, err := store.LoadClaim(ctx)
	require.ErrorIs(t, err, claimflow.ErrClaimNotFound)

	claim := &claimflow.Claim{Patient: "addr-patient", MedicalRecord: "r1"}
	require.NoError(t, store.SaveClaim(ctx, claim))
	assert.JSONEq(t,
		`{"patient":"addr-patient","medical_record":"r1","is_approved":false}`,
		client.data["test:claim"],
	)

	got, err := store.LoadClaim(ctx)
	require.NoError(t, err)
	assert.Equal(t, claim, got)
}

func TestRedisStore_Errors(t *testing.T) {
	client := newFakeRedis()
	client.getErr = errors.New("connection refused")
	client.setErr = errors.New("READONLY")
	store := NewRedisStore(client, "test:")
	ctx := context.Background()

	_, err := store.LoadClaim(ctx)
	require.Error(t, err)
	assert.False(t, errors.Is(err, claimflow.ErrClaimNotFound))

	err = store.SaveClaim(ctx, &claimflow.Claim{Patient: "addr-patient"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "READONLY")
}
