package identity

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sicko7947/claimflow"
)

func TestCachedValidator_RemembersOutcomes(t *testing.T) {
	calls := 0
	next := claimflow.IdentityValidatorFunc(func(ref string) (claimflow.Identity, error) {
		calls++
		if ref == "bad" {
			return "", errors.New("rejected")
		}
		return claimflow.Identity(ref), nil
	})

	v := NewCachedValidator(next, time.Minute)
	cached, ok := v.(*CachedValidator)
	require.True(t, ok)

	for i := 0; i < 3; i++ {
		id, err := v.ValidateIdentity("good")
		require.NoError(t, err)
		assert.Equal(t, claimflow.Identity("good"), id)

		_, err = v.ValidateIdentity("bad")
		assert.EqualError(t, err, "rejected")
	}

	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, cached.Len())
}

func TestNewCachedValidator_Disabled(t *testing.T) {
	next := NewFormatValidator()
	assert.Equal(t, claimflow.IdentityValidator(next), NewCachedValidator(next, 0))
}

func TestNewValidator(t *testing.T) {
	v, err := NewValidator(claimflow.IdentityConfig{Format: claimflow.IdentityFormatPlain})
	require.NoError(t, err)
	_, err = v.ValidateIdentity("addr-patient")
	assert.NoError(t, err)

	v, err = NewValidator(claimflow.IdentityConfig{
		Format:      claimflow.IdentityFormatBase58,
		Prefix:      "clm1",
		PayloadSize: 32,
		CacheTTL:    time.Minute,
	})
	require.NoError(t, err)
	assert.IsType(t, &CachedValidator{}, v)
	_, err = v.ValidateIdentity("addr-patient")
	assert.ErrorIs(t, err, ErrPrefix)

	_, err = NewValidator(claimflow.IdentityConfig{Format: "bech32"})
	assert.Error(t, err)
}
