package identity

import (
	"crypto/ed25519"
	"crypto/rand"
	"strings"
	"testing"

	"github.com/mr-tron/base58/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveBase58_Validates(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	id, err := DeriveBase58("clm1", pub)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id.String(), "clm1"))

	got, err := NewBase58Validator("clm1").ValidateIdentity(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestDeriveBase58_Deterministic(t *testing.T) {
	pub := ed25519.PublicKey(make([]byte, ed25519.PublicKeySize))

	first, err := DeriveBase58("clm1", pub)
	require.NoError(t, err)
	second, err := DeriveBase58("clm1", pub)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDeriveBase58_BadKeySize(t *testing.T) {
	_, err := DeriveBase58("clm1", []byte{1, 2, 3})
	assert.Error(t, err)
}

func TestBase58Validator_Rejects(t *testing.T) {
	v := NewBase58Validator("clm1")
	short := "clm1" + base58.Encode([]byte{1, 2, 3, 4})

	tests := []struct {
		name string
		ref  string
		want error
	}{
		{name: "empty", ref: "", want: ErrEmpty},
		{name: "wrong prefix", ref: "aim1" + base58.Encode(make([]byte, 32)), want: ErrPrefix},
		{name: "prefix only", ref: "clm1", want: ErrPayload},
		{name: "invalid alphabet", ref: "clm10OIl", want: ErrPayload},
		{name: "wrong size", ref: short, want: ErrPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.ValidateIdentity(tt.ref)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBase58Validator_CustomPayloadSize(t *testing.T) {
	v := Base58Validator{Prefix: "dev", PayloadSize: 4}

	_, err := v.ValidateIdentity("dev" + base58.Encode([]byte{9, 8, 7, 6}))
	assert.NoError(t, err)
}
