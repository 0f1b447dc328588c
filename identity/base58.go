package identity

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	"strings"

	"github.com/mr-tron/base58/base58"
	"golang.org/x/crypto/blake2b"

	"github.com/sicko7947/claimflow"
)

var (
	ErrPrefix  = errors.New("identity prefix mismatch")
	ErrPayload = errors.New("identity payload invalid")
)

// DefaultPayloadSize is the decoded size of a blake2b-256 digest
const DefaultPayloadSize = blake2b.Size256

// Base58Validator accepts identities of the form Prefix + base58(payload)
// where payload decodes to exactly PayloadSize bytes.
type Base58Validator struct {
	Prefix      string
	PayloadSize int
}

var _ claimflow.IdentityValidator = Base58Validator{}

// NewBase58Validator creates a Base58Validator for 32-byte payloads
func NewBase58Validator(prefix string) Base58Validator {
	return Base58Validator{
		Prefix:      prefix,
		PayloadSize: DefaultPayloadSize,
	}
}

// ValidateIdentity implements claimflow.IdentityValidator
func (v Base58Validator) ValidateIdentity(ref string) (claimflow.Identity, error) {
	if ref == "" {
		return "", ErrEmpty
	}
	if !strings.HasPrefix(ref, v.Prefix) {
		return "", fmt.Errorf("%w: want %q", ErrPrefix, v.Prefix)
	}

	encoded := strings.TrimPrefix(ref, v.Prefix)
	if encoded == "" {
		return "", fmt.Errorf("%w: missing payload", ErrPayload)
	}
	payload, err := base58.Decode(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPayload, err)
	}

	size := v.PayloadSize
	if size <= 0 {
		size = DefaultPayloadSize
	}
	if len(payload) != size {
		return "", fmt.Errorf("%w: decoded %d bytes, want %d", ErrPayload, len(payload), size)
	}

	return claimflow.Identity(ref), nil
}

// DeriveBase58 builds the identity of an ed25519 public key:
// prefix + base58(blake2b-256(publicKey))
func DeriveBase58(prefix string, publicKey ed25519.PublicKey) (claimflow.Identity, error) {
	if len(publicKey) != ed25519.PublicKeySize {
		return "", fmt.Errorf("invalid signing public key size: %d", len(publicKey))
	}
	h := blake2b.Sum256(publicKey)
	return claimflow.Identity(prefix + base58.Encode(h[:])), nil
}
