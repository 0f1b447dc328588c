// Package identity validates textual identity references before the claim
// workflow accepts them.
package identity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sicko7947/claimflow"
)

var (
	ErrEmpty         = errors.New("empty identity")
	ErrNotNormalized = errors.New("identity not normalized")
	ErrLength        = errors.New("identity length out of range")
	ErrCharset       = errors.New("identity contains invalid characters")
)

// Default bounds of FormatValidator
const (
	DefaultMinLength = 3
	DefaultMaxLength = 90
)

// FormatValidator accepts plain identities made of lowercase letters,
// digits, '.', '_' and '-'. Input must already be in canonical form:
// surrounding whitespace or uppercase letters are rejected, never fixed.
type FormatValidator struct {
	MinLength int
	MaxLength int
}

var _ claimflow.IdentityValidator = FormatValidator{}

// NewFormatValidator creates a FormatValidator with the default bounds
func NewFormatValidator() FormatValidator {
	return FormatValidator{
		MinLength: DefaultMinLength,
		MaxLength: DefaultMaxLength,
	}
}

// ValidateIdentity implements claimflow.IdentityValidator
func (v FormatValidator) ValidateIdentity(ref string) (claimflow.Identity, error) {
	if ref == "" {
		return "", ErrEmpty
	}
	if strings.TrimSpace(ref) != ref || strings.ToLower(ref) != ref {
		return "", fmt.Errorf("%w: %q", ErrNotNormalized, ref)
	}

	minLen, maxLen := v.MinLength, v.MaxLength
	if minLen <= 0 {
		minLen = DefaultMinLength
	}
	if maxLen <= 0 {
		maxLen = DefaultMaxLength
	}
	if len(ref) < minLen || len(ref) > maxLen {
		return "", fmt.Errorf("%w: %d not in [%d, %d]", ErrLength, len(ref), minLen, maxLen)
	}

	for i, r := range ref {
		if !isIdentityRune(r) {
			return "", fmt.Errorf("%w: %q at offset %d", ErrCharset, r, i)
		}
	}

	return claimflow.Identity(ref), nil
}

func isIdentityRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '.' || r == '_' || r == '-':
		return true
	}
	return false
}
