package claimflow

import "context"

// ClaimStore defines the persistence interface for the single claim slot
type ClaimStore interface {
	// LoadClaim returns the stored claim. It returns an error wrapping
	// ErrClaimNotFound when no claim has ever been saved.
	LoadClaim(ctx context.Context) (*Claim, error)

	// SaveClaim overwrites the stored claim unconditionally
	SaveClaim(ctx context.Context, claim *Claim) error
}

// IdentityValidator confirms that a textual identity reference is well-formed
type IdentityValidator interface {
	ValidateIdentity(ref string) (Identity, error)
}

// IdentityValidatorFunc adapts a function to IdentityValidator
type IdentityValidatorFunc func(ref string) (Identity, error)

// ValidateIdentity calls f(ref)
func (f IdentityValidatorFunc) ValidateIdentity(ref string) (Identity, error) {
	return f(ref)
}
