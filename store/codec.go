package store

import (
	"encoding/json"
	"fmt"

	"github.com/sicko7947/claimflow"
)

// ClaimKey is the reserved key of the single claim record
const ClaimKey = "claim"

// EncodeClaim serializes a claim with its stable field names
// (patient, medical_record, is_approved)
func EncodeClaim(claim *claimflow.Claim) ([]byte, error) {
	if claim == nil {
		return nil, fmt.Errorf("cannot encode nil claim")
	}
	data, err := json.Marshal(claim)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal claim: %w", err)
	}
	return data, nil
}

// DecodeClaim deserializes a claim produced by EncodeClaim
func DecodeClaim(data []byte) (*claimflow.Claim, error) {
	var claim claimflow.Claim
	if err := json.Unmarshal(data, &claim); err != nil {
		return nil, fmt.Errorf("failed to unmarshal claim: %w", err)
	}
	return &claim, nil
}

// notFound wraps ErrClaimNotFound with the backend name
func notFound(backend string) error {
	return fmt.Errorf("%s: %s %w", backend, ClaimKey, claimflow.ErrClaimNotFound)
}
