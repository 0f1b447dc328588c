package store

import (
	"context"
	"sync"

	"github.com/sicko7947/claimflow"
)

// MemoryStore implements claimflow.ClaimStore using in-memory storage (for testing)
type MemoryStore struct {
	data map[string][]byte // key -> encoded claim
	mu   sync.RWMutex
}

// NewMemoryStore creates a new in-memory claim store
func NewMemoryStore() claimflow.ClaimStore {
	return &MemoryStore{
		data: make(map[string][]byte),
	}
}

func (s *MemoryStore) LoadClaim(ctx context.Context) (*claimflow.Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, exists := s.data[ClaimKey]
	if !exists {
		return nil, notFound("memory")
	}

	// Decoding yields a fresh copy
	return DecodeClaim(value)
}

func (s *MemoryStore) SaveClaim(ctx context.Context, claim *claimflow.Claim) error {
	value, err := EncodeClaim(claim)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[ClaimKey] = value
	return nil
}
