package store

import (
	"context"
	"errors"
	"testing"

	"github.com/sicko7947/claimflow"
)

func TestNewMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	if store == nil {
		t.Fatal("NewMemoryStore() returned nil")
	}

	// Verify it implements the interface
	var _ claimflow.ClaimStore = store
}

func TestMemoryStore_LoadClaim_NotFound(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.LoadClaim(ctx)
	if err == nil {
		t.Fatal("LoadClaim() on empty store should have failed")
	}
	if !errors.Is(err, claimflow.ErrClaimNotFound) {
		t.Errorf("LoadClaim() error = %v, want ErrClaimNotFound", err)
	}
}

func TestMemoryStore_SaveLoad(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	claim := &claimflow.Claim{
		Patient:       "addr-patient",
		MedicalRecord: "r1",
	}

	if err := store.SaveClaim(ctx, claim); err != nil {
		t.Fatalf("SaveClaim() failed: %v", err)
	}

	retrieved, err := store.LoadClaim(ctx)
	if err != nil {
		t.Fatalf("LoadClaim() failed: %v", err)
	}

	if *retrieved != *claim {
		t.Errorf("Retrieved claim = %+v, want %+v", retrieved, claim)
	}
}

func TestMemoryStore_SaveOverwrites(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	claim := &claimflow.Claim{Patient: "addr-patient", MedicalRecord: "r1"}
	if err := store.SaveClaim(ctx, claim); err != nil {
		t.Fatalf("SaveClaim() failed: %v", err)
	}

	claim.IsApproved = true
	if err := store.SaveClaim(ctx, claim); err != nil {
		t.Fatalf("second SaveClaim() failed: %v", err)
	}

	retrieved, err := store.LoadClaim(ctx)
	if err != nil {
		t.Fatalf("LoadClaim() failed: %v", err)
	}
	if !retrieved.IsApproved {
		t.Error("SaveClaim() did not overwrite the stored claim")
	}
}

func TestMemoryStore_Isolation(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	claim := &claimflow.Claim{Patient: "addr-patient", MedicalRecord: "r1"}
	if err := store.SaveClaim(ctx, claim); err != nil {
		t.Fatalf("SaveClaim() failed: %v", err)
	}

	// Mutating the saved value must not affect the store
	claim.IsApproved = true

	retrieved, err := store.LoadClaim(ctx)
	if err != nil {
		t.Fatalf("LoadClaim() failed: %v", err)
	}
	if retrieved.IsApproved {
		t.Error("store shares memory with the caller's claim")
	}

	// Mutating the loaded value must not affect the store either
	retrieved.MedicalRecord = "changed"
	again, _ := store.LoadClaim(ctx)
	if again.MedicalRecord != "r1" {
		t.Errorf("MedicalRecord = %s, want r1", again.MedicalRecord)
	}
}

func TestMemoryStore_SaveNil(t *testing.T) {
	store := NewMemoryStore()
	if err := store.SaveClaim(context.Background(), nil); err == nil {
		t.Error("SaveClaim(nil) should have failed")
	}
}
