package engine

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/sicko7947/claimflow"
	"github.com/sicko7947/claimflow/identity"
	"github.com/sicko7947/claimflow/store"
)

func newSQLiteClaimStore(t *testing.T) claimflow.ClaimStore {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	s, err := store.NewSQLiteStore(context.Background(), db)
	require.NoError(t, err)
	return s
}

// TestClaimLifecycle_Backends runs the full lifecycle against each store
// backend that needs no external service
func TestClaimLifecycle_Backends(t *testing.T) {
	backends := map[string]func(t *testing.T) claimflow.ClaimStore{
		"memory": func(t *testing.T) claimflow.ClaimStore { return store.NewMemoryStore() },
		"sqlite": newSQLiteClaimStore,
	}

	for name, newStore := range backends {
		t.Run(name, func(t *testing.T) {
			claimStore := newStore(t)
			eng := newTestEngine(t, claimStore)
			ctx := context.Background()

			_, err := eng.Instantiate(ctx, as(creator), claimflow.InstantiateMsg{})
			require.NoError(t, err)

			_, err = eng.Execute(ctx, as(creator), approveMsg(creator.String()))
			assert.ErrorIs(t, err, claimflow.ErrClaimNotFound)

			_, err = eng.Execute(ctx, as(creator), submitMsg(patient, "r1"))
			require.NoError(t, err)

			_, err = eng.Execute(ctx, as(creator), submitMsg(patient, "r1"))
			assert.ErrorIs(t, err, claimflow.ErrClaimAlreadyExists)

			_, err = eng.Execute(ctx, as(outsider), approveMsg(creator.String()))
			assert.ErrorIs(t, err, claimflow.ErrUnauthorized)

			_, err = eng.Execute(ctx, as(creator), approveMsg(creator.String()))
			require.NoError(t, err)

			_, err = eng.Execute(ctx, as(creator), approveMsg(creator.String()))
			assert.ErrorIs(t, err, claimflow.ErrClaimAlreadyApproved)

			claim, err := claimStore.LoadClaim(ctx)
			require.NoError(t, err)
			assert.Equal(t, &claimflow.Claim{
				Patient:       patient,
				MedicalRecord: "r1",
				IsApproved:    true,
			}, claim)
		})
	}
}

// TestClaimLifecycle_Base58Identities uses derived identities end to end
func TestClaimLifecycle_Base58Identities(t *testing.T) {
	validator := identity.NewBase58Validator("clm1")
	eng := NewEngine(store.NewMemoryStore(), validator, WithLogger(testLogger(t)))
	ctx := context.Background()

	patientID, err := identity.DeriveBase58("clm1", make([]byte, 32))
	require.NoError(t, err)
	adminKey := make([]byte, 32)
	adminKey[0] = 1
	adminID, err := identity.DeriveBase58("clm1", adminKey)
	require.NoError(t, err)

	_, err = eng.SubmitClaim(ctx, as(adminID), "addr-patient", "r1")
	assert.ErrorIs(t, err, claimflow.ErrInvalidIdentity)

	_, err = eng.SubmitClaim(ctx, as(adminID), patientID.String(), "r1")
	require.NoError(t, err)

	_, err = eng.ApproveClaim(ctx, as(adminID), adminID.String())
	require.NoError(t, err)
}
