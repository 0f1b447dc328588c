package store

import "fmt"

// DynamoDB schema constants for single-table design
const (
	// Table attributes
	AttrPK         = "PK"
	AttrSK         = "SK"
	AttrEntityType = "entity_type"
	AttrUpdatedAt  = "updated_at"

	// Entity types
	EntityTypeClaim = "Claim"
)

// Key builders for single-table design

// Claim keys: PK=CLAIM#{key}, SK=META
func claimPK(key string) string {
	return fmt.Sprintf("CLAIM#%s", key)
}

func claimSK() string {
	return "META"
}
