// Package store provides persistence implementations for the claim slot.
// The ClaimStore interface is defined in the parent claimflow package
// (../store_interface.go) to avoid import cycles between the claimflow
// and store packages.
//
// This package contains concrete implementations:
//   - DynamoDBStore: AWS DynamoDB backend
//   - SQLiteStore: SQLite key/value table
//   - RedisStore: single Redis key
//   - MemoryStore: In-memory backend for testing
//
// Every backend holds one record under the reserved key ClaimKey.
package store
