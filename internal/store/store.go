// Package store implements the device-local key-value store backing every
// cache in the app. Values are JSON-serialized under a fixed application
// namespace, and the contract is deliberately soft: a failed save reports
// false, a missing or corrupt key reports false on load, and nothing here
// ever surfaces an error to a screen.
package store

import "context"

// Namespace prefixes every key so the app's records cannot collide with
// anything else living in the same database file.
const Namespace = "mybudget:"

// Well-known keys. The layout matches the documented local state: each key
// holds one JSON value.
const (
	KeyLanguage     = "language"
	KeyCurrency     = "currency"
	KeyTransactions = "transactions"
	KeyGoals        = "goals"
	KeyUser         = "user"
)

// Store is the persistence contract shared by all caches.
//
// Save reports success; Load reports whether dest was populated. Both log
// failures instead of returning them, so callers fall back to defaults
// rather than handling storage errors.
type Store interface {
	Save(ctx context.Context, key string, v any) bool
	Load(ctx context.Context, key string, dest any) bool
	Delete(ctx context.Context, key string) bool
	Close() error
}
