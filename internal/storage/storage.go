// Package storage is the durable key-value layer under the data store.
//
// State persists as four independent logical keys so a corrupt entry in
// one collection never invalidates the others.
package storage

import "context"

// Logical keys. Each holds one JSON-encoded collection.
const (
	KeyTransactions = "transactions"
	KeyBudgets      = "budgets"
	KeyCategories   = "appCategories"
	KeySettings     = "settings"
)

// Keys lists every logical key in load order.
var Keys = []string{KeyTransactions, KeyBudgets, KeyCategories, KeySettings}

// KV is the port the store persists through.
type KV interface {
	// Get returns the value for key; ok is false when the key has
	// never been written.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Put writes one key. Writes are idempotent.
	Put(ctx context.Context, key string, value []byte) error

	// PutAll writes several keys as one atomic batch. Reset and import
	// go through here so a partial write can never be observed.
	PutAll(ctx context.Context, entries map[string][]byte) error

	Close() error
}
