// Package ledger owns the durable, append-only record of transactions.
// It is the single source of truth; the aggregator and the web layer
// only ever see snapshots returned by LoadAll.
package ledger

import (
	"context"
	"errors"

	"fintrack/internal/core"
)

// ErrCorruptLedger is returned by LoadAll when the backing file exists
// but cannot be parsed. A missing file is not an error: first-run empty
// state is normal.
var ErrCorruptLedger = errors.New("ledger corrupt")

// Store is the port implemented by every storage backend.
type Store interface {
	// Append validates the transaction and persists exactly one new
	// entry, returning a backend-specific row reference. Existing
	// entries are never touched.
	Append(ctx context.Context, tx core.Transaction) (ref string, err error)

	// LoadAll returns the full ledger in insertion order. An absent
	// backing file yields an empty ledger, not an error.
	LoadAll(ctx context.Context) ([]core.Transaction, error)

	// Clear resets the ledger to the empty state.
	Clear(ctx context.Context) error
}
