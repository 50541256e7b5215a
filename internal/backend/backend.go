// Package backend selects and wires the configured ledger store.
package backend

import (
	"context"

	"fintrack/internal/config"
	"fintrack/internal/ledger"
)

// CleanupFunc releases resources held by a store.
type CleanupFunc func() error

// Result contains the store instance and optional cleanup function.
type Result struct {
	Store   ledger.Store
	Cleanup CleanupFunc
}

// Factory creates ledger stores based on configuration.
type Factory interface {
	CreateStore(ctx context.Context, cfg *config.Config) (*Result, error)
}

// Type identifies a storage backend.
type Type string

const (
	CSVBackend    Type = "csv"
	MemoryBackend Type = "memory"
	SQLiteBackend Type = "sqlite"
)

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is supported.
func (t Type) IsValid() bool {
	switch t {
	case CSVBackend, MemoryBackend, SQLiteBackend:
		return true
	default:
		return false
	}
}
