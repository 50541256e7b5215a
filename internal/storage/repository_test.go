package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"
	"fintrack/internal/ledger"
)

var _ ledger.Store = (*SQLiteStore)(nil)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "fintrack.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteAppendAndLoad(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	txs := []core.Transaction{
		{Date: core.NewDate(2024, 1, 5), Kind: core.KindIncome, Amount: decimal.RequireFromString("2500.00"), Note: "Paycheck"},
		{Date: core.NewDate(2024, 1, 7), Kind: core.KindExpense, Category: "Food", Amount: decimal.RequireFromString("42.50")},
	}
	for i, tx := range txs {
		ref, err := store.Append(ctx, tx)
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
		if ref == "" {
			t.Fatalf("append %d: empty ref", i)
		}
	}

	got, err := store.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != len(txs) {
		t.Fatalf("loaded %d transactions, want %d", len(got), len(txs))
	}
	for i := range txs {
		if !got[i].Date.Equal(txs[i].Date) || got[i].Kind != txs[i].Kind ||
			got[i].Category != txs[i].Category || !got[i].Amount.Equal(txs[i].Amount) ||
			got[i].Note != txs[i].Note {
			t.Fatalf("tx %d mismatch: got %+v want %+v", i, got[i], txs[i])
		}
	}
}

func TestSQLiteRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	bad := core.Transaction{Date: core.NewDate(2024, 1, 1), Kind: core.KindExpense, Amount: decimal.NewFromInt(-1)}
	if _, err := store.Append(ctx, bad); err == nil {
		t.Fatalf("expected validation error")
	}

	got, err := store.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("rejected transaction was persisted")
	}
}

func TestSQLiteEmptyAndClear(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	got, err := store.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("fresh store not empty")
	}

	if _, err := store.Append(ctx, core.Transaction{Date: core.NewDate(2024, 1, 1), Kind: core.KindSaving, Amount: decimal.NewFromInt(100)}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	got, err = store.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load after clear: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("clear left %d transactions", len(got))
	}
}
