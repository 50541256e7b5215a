// Package storage provides the SQLite ledger backend. The schema is a
// direct mirror of the flat-file layout; amounts and dates are kept as
// their canonical strings so nothing is lost between backends.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite"

	"fintrack/internal/core"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Append implements ledger.Store.
func (s *SQLiteStore) Append(ctx context.Context, tx core.Transaction) (string, error) {
	if err := tx.Validate(); err != nil {
		return "", err
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO transactions (tx_date, kind, category, amount, note) VALUES (?, ?, ?, ?, ?)`,
		tx.Date.String(), tx.Kind.String(), tx.Category, tx.Amount.StringFixed(2), tx.Note)
	if err != nil {
		return "", fmt.Errorf("insert transaction: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return "", fmt.Errorf("transaction id: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved to SQLite",
		"id", id,
		"kind", tx.Kind.String(),
		"date", tx.Date.String(),
		"amount", tx.Amount.StringFixed(2))

	return strconv.FormatInt(id, 10), nil
}

// LoadAll implements ledger.Store. Rows come back ordered by id, so the
// ledger keeps its insertion order.
func (s *SQLiteStore) LoadAll(ctx context.Context) ([]core.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT tx_date, kind, category, amount, note FROM transactions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var txs []core.Transaction
	for rows.Next() {
		var dateStr, kindStr, category, amountStr, note string
		if err := rows.Scan(&dateStr, &kindStr, &category, &amountStr, &note); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}

		date, err := core.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("stored date %q: %w", dateStr, err)
		}
		kind := core.Kind(kindStr)
		if !kind.IsValid() {
			return nil, fmt.Errorf("stored kind %q is unknown", kindStr)
		}
		amount, err := core.ParseAmount(amountStr)
		if err != nil {
			return nil, fmt.Errorf("stored amount %q: %w", amountStr, err)
		}

		txs = append(txs, core.Transaction{
			Date:     date,
			Kind:     kind,
			Category: category,
			Amount:   amount,
			Note:     note,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return txs, nil
}

// Clear implements ledger.Store.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		return fmt.Errorf("clear transactions: %w", err)
	}
	slog.InfoContext(ctx, "Ledger cleared")
	return nil
}
