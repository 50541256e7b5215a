package ledger

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/gocarina/gocsv"

	"fintrack/internal/core"
)

// ledgerRow is the flat-file shape of a transaction:
// date,kind,category,amount,note
type ledgerRow struct {
	Date     string `csv:"date"`
	Kind     string `csv:"kind"`
	Category string `csv:"category"`
	Amount   string `csv:"amount"`
	Note     string `csv:"note"`
}

// CSVStore persists the ledger as one local CSV file with a header row.
// The file is opened only for the duration of a single append or load.
type CSVStore struct {
	mu   sync.Mutex
	path string

	// data-row count, established lazily for append references
	rows    int
	counted bool
}

func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

// Append implements Store. On first write it creates the file together
// with the header row.
func (s *CSVStore) Append(ctx context.Context, tx core.Transaction) (string, error) {
	if err := tx.Validate(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.counted {
		n, err := s.countRows()
		if err != nil {
			return "", err
		}
		s.rows = n
		s.counted = true
	}

	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return "", fmt.Errorf("create ledger directory: %w", err)
		}
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return "", fmt.Errorf("open ledger file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.WarnContext(ctx, "Failed to close ledger file", "error", err)
		}
	}()

	st, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat ledger file: %w", err)
	}

	rows := []ledgerRow{toRow(tx)}
	w := gocsv.NewSafeCSVWriter(csv.NewWriter(f))
	if st.Size() == 0 {
		err = gocsv.MarshalCSV(&rows, w)
	} else {
		err = gocsv.MarshalCSVWithoutHeaders(&rows, w)
	}
	if err != nil {
		return "", fmt.Errorf("write ledger row: %w", err)
	}

	s.rows++
	ref := fmt.Sprintf("csv:%d", s.rows)
	slog.InfoContext(ctx, "Transaction appended",
		"ref", ref,
		"kind", tx.Kind.String(),
		"date", tx.Date.String(),
		"amount", tx.Amount.StringFixed(2))
	return ref, nil
}

// LoadAll implements Store.
func (s *CSVStore) LoadAll(ctx context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open ledger file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.WarnContext(ctx, "Failed to close ledger file", "error", err)
		}
	}()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat ledger file: %w", err)
	}
	if st.Size() == 0 {
		return nil, nil
	}

	var rows []ledgerRow
	if err := gocsv.Unmarshal(f, &rows); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptLedger, err)
	}

	txs := make([]core.Transaction, 0, len(rows))
	for i, r := range rows {
		tx, err := fromRow(r)
		if err != nil {
			// +2: one for the header, one for 1-based line numbers
			return nil, fmt.Errorf("%w: line %d: %v", ErrCorruptLedger, i+2, err)
		}
		txs = append(txs, tx)
	}

	s.rows = len(txs)
	s.counted = true
	return txs, nil
}

// Clear implements Store. The file is rewritten with only the header so
// the next load sees a well-formed empty ledger.
func (s *CSVStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("truncate ledger file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.WarnContext(ctx, "Failed to close ledger file", "error", err)
		}
	}()

	var empty []ledgerRow
	if err := gocsv.MarshalCSV(&empty, gocsv.NewSafeCSVWriter(csv.NewWriter(f))); err != nil {
		return fmt.Errorf("write ledger header: %w", err)
	}

	s.rows = 0
	s.counted = true
	slog.InfoContext(ctx, "Ledger cleared", "path", s.path)
	return nil
}

// Export re-serializes transactions into the persisted CSV shape.
// Exporting LoadAll's output and reloading it yields an identical
// sequence (round-trip identity).
func Export(w io.Writer, txs []core.Transaction) error {
	rows := make([]ledgerRow, len(txs))
	for i, tx := range txs {
		rows[i] = toRow(tx)
	}
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(csv.NewWriter(w))); err != nil {
		return fmt.Errorf("export ledger: %w", err)
	}
	return nil
}

func toRow(tx core.Transaction) ledgerRow {
	return ledgerRow{
		Date:     tx.Date.String(),
		Kind:     tx.Kind.String(),
		Category: tx.Category,
		Amount:   tx.Amount.StringFixed(2),
		Note:     tx.Note,
	}
}

func fromRow(r ledgerRow) (core.Transaction, error) {
	date, err := core.ParseDate(r.Date)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("bad date %q: %v", r.Date, err)
	}
	kind := core.Kind(r.Kind)
	if !kind.IsValid() {
		return core.Transaction{}, fmt.Errorf("bad kind %q", r.Kind)
	}
	amount, err := core.ParseAmount(r.Amount)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("bad amount %q: %v", r.Amount, err)
	}
	return core.Transaction{
		Date:     date,
		Kind:     kind,
		Category: r.Category,
		Amount:   amount,
		Note:     r.Note,
	}, nil
}

func (s *CSVStore) countRows() (int, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("open ledger file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	n := -1 // discount the header
	for {
		if _, err := r.Read(); err != nil {
			if err == io.EOF {
				break
			}
			return 0, fmt.Errorf("%w: %v", ErrCorruptLedger, err)
		}
		n++
	}
	if n < 0 {
		n = 0
	}
	return n, nil
}
