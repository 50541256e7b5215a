package core

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseKind(t *testing.T) {
	cases := []struct {
		in   string
		want Kind
		err  error
	}{
		{"Income", KindIncome, nil},
		{"expense", KindExpense, nil},
		{"SAVING", KindSaving, nil},
		{"savings", KindSaving, nil}, // legacy plural form
		{"  Income  ", KindIncome, nil},
		{"", "", ErrMissingKind},
		{"transfer", "", ErrUnknownKind},
	}
	for i, tc := range cases {
		got, err := ParseKind(tc.in)
		if !errors.Is(err, tc.err) {
			t.Fatalf("case %d: err=%v want %v", i, err, tc.err)
		}
		if got != tc.want {
			t.Fatalf("case %d: kind=%q want %q", i, got, tc.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-05")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if d.String() != "2024-01-05" {
		t.Fatalf("round trip: %q", d.String())
	}
	if _, err := ParseDate("05/01/2024"); err == nil {
		t.Fatalf("expected error for non-ISO date")
	}
	if _, err := ParseDate(""); err == nil {
		t.Fatalf("expected error for empty date")
	}
}

func TestDateOrdering(t *testing.T) {
	a := NewDate(2024, 1, 1)
	b := NewDate(2024, 1, 2)
	if !a.Before(b) || !b.After(a) {
		t.Fatalf("ordering broken")
	}
	if !a.Equal(NewDate(2024, 1, 1)) {
		t.Fatalf("equal dates not equal")
	}
}

func TestTransactionValidate(t *testing.T) {
	good := Transaction{
		Date:   NewDate(2024, 1, 5),
		Kind:   KindIncome,
		Amount: decimal.NewFromInt(2500),
		Note:   "Paycheck",
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	// Zero amounts are allowed; the sign carries no meaning.
	zero := good
	zero.Amount = decimal.Zero
	if err := zero.Validate(); err != nil {
		t.Fatalf("zero amount should validate, got %v", err)
	}

	cases := []struct {
		mutate func(*Transaction)
		want   error
	}{
		{func(tx *Transaction) { tx.Date = Date{Time: time.Time{}} }, ErrMissingDate},
		{func(tx *Transaction) { tx.Kind = "" }, ErrMissingKind},
		{func(tx *Transaction) { tx.Kind = "Transfer" }, ErrUnknownKind},
		{func(tx *Transaction) { tx.Amount = decimal.NewFromInt(-1) }, ErrNegativeAmount},
	}
	for i, tc := range cases {
		tx := good
		tc.mutate(&tx)
		if err := tx.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("case %d: err=%v want %v", i, err, tc.want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
		err  error
	}{
		{"12.34", "12.34", nil},
		{"12,34", "12.34", nil},
		{"0", "0", nil},
		{"2500.00", "2500", nil},
		{"", "", ErrInvalidAmount},
		{"abc", "", ErrInvalidAmount},
		{"-5", "", ErrNegativeAmount},
	}
	for i, tc := range cases {
		got, err := ParseAmount(tc.in)
		if !errors.Is(err, tc.err) {
			t.Fatalf("case %d: err=%v want %v", i, err, tc.err)
		}
		if err == nil && !got.Equal(decimal.RequireFromString(tc.want)) {
			t.Fatalf("case %d: got %s want %s", i, got, tc.want)
		}
	}
}
