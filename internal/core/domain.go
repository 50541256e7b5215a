package core

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	KindIncome  Kind = "Income"
	KindExpense Kind = "Expense"
	KindSaving  Kind = "Saving"
)

// DateLayout is the wire format for ledger dates.
const DateLayout = "2006-01-02"

type (
	// Kind classifies a transaction. The kind, never the sign of the
	// amount, decides the effect on the balance.
	Kind string

	// Date is a calendar date with no time component. Values are pinned
	// to midnight UTC so equality and ordering behave as plain dates.
	Date struct {
		time.Time
	}

	// Transaction is one recorded financial event. The ledger is an
	// insertion-ordered, append-only sequence of these.
	Transaction struct {
		Date     Date
		Kind     Kind
		Category string // meaningful for Expense, optional otherwise
		Amount   decimal.Decimal
		Note     string
	}
)

var (
	ErrMissingDate    = errors.New("missing date")
	ErrMissingKind    = errors.New("missing kind")
	ErrUnknownKind    = errors.New("unknown kind")
	ErrNegativeAmount = errors.New("negative amount")
	ErrInvalidAmount  = errors.New("invalid amount")
)

// DefaultCategories seeds the entry form when no taxonomy is configured.
var DefaultCategories = []string{
	"Work",
	"Housing",
	"Food",
	"Transportation",
	"Utilities",
	"Shopping",
	"Health",
	"Fun",
	"Savings",
	"Other",
}

func (k Kind) IsValid() bool {
	switch k {
	case KindIncome, KindExpense, KindSaving:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

// ParseKind matches the three kind literals case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return KindIncome, nil
	case "expense":
		return KindExpense, nil
	case "saving", "savings":
		return KindSaving, nil
	case "":
		return "", ErrMissingKind
	default:
		return "", ErrUnknownKind
	}
}

// NewDate creates a new Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current local calendar date.
func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), int(now.Month()), now.Day())
}

// ParseDate parses an ISO 8601 calendar date (YYYY-MM-DD).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t.UTC()}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) Equal(o Date) bool {
	return d.Time.Equal(o.Time)
}

func (d Date) Before(o Date) bool {
	return d.Time.Before(o.Time)
}

func (d Date) After(o Date) bool {
	return d.Time.After(o.Time)
}

// Validate reports the first violated invariant, or nil. Category and
// note are free text and never rejected.
func (t Transaction) Validate() error {
	if t.Date.IsZero() {
		return ErrMissingDate
	}
	if t.Kind == "" {
		return ErrMissingKind
	}
	if !t.Kind.IsValid() {
		return ErrUnknownKind
	}
	if t.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}
