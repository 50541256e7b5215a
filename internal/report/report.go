// Package report computes derived aggregates over a ledger snapshot.
// Every function is pure: it takes a sequence of transactions and
// returns a value, never mutating the input. All functions accept an
// empty ledger and return identity results.
package report

import (
	"errors"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"
)

// ErrInvalidGoal is returned by SavingsProgress for a non-positive goal.
var ErrInvalidGoal = errors.New("savings goal must be positive")

// Summary holds the four dashboard metrics for a snapshot.
type Summary struct {
	Income     decimal.Decimal
	Expenses   decimal.Decimal
	Saving     decimal.Decimal
	NetBalance decimal.Decimal
}

// FilterByRange returns the transactions dated within [start, end]
// inclusive. A nil bound is unconstrained; with both bounds nil the
// input is returned unchanged.
func FilterByRange(txs []core.Transaction, start, end *core.Date) []core.Transaction {
	if start == nil && end == nil {
		return txs
	}
	out := make([]core.Transaction, 0, len(txs))
	for _, tx := range txs {
		if start != nil && tx.Date.Before(*start) {
			continue
		}
		if end != nil && tx.Date.After(*end) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// TotalsByKind sums amounts grouped by kind. All three kinds are always
// present in the result, zero-valued when no entries match.
func TotalsByKind(txs []core.Transaction) map[core.Kind]decimal.Decimal {
	totals := map[core.Kind]decimal.Decimal{
		core.KindIncome:  decimal.Zero,
		core.KindExpense: decimal.Zero,
		core.KindSaving:  decimal.Zero,
	}
	for _, tx := range txs {
		if _, ok := totals[tx.Kind]; !ok {
			continue
		}
		totals[tx.Kind] = totals[tx.Kind].Add(tx.Amount)
	}
	return totals
}

// NetBalance is total Income minus total Expense. Saving is tracked
// separately and never subtracted.
func NetBalance(txs []core.Transaction) decimal.Decimal {
	totals := TotalsByKind(txs)
	return totals[core.KindIncome].Sub(totals[core.KindExpense])
}

// CategoryBreakdown sums Expense amounts by category. Categories with
// no matching entries are omitted, not zero-valued.
func CategoryBreakdown(txs []core.Transaction) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		if tx.Kind != core.KindExpense {
			continue
		}
		out[tx.Category] = out[tx.Category].Add(tx.Amount)
	}
	return out
}

// Summarize computes the dashboard metric row in one pass over the
// kind totals.
func Summarize(txs []core.Transaction) Summary {
	totals := TotalsByKind(txs)
	return Summary{
		Income:     totals[core.KindIncome],
		Expenses:   totals[core.KindExpense],
		Saving:     totals[core.KindSaving],
		NetBalance: totals[core.KindIncome].Sub(totals[core.KindExpense]),
	}
}

// SavingsProgress reports the cumulative Saving total and its ratio to
// the goal. The ratio is reported unclamped; display layers clamp to
// [0, 1]. A non-positive goal fails before any computation, even on an
// empty ledger.
func SavingsProgress(txs []core.Transaction, goal decimal.Decimal) (decimal.Decimal, float64, error) {
	if goal.Sign() <= 0 {
		return decimal.Zero, 0, ErrInvalidGoal
	}
	saved := TotalsByKind(txs)[core.KindSaving]
	ratio, _ := saved.Div(goal).Float64()
	return saved, ratio, nil
}
