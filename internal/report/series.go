package report

import (
	"iter"
	"sort"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"
)

// RunningBalanceSeries yields one (date, cumulative net balance) pair
// per distinct date present in the input, ascending by date. The value
// at date D is the net balance of all entries dated on or before D;
// Saving entries mark a date but do not move the balance. Same-date
// entries keep their ledger insertion order (stable sort), and the
// returned sequence can be ranged over any number of times.
func RunningBalanceSeries(txs []core.Transaction) iter.Seq2[core.Date, decimal.Decimal] {
	return cumulativeByDate(txs, func(tx core.Transaction) decimal.Decimal {
		switch tx.Kind {
		case core.KindIncome:
			return tx.Amount
		case core.KindExpense:
			return tx.Amount.Neg()
		default:
			return decimal.Zero
		}
	})
}

// SavingsSeries yields the cumulative Saving total per distinct date
// carrying at least one Saving entry, ascending by date.
func SavingsSeries(txs []core.Transaction) iter.Seq2[core.Date, decimal.Decimal] {
	saving := make([]core.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.Kind == core.KindSaving {
			saving = append(saving, tx)
		}
	}
	return cumulativeByDate(saving, func(tx core.Transaction) decimal.Decimal {
		return tx.Amount
	})
}

// cumulativeByDate accumulates delta over the date-sorted input and
// emits the running value at each date boundary.
func cumulativeByDate(txs []core.Transaction, delta func(core.Transaction) decimal.Decimal) iter.Seq2[core.Date, decimal.Decimal] {
	return func(yield func(core.Date, decimal.Decimal) bool) {
		if len(txs) == 0 {
			return
		}
		sorted := make([]core.Transaction, len(txs))
		copy(sorted, txs)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Date.Before(sorted[j].Date)
		})

		running := decimal.Zero
		for i, tx := range sorted {
			running = running.Add(delta(tx))
			last := i == len(sorted)-1
			if last || !sorted[i+1].Date.Equal(tx.Date) {
				if !yield(tx.Date, running) {
					return
				}
			}
		}
	}
}
