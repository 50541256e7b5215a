package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/internal/core"
)

type point struct {
	date  string
	value string
}

func collect(seq func(func(core.Date, decimal.Decimal) bool)) []point {
	var out []point
	for d, v := range seq {
		out = append(out, point{d.String(), v.String()})
	}
	return out
}

func TestRunningBalanceSeries(t *testing.T) {
	got := collect(RunningBalanceSeries(scenario()))
	want := []point{
		{"2024-01-01", "1000"},
		{"2024-01-02", "800"},
		{"2024-01-03", "800"}, // Saving marks the date but leaves the balance
	}
	assert.Equal(t, want, got)
}

func TestRunningBalanceSeriesCollapsesSameDate(t *testing.T) {
	txs := []core.Transaction{
		tx(core.NewDate(2024, 1, 2), core.KindExpense, "Food", "10"),
		tx(core.NewDate(2024, 1, 1), core.KindIncome, "", "100"),
		tx(core.NewDate(2024, 1, 2), core.KindExpense, "Fun", "20"),
	}
	got := collect(RunningBalanceSeries(txs))
	want := []point{
		{"2024-01-01", "100"},
		{"2024-01-02", "70"},
	}
	assert.Equal(t, want, got)
}

func TestRunningBalanceSeriesRestartable(t *testing.T) {
	seq := RunningBalanceSeries(scenario())
	first := collect(seq)
	second := collect(seq)
	assert.Equal(t, first, second)

	// Early break must not panic or leak.
	for range seq {
		break
	}
}

func TestRunningBalanceSeriesDoesNotMutateInput(t *testing.T) {
	txs := []core.Transaction{
		tx(core.NewDate(2024, 1, 2), core.KindExpense, "Food", "10"),
		tx(core.NewDate(2024, 1, 1), core.KindIncome, "", "100"),
	}
	collect(RunningBalanceSeries(txs))
	assert.Equal(t, "2024-01-02", txs[0].Date.String(), "input order preserved")
}

func TestRunningBalanceSeriesEmpty(t *testing.T) {
	assert.Empty(t, collect(RunningBalanceSeries(nil)))
}

func TestSavingsSeries(t *testing.T) {
	txs := append(scenario(),
		tx(core.NewDate(2024, 1, 5), core.KindSaving, "", "50"),
		tx(core.NewDate(2024, 1, 5), core.KindSaving, "", "25"),
	)
	got := collect(SavingsSeries(txs))
	want := []point{
		{"2024-01-03", "100"},
		{"2024-01-05", "175"},
	}
	assert.Equal(t, want, got)

	require.Empty(t, collect(SavingsSeries(nil)))
}
