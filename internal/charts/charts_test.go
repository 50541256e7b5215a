package charts

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func ledgerFixture() []core.Transaction {
	return []core.Transaction{
		{Date: core.NewDate(2024, 1, 1), Kind: core.KindIncome, Amount: decimal.NewFromInt(1000)},
		{Date: core.NewDate(2024, 1, 2), Kind: core.KindExpense, Category: "Food", Amount: decimal.NewFromInt(200)},
		{Date: core.NewDate(2024, 1, 3), Kind: core.KindSaving, Amount: decimal.NewFromInt(100)},
		{Date: core.NewDate(2024, 1, 8), Kind: core.KindExpense, Category: "Fun", Amount: decimal.NewFromInt(50)},
	}
}

func TestRenderAllCharts(t *testing.T) {
	txs := ledgerFixture()
	renderers := map[string]func([]core.Transaction) ([]byte, error){
		"balance":    BalancePNG,
		"categories": CategoriesPNG,
		"savings":    SavingsPNG,
	}
	for name, render := range renderers {
		png, err := render(txs)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !bytes.HasPrefix(png, pngMagic) {
			t.Fatalf("%s: output is not a PNG", name)
		}
	}
}

func TestEmptyLedgerYieldsNoChart(t *testing.T) {
	for name, render := range map[string]func([]core.Transaction) ([]byte, error){
		"balance":    BalancePNG,
		"categories": CategoriesPNG,
		"savings":    SavingsPNG,
	} {
		png, err := render(nil)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if png != nil {
			t.Fatalf("%s: expected nil for empty ledger", name)
		}
	}
}

func TestSingleEntryStillRenders(t *testing.T) {
	txs := []core.Transaction{
		{Date: core.NewDate(2024, 1, 1), Kind: core.KindIncome, Amount: decimal.NewFromInt(10)},
	}
	png, err := BalancePNG(txs)
	if err != nil {
		t.Fatalf("single point render: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Fatalf("output is not a PNG")
	}
}

func TestSavingsChartNeedsSavingEntries(t *testing.T) {
	txs := []core.Transaction{
		{Date: core.NewDate(2024, 1, 1), Kind: core.KindIncome, Amount: decimal.NewFromInt(10)},
	}
	png, err := SavingsPNG(txs)
	if err != nil {
		t.Fatalf("savings render: %v", err)
	}
	if png != nil {
		t.Fatalf("expected nil without Saving entries")
	}
}
