package http

import (
	"log/slog"
	"net/http"
	"sort"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"
	"fintrack/internal/report"
)

// handleSummary renders the four headline metric cards.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	txs, ok := s.loadSnapshot(w, r)
	if !ok {
		return
	}
	start, end := parseRange(r.URL.Query())
	summary := report.Summarize(report.FilterByRange(txs, start, end))

	data := struct {
		Income      string
		Expenses    string
		Saving      string
		NetBalance  string
		NetNegative bool
	}{
		Income:      formatUSD(summary.Income),
		Expenses:    formatUSD(summary.Expenses),
		Saving:      formatUSD(summary.Saving),
		NetBalance:  formatUSD(summary.NetBalance),
		NetNegative: summary.NetBalance.IsNegative(),
	}
	if err := s.templates.ExecuteTemplate(w, "summary.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Template execution error", "template", "summary.html", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

type transactionRow struct {
	Date     string
	Kind     core.Kind
	Category string
	Amount   string
	Note     string
}

// handleTransactions renders the filtered table, newest first. Entries
// sharing a date keep their ledger order relative to each other.
func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	txs, ok := s.loadSnapshot(w, r)
	if !ok {
		return
	}
	start, end := parseRange(r.URL.Query())
	filtered := report.FilterByRange(txs, start, end)

	sorted := make([]core.Transaction, len(filtered))
	copy(sorted, filtered)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[j].Date.Before(sorted[i].Date)
	})

	rows := make([]transactionRow, 0, len(sorted))
	for _, tx := range sorted {
		rows = append(rows, transactionRow{
			Date:     tx.Date.String(),
			Kind:     tx.Kind,
			Category: tx.Category,
			Amount:   formatUSD(tx.Amount),
			Note:     tx.Note,
		})
	}

	data := struct {
		Rows       []transactionRow
		Count      int
		RangeQuery string
	}{
		Rows:       rows,
		Count:      len(rows),
		RangeQuery: rangeQuery(start, end),
	}
	if err := s.templates.ExecuteTemplate(w, "transactions.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Template execution error", "template", "transactions.html", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// handleSavings renders progress toward the savings goal. The goal can
// be overridden per request through the "goal" query parameter.
func (s *Server) handleSavings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	txs, ok := s.loadSnapshot(w, r)
	if !ok {
		return
	}

	goal := s.defaultGoal
	if raw := sanitizeInput(r.URL.Query().Get("goal")); raw != "" {
		if parsed, err := decimal.NewFromString(raw); err == nil && parsed.Sign() > 0 {
			goal = parsed
		}
	}

	start, end := parseRange(r.URL.Query())
	filtered := report.FilterByRange(txs, start, end)

	saved, ratio, err := report.SavingsProgress(filtered, goal)
	if err != nil {
		slog.ErrorContext(r.Context(), "Savings progress error", "error", err)
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">Savings goal must be a positive amount</div>`))
		return
	}

	// Clamp the bar at 100% for display; the raw ratio keeps going.
	percent := ratio * 100
	barPercent := percent
	if barPercent > 100 {
		barPercent = 100
	}

	data := struct {
		Saved      string
		Goal       string
		Percent    float64
		BarPercent float64
		Reached    bool
	}{
		Saved:      formatUSD(saved),
		Goal:       formatUSD(goal),
		Percent:    percent,
		BarPercent: barPercent,
		Reached:    ratio >= 1,
	}
	if err := s.templates.ExecuteTemplate(w, "savings.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Template execution error", "template", "savings.html", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
