package http

import (
	"log/slog"
	"net/http"

	"fintrack/internal/charts"
	"fintrack/internal/core"
	"fintrack/internal/report"
)

// handleChartsPanel renders the chart grid partial. The image URLs
// carry the active date filter so the PNGs reflect the same slice of
// the ledger as the rest of the dashboard.
func (s *Server) handleChartsPanel(w http.ResponseWriter, r *http.Request) {
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

	hasSaving := false
	hasExpense := false
	for _, tx := range filtered {
		switch tx.Kind {
		case core.KindSaving:
			hasSaving = true
		case core.KindExpense:
			hasExpense = true
		}
	}

	data := struct {
		HasData      bool
		HasSaving    bool
		HasExpense   bool
		RangeQuery   string
		CacheBreaker int64
	}{
		HasData:      len(filtered) > 0,
		HasSaving:    hasSaving,
		HasExpense:   hasExpense,
		RangeQuery:   rangeQuery(start, end),
		CacheBreaker: cacheBreaker(),
	}
	if err := s.templates.ExecuteTemplate(w, "charts.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Template execution error", "template", "charts.html", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (s *Server) handleBalanceChart(w http.ResponseWriter, r *http.Request) {
	s.servePNG(w, r, charts.BalancePNG)
}

func (s *Server) handleSavingsChart(w http.ResponseWriter, r *http.Request) {
	s.servePNG(w, r, charts.SavingsPNG)
}

func (s *Server) handleCategoriesChart(w http.ResponseWriter, r *http.Request) {
	s.servePNG(w, r, charts.CategoriesPNG)
}

// servePNG runs the shared load-filter-render pipeline for the three
// chart endpoints. A renderer returning no bytes means there is
// nothing to plot; that becomes a 204 so a stale <img> never lingers.
func (s *Server) servePNG(w http.ResponseWriter, r *http.Request, render func([]core.Transaction) ([]byte, error)) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	txs, err := s.store.LoadAll(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Ledger load error", "error", err)
		http.Error(w, "Could not read the ledger", http.StatusInternalServerError)
		return
	}
	start, end := parseRange(r.URL.Query())
	filtered := report.FilterByRange(txs, start, end)

	png, err := render(filtered)
	if err != nil {
		slog.ErrorContext(r.Context(), "Chart render error", "path", r.URL.Path, "error", err)
		http.Error(w, "Could not render chart", http.StatusInternalServerError)
		return
	}
	if len(png) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(png)
}
