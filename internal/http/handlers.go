package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"fintrack/internal/core"
	"fintrack/internal/ledger"
	"fintrack/internal/report"
)

func handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleReady reports readiness by probing the ledger store.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if _, err := s.store.LoadAll(r.Context()); err != nil {
		slog.ErrorContext(r.Context(), "Readiness check failed", "error", err)
		http.Error(w, "ledger unavailable", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	start, end := parseRange(r.URL.Query())

	data := struct {
		Title       string
		Categories  []string
		Kinds       []core.Kind
		Today       string
		Start       string
		End         string
		RangeQuery  string
		DefaultGoal string
	}{
		Title:       "Personal Finance Dashboard",
		Categories:  core.DefaultCategories,
		Kinds:       []core.Kind{core.KindIncome, core.KindExpense, core.KindSaving},
		Today:       core.Today().String(),
		RangeQuery:  rangeQuery(start, end),
		DefaultGoal: s.defaultGoal.StringFixed(2),
	}
	if start != nil {
		data.Start = start.String()
	}
	if end != nil {
		data.End = end.String()
	}

	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Template execution error", "template", "index.html", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// handleCreateTransaction appends a new entry from the form and
// answers with an htmx fragment plus a refresh trigger for the
// dashboard panels.
func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		writeFormError(w, "Could not parse the form")
		return
	}

	date, err := core.ParseDate(sanitizeInput(r.FormValue("date")))
	if err != nil {
		writeFormError(w, "Date must be in YYYY-MM-DD format")
		return
	}
	kind, err := core.ParseKind(sanitizeInput(r.FormValue("kind")))
	if err != nil {
		writeFormError(w, "Type must be Income, Expense or Saving")
		return
	}
	amount, err := core.ParseAmount(sanitizeInput(r.FormValue("amount")))
	if err != nil {
		writeFormError(w, "Amount must be a non-negative number")
		return
	}

	tx := core.Transaction{
		Date:     date,
		Kind:     kind,
		Category: sanitizeInput(r.FormValue("category")),
		Amount:   amount,
		Note:     sanitizeInput(r.FormValue("note")),
	}
	if err := tx.Validate(); err != nil {
		writeFormError(w, "Transaction is not valid: "+err.Error())
		return
	}

	ref, err := s.store.Append(r.Context(), tx)
	if err != nil {
		slog.ErrorContext(r.Context(), "Ledger append error", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<div class="error">Could not save the transaction</div>`))
		return
	}

	slog.InfoContext(r.Context(), "Transaction recorded",
		"ref", ref,
		"kind", tx.Kind,
		"category", tx.Category,
		"amount", tx.Amount.StringFixed(2),
	)

	w.Header().Set("HX-Trigger", "ledger:changed")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `<div class="success">Recorded %s of %s</div>`, tx.Kind, formatUSD(tx.Amount))
}

// handleClear wipes the whole ledger. POST only; the UI asks for
// confirmation before firing it.
func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := s.store.Clear(r.Context()); err != nil {
		slog.ErrorContext(r.Context(), "Ledger clear error", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<div class="error">Could not clear the ledger</div>`))
		return
	}

	slog.InfoContext(r.Context(), "Ledger cleared")

	w.Header().Set("HX-Trigger", "ledger:changed")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`<div class="success">All transactions deleted</div>`))
}

// handleExport streams the filtered ledger back as a CSV download.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
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
	txs = report.FilterByRange(txs, start, end)

	filename := fmt.Sprintf("transactions-%s.csv", time.Now().UTC().Format("20060102"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := ledger.Export(w, txs); err != nil {
		slog.ErrorContext(r.Context(), "CSV export error", "error", err)
	}
}

func writeFormError(w http.ResponseWriter, msg string) {
	w.WriteHeader(http.StatusUnprocessableEntity)
	fmt.Fprintf(w, `<div class="error">%s</div>`, msg)
}
