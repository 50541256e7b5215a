package http

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"
)

// parseRange extracts the optional start/end date bounds from query or
// form values. Absent or malformed bounds fall back to unconstrained,
// matching the "view all time" default.
func parseRange(values url.Values) (start, end *core.Date) {
	if v := strings.TrimSpace(values.Get("start")); v != "" {
		if d, err := core.ParseDate(v); err == nil {
			start = &d
		}
	}
	if v := strings.TrimSpace(values.Get("end")); v != "" {
		if d, err := core.ParseDate(v); err == nil {
			end = &d
		}
	}
	return start, end
}

// rangeQuery rebuilds the canonical query string for the given bounds,
// used to propagate the active filter into chart image URLs.
func rangeQuery(start, end *core.Date) string {
	q := url.Values{}
	if start != nil {
		q.Set("start", start.String())
	}
	if end != nil {
		q.Set("end", end.String())
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// cacheBreaker yields a value the templates append to chart URLs so
// browsers refetch the PNGs after the ledger changes.
func cacheBreaker() int64 {
	return time.Now().UnixNano()
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

// formatUSD renders an amount as a dollar string with thousands
// separators, e.g. -1234.5 -> "-$1,234.50".
func formatUSD(d decimal.Decimal) string {
	neg := d.IsNegative()
	fixed := d.Abs().StringFixed(2)

	intPart := fixed[:len(fixed)-3]
	fracPart := fixed[len(fixed)-2:]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := "$" + b.String() + "." + fracPart
	if neg {
		return "-" + out
	}
	return out
}

// loadSnapshot fetches the full ledger, writing an error fragment and
// returning ok=false when the store fails.
func (s *Server) loadSnapshot(w http.ResponseWriter, r *http.Request) ([]core.Transaction, bool) {
	txs, err := s.store.LoadAll(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Ledger load error", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<div class="error">Could not read the ledger</div>`))
		return nil, false
	}
	return txs, true
}
