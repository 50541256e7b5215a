package http

import (
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatUSD(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"12.5", "$12.50"},
		{"999.99", "$999.99"},
		{"1000", "$1,000.00"},
		{"1234567.89", "$1,234,567.89"},
		{"-1234.5", "-$1,234.50"},
	}
	for _, tc := range cases {
		got := formatUSD(decimal.RequireFromString(tc.in))
		if got != tc.want {
			t.Errorf("formatUSD(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseRange(t *testing.T) {
	start, end := parseRange(url.Values{"start": {"2024-01-01"}, "end": {"2024-02-01"}})
	if start == nil || start.String() != "2024-01-01" {
		t.Fatalf("start = %v", start)
	}
	if end == nil || end.String() != "2024-02-01" {
		t.Fatalf("end = %v", end)
	}

	// Malformed or absent bounds mean unconstrained
	start, end = parseRange(url.Values{"start": {"bogus"}})
	if start != nil || end != nil {
		t.Fatalf("expected nil bounds, got %v %v", start, end)
	}
}

func TestRangeQuery(t *testing.T) {
	if q := rangeQuery(nil, nil); q != "" {
		t.Fatalf("empty range query = %q", q)
	}
	start, end := parseRange(url.Values{"start": {"2024-01-01"}, "end": {"2024-02-01"}})
	if q := rangeQuery(start, end); q != "?end=2024-02-01&start=2024-01-01" {
		t.Fatalf("range query = %q", q)
	}
}

func TestSanitizeInput(t *testing.T) {
	if got := sanitizeInput("  hello\x00world  "); got != "helloworld" {
		t.Fatalf("sanitizeInput = %q", got)
	}
}
