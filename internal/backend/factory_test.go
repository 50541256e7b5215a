package backend

import (
	"context"
	"path/filepath"
	"testing"

	"fintrack/internal/config"
)

func TestCreateStore(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		name        string
		mutate      func(*config.Config)
		wantErr     bool
		wantCleanup bool
	}{
		{"csv", func(c *config.Config) {
			c.DataBackend = "csv"
			c.LedgerPath = filepath.Join(dir, "transactions.csv")
		}, false, false},
		{"memory", func(c *config.Config) { c.DataBackend = "memory" }, false, false},
		{"sqlite", func(c *config.Config) {
			c.DataBackend = "sqlite"
			c.SQLiteDBPath = filepath.Join(dir, "fintrack.db")
		}, false, true},
		{"unknown", func(c *config.Config) { c.DataBackend = "sheets" }, true, false},
	}

	factory := NewFactory(nil)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Load()
			tc.mutate(cfg)

			res, err := factory.CreateStore(context.Background(), cfg)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("create store: %v", err)
			}
			if res.Store == nil {
				t.Fatalf("nil store")
			}
			if tc.wantCleanup != (res.Cleanup != nil) {
				t.Fatalf("cleanup presence = %v, want %v", res.Cleanup != nil, tc.wantCleanup)
			}
			if res.Cleanup != nil {
				if err := res.Cleanup(); err != nil {
					t.Fatalf("cleanup: %v", err)
				}
			}
		})
	}
}

func TestTypeIsValid(t *testing.T) {
	for _, valid := range []Type{CSVBackend, MemoryBackend, SQLiteBackend} {
		if !valid.IsValid() {
			t.Fatalf("%s should be valid", valid)
		}
	}
	if Type("sheets").IsValid() {
		t.Fatalf("sheets should be invalid")
	}
}
