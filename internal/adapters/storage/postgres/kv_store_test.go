package postgres

import (
	"context"
	"os"
	"testing"

	"vetcalc/internal/ports/kvstore"
	"vetcalc/internal/ports/kvstore/kvstoretest"
)

// Requiere una base real: TEST_DB_DSN=postgres://... go test ./internal/adapters/storage/postgres
func TestKVStore(t *testing.T) {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}

	kvstoretest.Run(t, func(t *testing.T) kvstore.Store {
		db, err := Open(dsn)
		if err != nil {
			t.Fatalf("Open error: %v", err)
		}
		s := NewKVStore(db)
		ctx := context.Background()
		if err := s.Migrate(ctx); err != nil {
			t.Fatalf("Migrate error: %v", err)
		}
		if _, err := db.ExecContext(ctx, `DELETE FROM kv_entries`); err != nil {
			t.Fatalf("cleanup error: %v", err)
		}
		t.Cleanup(func() { _ = s.Close() })
		return s
	})
}
