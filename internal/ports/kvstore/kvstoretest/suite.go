// Package kvstoretest tiene la batería común que corre cada backend de kvstore.
package kvstoretest

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	"vetcalc/internal/ports/kvstore"
)

// Run ejecuta los casos contra un store nuevo por subtest.
func Run(t *testing.T, newStore func(t *testing.T) kvstore.Store) {
	t.Helper()

	t.Run("GetMissing", func(t *testing.T) {
		s := newStore(t)
		if _, err := s.Get(context.Background(), "nope"); !errors.Is(err, kvstore.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("SetGetRemove", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		if err := s.Set(ctx, "k", []byte(`[1,2]`)); err != nil {
			t.Fatalf("Set error: %v", err)
		}
		got, err := s.Get(ctx, "k")
		if err != nil {
			t.Fatalf("Get error: %v", err)
		}
		if compact(got) != "[1,2]" {
			t.Fatalf("unexpected value %q", got)
		}

		if err := s.Remove(ctx, "k"); err != nil {
			t.Fatalf("Remove error: %v", err)
		}
		if _, err := s.Get(ctx, "k"); !errors.Is(err, kvstore.ErrNotFound) {
			t.Fatalf("expected ErrNotFound after remove, got %v", err)
		}
		// borrar algo inexistente no es error
		if err := s.Remove(ctx, "k"); err != nil {
			t.Fatalf("Remove missing: %v", err)
		}
	})

	t.Run("UpdateSeesFoundFlag", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		err := s.Update(ctx, "k", func(cur []byte, found bool) ([]byte, error) {
			if found {
				t.Fatalf("expected missing key on first update")
			}
			return []byte(`1`), nil
		})
		if err != nil {
			t.Fatalf("Update error: %v", err)
		}

		err = s.Update(ctx, "k", func(cur []byte, found bool) ([]byte, error) {
			if !found || compact(cur) != "1" {
				t.Fatalf("expected current value 1, got %q found=%v", cur, found)
			}
			return nil, nil
		})
		if err != nil {
			t.Fatalf("Update error: %v", err)
		}
		if _, err := s.Get(ctx, "k"); !errors.Is(err, kvstore.ErrNotFound) {
			t.Fatalf("nil value must delete the key, got %v", err)
		}
	})

	t.Run("UpdateErrorWritesNothing", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		boom := errors.New("boom")

		_ = s.Set(ctx, "k", []byte(`"keep"`))
		err := s.Update(ctx, "k", func(cur []byte, found bool) ([]byte, error) {
			return []byte(`"lost"`), boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected fn error, got %v", err)
		}
		got, _ := s.Get(ctx, "k")
		if compact(got) != `"keep"` {
			t.Fatalf("value changed after failed update: %q", got)
		}
	})

	t.Run("ConcurrentUpdatesAreSerialized", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		const workers = 20

		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = s.Update(ctx, "counter", func(cur []byte, found bool) ([]byte, error) {
					n := 0
					if found {
						n, _ = strconv.Atoi(compact(cur))
					}
					return []byte(strconv.Itoa(n + 1)), nil
				})
			}()
		}
		wg.Wait()

		got, err := s.Get(ctx, "counter")
		if err != nil {
			t.Fatalf("Get error: %v", err)
		}
		if compact(got) != strconv.Itoa(workers) {
			t.Fatalf("expected %d, got %s", workers, got)
		}
	})
}

// compact saca espacios; jsonb en postgres puede reformatear el documento.
func compact(b []byte) string {
	out := make([]byte, 0, len(b))
	for _, c := range b {
		if c == ' ' || c == '\n' || c == '\t' {
			continue
		}
		out = append(out, c)
	}
	return string(out)
}
