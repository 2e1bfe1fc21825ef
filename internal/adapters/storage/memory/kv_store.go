package memory

import (
	"context"
	"sync"

	"vetcalc/internal/ports/kvstore"
)

// KVStore es el backend en memoria (default en dev y tests).
type KVStore struct {
	mu    sync.RWMutex
	byKey map[string][]byte
}

func NewKVStore() *KVStore {
	return &KVStore{
		byKey: make(map[string][]byte),
	}
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.byKey[key]
	if !ok {
		return nil, kvstore.ErrNotFound
	}
	return clone(v), nil
}

func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byKey[key] = clone(value)
	return nil
}

func (s *KVStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.byKey, key)
	return nil
}

func (s *KVStore) Update(ctx context.Context, key string, fn kvstore.UpdateFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cur, found := s.byKey[key]
	next, err := fn(clone(cur), found)
	if err != nil {
		return err
	}
	if next == nil {
		delete(s.byKey, key)
		return nil
	}
	s.byKey[key] = clone(next)
	return nil
}

func (s *KVStore) Close() error { return nil }

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
