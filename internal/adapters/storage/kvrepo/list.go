// Package kvrepo implementa los repositorios de listas sobre un kvstore.Store.
// Cada lista es un arreglo JSON bajo una clave, más nuevo primero.
package kvrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"vetcalc/internal/ports/kvstore"
)

const (
	HistoryKey  = "calculationHistory"
	VaccinesKey = "vaccineRecords"
)

var ErrCorrupt = errors.New("stored list is not valid json")

// jsonList es la base compartida por los repos de historial y vacunas.
type jsonList[T any] struct {
	store kvstore.Store
	key   string
}

func newJSONList[T any](store kvstore.Store, key string) *jsonList[T] {
	return &jsonList[T]{store: store, key: key}
}

// List devuelve la lista guardada; clave ausente = lista vacía.
func (l *jsonList[T]) List(ctx context.Context) ([]T, error) {
	raw, err := l.store.Get(ctx, l.key)
	if errors.Is(err, kvstore.ErrNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}
	return l.decode(raw)
}

// Update aplica fn sobre la lista actual dentro de un único Store.Update.
// Una lista resultante vacía borra la clave.
func (l *jsonList[T]) Update(ctx context.Context, fn func(current []T) ([]T, error)) error {
	return l.store.Update(ctx, l.key, func(cur []byte, found bool) ([]byte, error) {
		items := []T{}
		if found {
			decoded, err := l.decode(cur)
			if err != nil {
				return nil, err
			}
			items = decoded
		}

		next, err := fn(items)
		if err != nil {
			return nil, err
		}
		if len(next) == 0 {
			return nil, nil
		}
		return json.Marshal(next)
	})
}

func (l *jsonList[T]) Clear(ctx context.Context) error {
	return l.store.Remove(ctx, l.key)
}

func (l *jsonList[T]) decode(raw []byte) ([]T, error) {
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w (key %s): %v", ErrCorrupt, l.key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
