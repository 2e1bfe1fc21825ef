package leveldb

import (
	"context"
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"

	"vetcalc/internal/ports/kvstore"
)

// Store guarda cada clave como un documento JSON en LevelDB.
type Store struct {
	db *leveldb.DB
}

// OpenFile abre (o crea) la base en disco.
func OpenFile(path string) (*Store, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("opening leveldb at %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Open usa un storage arbitrario; en tests storage.NewMemStorage().
func Open(stor storage.Storage) (*Store, error) {
	db, err := leveldb.Open(stor, nil)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v, err := s.db.Get([]byte(key), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, kvstore.ErrNotFound
	}
	return v, err
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Put([]byte(key), value, &opt.WriteOptions{Sync: true})
}

func (s *Store) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Delete([]byte(key), &opt.WriteOptions{Sync: true})
}

// Update corre dentro de una transacción de LevelDB: mientras está abierta
// las demás escrituras (y otras transacciones) esperan.
func (s *Store) Update(ctx context.Context, key string, fn kvstore.UpdateFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tx, err := s.db.OpenTransaction()
	if err != nil {
		return err
	}
	defer tx.Discard()

	k := []byte(key)
	cur, err := tx.Get(k, nil)
	found := true
	if errors.Is(err, leveldb.ErrNotFound) {
		cur, found = nil, false
	} else if err != nil {
		return err
	}

	next, err := fn(cur, found)
	if err != nil {
		return err
	}

	if next == nil {
		err = tx.Delete(k, nil)
	} else {
		err = tx.Put(k, next, nil)
	}
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) Close() error {
	return s.db.Close()
}
