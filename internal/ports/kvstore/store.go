package kvstore

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("kvstore: key not found")

// UpdateFunc recibe el valor actual (found=false si la clave no existe) y
// devuelve el nuevo. Un next nil borra la clave. Si devuelve error no se escribe nada.
type UpdateFunc func(current []byte, found bool) (next []byte, err error)

// Store es el almacén clave/valor donde viven las listas persistidas.
// Los valores son documentos JSON.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error

	// Update hace leer-modificar-escribir de forma atómica respecto de
	// cualquier otra escritura sobre el mismo store.
	Update(ctx context.Context, key string, fn UpdateFunc) error

	Close() error
}
