package history

import "context"

// Repository guarda el historial, más nuevo primero.
type Repository interface {
	List(ctx context.Context) ([]Record, error)
	Update(ctx context.Context, fn func(current []Record) ([]Record, error)) error
	Clear(ctx context.Context) error
}
