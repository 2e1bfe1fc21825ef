package vaccines

import "context"

// Repository guarda la lista de registros, más nuevo primero.
// Update aplica fn de forma atómica: nadie ve un estado intermedio.
type Repository interface {
	List(ctx context.Context) ([]Record, error)
	Update(ctx context.Context, fn func(current []Record) ([]Record, error)) error
	Clear(ctx context.Context) error
}
