package reports

import "context"

type Repository interface {
	Create(ctx context.Context, r Report) error
	// List devuelve los más recientes primero. limit <= 0 = sin límite.
	List(ctx context.Context, limit int) ([]Report, error)
}
