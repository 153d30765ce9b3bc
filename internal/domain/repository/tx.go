package repository

import "context"

// TxManager runs fn inside one atomic unit of work. Repositories called with
// the context passed to fn join the same transaction; any error rolls the
// whole unit back.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
