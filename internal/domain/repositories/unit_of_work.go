package repositories

import "context"

// UnitOfWork executes a function within a transaction scope. Repository
// calls made with the callback's context join the same transaction.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
