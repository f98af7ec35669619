package persistence

import "context"

// UnitOfWork scopes repository calls to a single database transaction.
// The transaction travels in the context returned by Begin; repositories
// obtained with that context take part in it, any other context gets
// repositories bound to the plain connection.
type UnitOfWork interface {
	// Begin opens a transaction and returns the context carrying it
	Begin(ctx context.Context) (context.Context, error)

	// Commit makes the changes made under ctx durable
	Commit(ctx context.Context) error

	// Rollback discards the changes made under ctx. Calling it after Commit is a no-op.
	Rollback(ctx context.Context) error

	// GetUserRepository returns the user repository for ctx
	GetUserRepository(ctx context.Context) UserRepository

	// GetTransactionRepository returns the withdrawal repository for ctx
	GetTransactionRepository(ctx context.Context) TransactionRepository
}
