package persistence

import (
	"context"

	"github.com/amirhossein-jamali/rewards-portal/internal/domain/entity"
)

// TransactionRepository defines essential methods to interact with transaction data
type TransactionRepository interface {
	// Create saves a new transaction and assigns its ID
	//
	// Possible errors:
	// - ErrUserNotFound: If referenced user does not exist
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetByID retrieves a transaction with its owning user loaded
	//
	// Possible errors:
	// - ErrTransactionNotFound: If transaction with the given ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Transaction, error)

	// ListByUser returns the transactions of one user, newest first
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Transaction, error)

	// ListAll returns every transaction with its owning user loaded, newest first
	ListAll(ctx context.Context) ([]*entity.Transaction, error)

	// UpdateStatus moves a transaction from one status to another in a single
	// conditional statement.
	//
	// Possible errors:
	// - ErrTransactionAlreadyReviewed: If the transaction is no longer in status from
	// - ErrDatabaseConnection: If database connection fails
	UpdateStatus(ctx context.Context, id uint64, from, to entity.TransactionStatus) error
}
