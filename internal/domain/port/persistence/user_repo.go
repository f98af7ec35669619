package persistence

import (
	"context"

	"github.com/amirhossein-jamali/rewards-portal/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// UserRepository defines essential methods to interact with user data
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByUsername retrieves a user by its unique username
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has the username
	// - ErrDatabaseConnection: If database connection fails
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicateUser: If the username is already taken
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// UpdateBalance overwrites the balance of a user
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	UpdateBalance(ctx context.Context, userID uint64, balance decimal.Decimal) error

	// DebitIfSufficient subtracts amount from the balance in a single statement,
	// only when the balance covers it. Returns false when nothing was debited.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	DebitIfSufficient(ctx context.Context, userID uint64, amount decimal.Decimal) (bool, error)

	// ListCustomers returns every non-admin user ordered by username
	ListCustomers(ctx context.Context) ([]*entity.User, error)
}
