package usecase

import (
	"context"

	"github.com/amirhossein-jamali/rewards-portal/internal/domain/entity"
)

// UserUseCase defines methods for user-related business operations
type UserUseCase interface {
	// Register creates a regular user with a zero balance
	Register(ctx context.Context, username, password string) (*entity.User, error)

	// Authenticate verifies credentials; any mismatch yields ErrInvalidCredentials
	Authenticate(ctx context.Context, username, password string) (*entity.User, error)

	// GetUser loads a user by ID
	GetUser(ctx context.Context, userID uint64) (*entity.User, error)

	// SeedAdministrator creates the configured administrator when missing.
	// Returns true when a new account was created.
	SeedAdministrator(ctx context.Context, username, password string) (bool, error)

	// ListCustomers returns all non-admin users
	ListCustomers(ctx context.Context) ([]*entity.User, error)

	// SetBalance overwrites a user's balance with the submitted value
	SetBalance(ctx context.Context, userID uint64, value string) (*entity.User, error)
}
