package user

import (
	"context"

	"github.com/amirhossein-jamali/rewards-portal/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/rewards-portal/internal/domain/port/core"
	"github.com/amirhossein-jamali/rewards-portal/internal/domain/port/persistence"
)

// UserUseCase handles user-related business logic
type UserUseCase struct {
	userRepo     persistence.UserRepository
	hasher       coreport.PasswordHasher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	userRepo persistence.UserRepository,
	hasher coreport.PasswordHasher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		hasher:       hasher,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetUser loads a user by ID
func (u *UserUseCase) GetUser(ctx context.Context, userID uint64) (*entity.User, error) {
	return u.userRepo.GetByID(ctx, userID)
}

// ListCustomers returns all non-admin users
func (u *UserUseCase) ListCustomers(ctx context.Context) ([]*entity.User, error) {
	return u.userRepo.ListCustomers(ctx)
}
