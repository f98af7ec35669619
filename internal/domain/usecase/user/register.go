package user

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/rewards-portal/internal/domain/entity"
	errs "github.com/amirhossein-jamali/rewards-portal/internal/domain/error"
)

// Register creates a regular user with a zero balance.
// A taken username yields ErrDuplicateUser and nothing is written.
func (u *UserUseCase) Register(ctx context.Context, username, password string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errs.ErrInvalidUsername
	}
	if strings.TrimSpace(password) == "" {
		return nil, errs.ErrInvalidPassword
	}

	taken, err := u.usernameTaken(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.ErrDuplicateUser
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		u.logger.Error("Failed to hash password", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	user, err := entity.NewUser(username, hash, u.timeProvider)
	if err != nil {
		return nil, err
	}

	// The unique index still catches a concurrent registration of the same name
	if err := u.userRepo.Create(ctx, user); err != nil {
		if !errs.IsDuplicateUserError(err) {
			u.logger.Error("Failed to create user", map[string]any{
				"username": username,
				"error":    err.Error(),
			})
		}
		return nil, err
	}

	u.logger.Info("User registered", map[string]any{
		"userId":   user.ID,
		"username": username,
	})

	return user, nil
}

// usernameTaken checks if a user with the given username exists
func (u *UserUseCase) usernameTaken(ctx context.Context, username string) (bool, error) {
	_, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errs.IsUserNotFoundError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
