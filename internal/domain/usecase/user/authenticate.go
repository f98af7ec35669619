package user

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/rewards-portal/internal/domain/entity"
	errs "github.com/amirhossein-jamali/rewards-portal/internal/domain/error"
)

// Authenticate verifies a username and password.
// Unknown users and wrong passwords both yield ErrInvalidCredentials.
func (u *UserUseCase) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, errs.ErrInvalidCredentials
	}

	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errs.IsUserNotFoundError(err) {
			u.logger.Debug("Login for unknown username", map[string]any{
				"username": username,
			})
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if !u.hasher.Compare(user.PasswordHash, password) {
		u.logger.Debug("Login with wrong password", map[string]any{
			"userId": user.ID,
		})
		return nil, errs.ErrInvalidCredentials
	}

	return user, nil
}
