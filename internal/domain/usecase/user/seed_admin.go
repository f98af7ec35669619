package user

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/rewards-portal/internal/domain/entity"
	errs "github.com/amirhossein-jamali/rewards-portal/internal/domain/error"
)

// SeedAdministrator creates the configured administrator if no user has its username.
// Blank credentials disable seeding.
func (u *UserUseCase) SeedAdministrator(ctx context.Context, username, password string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		u.logger.Debug("Administrator seed skipped, no credentials configured", nil)
		return false, nil
	}

	taken, err := u.usernameTaken(ctx, username)
	if err != nil {
		return false, err
	}
	if taken {
		u.logger.Info("Administrator already exists", map[string]any{
			"username": username,
		})
		return false, nil
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return false, err
	}

	admin, err := entity.NewAdministrator(username, hash, u.timeProvider)
	if err != nil {
		return false, err
	}

	if err := u.userRepo.Create(ctx, admin); err != nil {
		// Another instance seeded it first
		if errs.IsDuplicateUserError(err) {
			return false, nil
		}
		return false, err
	}

	u.logger.Info("Administrator created", map[string]any{
		"userId":   admin.ID,
		"username": username,
	})

	return true, nil
}
