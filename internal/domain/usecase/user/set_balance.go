package user

import (
	"context"

	"github.com/amirhossein-jamali/rewards-portal/internal/domain/entity"
)

// SetBalance overwrites a user's balance with an administrator-submitted value.
// Any well-formed amount is accepted, including zero and negatives.
func (u *UserUseCase) SetBalance(ctx context.Context, userID uint64, value string) (*entity.User, error) {
	balance, err := entity.ParseMoney(value)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	previous := user.GetBalance()
	user.SetBalance(balance, u.timeProvider)

	if err := u.userRepo.UpdateBalance(ctx, userID, user.Balance()); err != nil {
		u.logger.Error("Failed to update balance", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Balance set by administrator", map[string]any{
		"userId":          userID,
		"previousBalance": previous,
		"newBalance":      user.GetBalance(),
	})

	return user, nil
}
