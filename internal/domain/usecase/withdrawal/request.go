package withdrawal

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/rewards-portal/internal/domain/entity"
	errs "github.com/amirhossein-jamali/rewards-portal/internal/domain/error"
	"github.com/amirhossein-jamali/rewards-portal/internal/domain/port/usecase"
)

// RequestWithdrawal validates the amount against the user's current balance and
// records a pending withdrawal. The balance itself is only debited on approval.
func (s *Service) RequestWithdrawal(ctx context.Context, userID uint64, req usecase.WithdrawalRequest) (*entity.Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	amount, err := entity.ParsePositiveAmount(req.Amount)
	if err != nil {
		s.logger.Debug("Rejected withdrawal amount", map[string]any{
			"userId": userID,
			"amount": req.Amount,
			"error":  err.Error(),
		})
		return nil, err
	}

	user, err := s.users(ctx).GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !user.CanWithdraw(amount) {
		insufficient := errs.NewInsufficientBalanceError(userID, entity.FormatMoney(amount), user.GetBalance())
		if detailed, ok := insufficient.(*errs.InsufficientBalanceError); ok {
			s.logger.Info("Withdrawal exceeds balance", detailed.LogFields())
		}
		return nil, insufficient
	}

	txn, err := entity.NewWithdrawal(
		userID,
		amount,
		strings.TrimSpace(req.Method),
		strings.TrimSpace(req.Details),
		s.timeProvider,
	)
	if err != nil {
		return nil, err
	}

	if err := s.transactions(ctx).Create(ctx, txn); err != nil {
		s.logger.Error("Failed to record withdrawal", map[string]any{
			"userId": userID,
			"amount": entity.FormatMoney(amount),
			"error":  err.Error(),
		})
		return nil, err
	}

	s.metrics.WithdrawalRequested()
	s.logger.Info("Withdrawal requested", map[string]any{
		"userId":        userID,
		"transactionId": txn.ID,
		"amount":        entity.FormatMoney(txn.Amount),
		"vatFee":        entity.FormatMoney(txn.VATFee),
		"method":        txn.Method,
	})

	return txn, nil
}
