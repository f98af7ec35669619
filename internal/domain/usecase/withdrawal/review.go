package withdrawal

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/rewards-portal/internal/domain/entity"
	errs "github.com/amirhossein-jamali/rewards-portal/internal/domain/error"
)

// ReviewWithdrawal applies an administrator decision to a pending withdrawal.
//
// Rejection only changes the status. Approval debits the owner's balance with a
// single conditional update, so the balance check happens against the current
// balance and concurrent approvals cannot drive it negative. When the balance
// does not cover the amount the withdrawal ends as Failed and the balance is
// untouched. The status change itself is conditional on Pending, which makes a
// second review of the same withdrawal fail with ErrTransactionAlreadyReviewed.
func (s *Service) ReviewWithdrawal(ctx context.Context, transactionID uint64, action string) (*entity.Transaction, error) {
	if transactionID == 0 {
		return nil, errs.ErrInvalidTransactionID
	}

	reviewAction, err := entity.ParseReviewAction(action)
	if err != nil {
		return nil, err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Failed to roll back review", map[string]any{
				"transactionId": transactionID,
				"error":         rbErr.Error(),
			})
		}
	}()

	txRepo := s.transactions(txCtx)
	txn, err := txRepo.GetByID(txCtx, transactionID)
	if err != nil {
		return nil, err
	}

	if !txn.IsPending() {
		return nil, errs.NewReviewError(transactionID, action, string(txn.Status), errs.ErrTransactionAlreadyReviewed)
	}

	target := entity.StatusRejected
	if reviewAction == entity.ActionApprove {
		debited, err := s.users(txCtx).DebitIfSufficient(txCtx, txn.UserID, txn.Amount)
		if err != nil {
			return nil, err
		}
		target = entity.StatusApproved
		if !debited {
			target = entity.StatusFailed
		}
	}

	if err := txRepo.UpdateStatus(txCtx, transactionID, entity.StatusPending, target); err != nil {
		if errors.Is(err, errs.ErrTransactionAlreadyReviewed) {
			return nil, errs.NewReviewError(transactionID, action, string(txn.Status), err)
		}
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}
	committed = true

	if err := txn.Transition(target); err != nil {
		return nil, err
	}

	s.metrics.WithdrawalReviewed(string(target))
	s.logger.Info("Withdrawal reviewed", map[string]any{
		"transactionId": transactionID,
		"userId":        txn.UserID,
		"action":        action,
		"status":        string(target),
		"amount":        entity.FormatMoney(txn.Amount),
	})

	return txn, nil
}
